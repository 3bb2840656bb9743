package handler

import (
	"net/http"

	"foodradar/internal/delivery/api/response"
	domainerrors "foodradar/internal/domain/errors"
	"foodradar/internal/domain/geo"
	"foodradar/internal/errors"
	"foodradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProximityHandlerParams holds dependencies for ProximityHandler, injected by Fx.
type ProximityHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
}

// ProximityHandler serves distance, formatting, radius filter and sort endpoints
type ProximityHandler struct {
	proximityUC usecase.ProximityUsecase
}

// NewProximityHandler is the constructor for ProximityHandler
func NewProximityHandler(params ProximityHandlerParams) *ProximityHandler {
	return &ProximityHandler{
		proximityUC: params.ProximityUC,
	}
}

// CoordinateRequest is a latitude/longitude pair in degrees.
// Both fields are pointers so a missing value is not mistaken for 0.
type CoordinateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

func (r *CoordinateRequest) toCoordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// PointRequest is a caller-identified location
type PointRequest struct {
	ID        string   `json:"id" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// Coordinate implements geo.Located.
func (p PointRequest) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: *p.Latitude, Longitude: *p.Longitude}
}

// DistanceRequest represents the request body for a single distance
type DistanceRequest struct {
	From *CoordinateRequest `json:"from" validate:"required"`
	To   *CoordinateRequest `json:"to" validate:"required"`
}

// FormatRequest represents the request body for formatting a distance
type FormatRequest struct {
	DistanceKm *float64 `json:"distance_km" validate:"required"`
}

// FilterRequest represents the request body for a radius filter
type FilterRequest struct {
	Reference *CoordinateRequest `json:"reference" validate:"required"`
	RadiusKm  *float64           `json:"radius_km" validate:"required"`
	Points    []PointRequest     `json:"points" validate:"dive"`
}

// SortRequest represents the request body for sorting by distance
type SortRequest struct {
	Reference *CoordinateRequest `json:"reference" validate:"required"`
	Points    []PointRequest     `json:"points" validate:"dive"`
}

// MeasureRequest represents the request body for a batch measurement
type MeasureRequest struct {
	Reference *CoordinateRequest  `json:"reference" validate:"required"`
	Targets   []CoordinateRequest `json:"targets" validate:"dive"`
}

// DistanceResponse is a raw distance with its display string
type DistanceResponse struct {
	DistanceKm float64 `json:"distance_km"`
	Display    string  `json:"display"`
}

// PointResponse echoes a point back to the caller
type PointResponse struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RankedPointResponse is a point annotated with its distance from the reference
type RankedPointResponse struct {
	PointResponse
	DistanceKm float64 `json:"distance_km"`
	Display    string  `json:"display"`
}

func toPointResponse(p PointRequest) PointResponse {
	c := p.Coordinate()

	return PointResponse{ID: p.ID, Latitude: c.Latitude, Longitude: c.Longitude}
}

// Distance handles the great-circle distance between two coordinates
func (h *ProximityHandler) Distance(c echo.Context) error {
	var req DistanceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	distanceKm, err := geo.CheckedDistance(req.From.toCoordinate(), req.To.toCoordinate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	display, err := geo.FormatDistance(distanceKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DistanceResponse{DistanceKm: distanceKm, Display: display})
}

// Format handles rendering a kilometer distance for display
func (h *ProximityHandler) Format(c echo.Context) error {
	var req FormatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	display, err := geo.FormatDistance(*req.DistanceKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"display": display})
}

// Filter handles keeping the points within a radius, in request order
func (h *ProximityHandler) Filter(c echo.Context) error {
	var req FilterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	kept, err := geo.FilterByRadius(req.Points, req.Reference.toCoordinate(), *req.RadiusKm)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	points := make([]PointResponse, 0, len(kept))
	for _, p := range kept {
		points = append(points, toPointResponse(p))
	}

	return response.Success(c, http.StatusOK, map[string]any{"points": points})
}

// Sort handles ordering points by ascending distance from the reference
func (h *ProximityHandler) Sort(c echo.Context) error {
	var req SortRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ranked, err := geo.RankByDistance(req.Points, req.Reference.toCoordinate())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	points := make([]RankedPointResponse, 0, len(ranked))
	for _, r := range ranked {
		display, err := geo.FormatDistance(r.DistanceKm)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		points = append(points, RankedPointResponse{
			PointResponse: toPointResponse(r.Entity),
			DistanceKm:    r.DistanceKm,
			Display:       display,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{"points": points})
}

// Measure handles distances from one reference to many targets
func (h *ProximityHandler) Measure(c echo.Context) error {
	var req MeasureRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	targets := make([]geo.Coordinate, 0, len(req.Targets))
	for i := range req.Targets {
		targets = append(targets, req.Targets[i].toCoordinate())
	}

	measurements, err := h.proximityUC.Measure(c.Request().Context(), req.Reference.toCoordinate(), targets)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"measurements": measurements})
}

// RadiusOptions handles listing the selectable search radii
func (h *ProximityHandler) RadiusOptions(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.proximityUC.RadiusOptions())
}

// bindAndValidate decodes the request into req and runs struct validation.
// The returned error is an AppError for the central error handler to render.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(bindErrorDetails(err))
	}

	return c.Validate(req)
}

func bindErrorDetails(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return "request could not be decoded"
}

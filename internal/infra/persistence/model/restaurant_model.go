package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
type RestaurantModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Description         string    `gorm:"type:text;not null;default:''"`
	CuisineType         string    `gorm:"type:varchar(100);not null;default:''"`
	Rating              float64   `gorm:"type:decimal(3,2);not null;default:0"`
	DeliveryTimeMinutes int       `gorm:"not null;default:0"`
	Latitude            float64   `gorm:"type:decimal(10,8);not null;index:idx_restaurants_on_location"`
	Longitude           float64   `gorm:"type:decimal(11,8);not null;index:idx_restaurants_on_location"`
	Phone               string    `gorm:"type:varchar(50);not null;default:''"`
	Email               string    `gorm:"type:varchar(255);not null;default:''"`
	IsActive            bool      `gorm:"not null;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

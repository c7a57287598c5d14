package models

import "time"

// ProductCategories is the closed set of catalog categories.
var ProductCategories = []string{"Fans", "Lights", "Wires", "Switches", "Sockets"}

// Product represents a catalog product.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"gte=0"`
	Category    string    `json:"category" validate:"required,oneof=Fans Lights Wires Switches Sockets"`
	ImageURL    string    `json:"image_url"`
	Stock       int       `json:"stock"` // may go negative when orders outsell inventory
	CreatedAt   time.Time `json:"created_at"`
}

// ProductUpdate carries a partial product update; nil fields are untouched.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	Stock       *int     `json:"stock"`
}

// ValidCategory reports whether c belongs to the catalog category set.
func ValidCategory(c string) bool {
	for _, cat := range ProductCategories {
		if cat == c {
			return true
		}
	}
	return false
}

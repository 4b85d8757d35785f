package models

import "time"

// Category is the closed set of product categories accepted by the catalog.
type Category string

const (
	CategoryElectronics    Category = "electronics"
	CategoryJewelery       Category = "jewelery"
	CategoryMensClothing   Category = "men's clothing"
	CategoryWomensClothing Category = "women's clothing"
)

// Categories lists every accepted Category value. Used by validation to
// check enum membership.
var Categories = []Category{
	CategoryElectronics,
	CategoryJewelery,
	CategoryMensClothing,
	CategoryWomensClothing,
}

// Rating aggregates review data for a product.
type Rating struct {
	Rate  float64 `json:"rate" validate:"min=0,max=5"`
	Count int     `json:"count" validate:"min=0"`
}

// Product is a single catalog entry.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Description string    `json:"description" validate:"required"`
	Category    Category  `json:"category" validate:"required,category"`
	Image       string    `json:"image" validate:"required,url"`
	Rating      Rating    `json:"rating" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

package domain

import "time"

// ProductCategory is the closed set of store categories.
type ProductCategory string

const (
	CategoryBook        ProductCategory = "book"
	CategoryMagazine    ProductCategory = "magazine"
	CategoryTicket      ProductCategory = "ticket"
	CategoryMerchandise ProductCategory = "merchandise"
)

// Valid reports whether c is one of the known categories.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryBook, CategoryMagazine, CategoryTicket, CategoryMerchandise:
		return true
	}
	return false
}

// Dimensions is the physical size of a shipped product.
type Dimensions struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

// Product is an item of the organization's store.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      ProductCategory `json:"category"`
	Price         float64         `json:"price"`
	DiscountPrice *float64        `json:"discount_price,omitempty"`
	ImageURL      string          `json:"image_url"`
	Stock         int             `json:"stock"`
	SKU           string          `json:"sku"`

	// Digital goods (e-books, digital magazines).
	DigitalFileURL string `json:"digital_file_url,omitempty"`
	FileFormat     string `json:"file_format,omitempty"`

	// Physical goods.
	WeightGrams *float64    `json:"weight_grams,omitempty"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`

	// Tickets.
	EventDate *time.Time `json:"event_date,omitempty"`
	Venue     string     `json:"venue,omitempty"`

	IsDigital bool      `json:"is_digital"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectivePrice returns the discounted price when one is set.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice < p.Price {
		return *p.DiscountPrice
	}
	return p.Price
}

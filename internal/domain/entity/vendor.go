package entity

import "fmt"

// Vendor representa la ficha pública de un proveedor de bodas en el catálogo.
// MinPrice <= MaxPrice y Rating en [0,5] no se validan: el catálogo acepta la ficha tal cual.
type Vendor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"` // etiqueta libre: Photographer, Venue, Caterer...
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	ImageURL    string    `json:"imageUrl"`
	MinPrice    float64   `json:"minPrice"`
	MaxPrice    float64   `json:"maxPrice"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Services    []Service `json:"services"`
}

// Service paquete o servicio ofrecido por un proveedor.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
}

// PriceDisplay rango de precios formateado en unidades enteras ("$1200 - $3000").
func (v Vendor) PriceDisplay() string {
	return fmt.Sprintf("$%.0f - $%.0f", v.MinPrice, v.MaxPrice)
}

// Clone copia profunda: la copia no comparte el slice de servicios.
func (v Vendor) Clone() Vendor {
	if v.Services != nil {
		services := make([]Service, len(v.Services))
		copy(services, v.Services)
		v.Services = services
	}
	return v
}

package dto

import "github.com/jhoicas/weddingvendor-api/internal/domain/entity"

// Valores de sortBy aceptados en el listado de proveedores.
const (
	SortPriceAsc  = "priceAsc"
	SortPriceDesc = "priceDesc"
	SortRating    = "rating"
)

// FilterAll valor de category/location que equivale a no filtrar.
const FilterAll = "all"

// VendorListQuery parámetros de GET /api/vendors.
// Precedencia: search > category > location > sortBy.
type VendorListQuery struct {
	SortBy   string `query:"sortBy"`
	Category string `query:"category"`
	Location string `query:"location"`
	Search   string `query:"search"`
}

// ServiceDTO paquete de un proveedor.
type ServiceDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
}

// VendorRequest cuerpo de POST y PUT de proveedores. No se valida: el catálogo acepta la ficha tal cual.
// priceDisplay se ignora en la entrada; siempre se deriva de minPrice y maxPrice.
type VendorRequest struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"reviewCount"`
	ImageURL    string       `json:"imageUrl"`
	MinPrice    float64      `json:"minPrice"`
	MaxPrice    float64      `json:"maxPrice"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
	Services    []ServiceDTO `json:"services"`
}

// ToEntity convierte la petición en la ficha de dominio.
func (r VendorRequest) ToEntity() entity.Vendor {
	v := entity.Vendor{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		ImageURL:    r.ImageURL,
		MinPrice:    r.MinPrice,
		MaxPrice:    r.MaxPrice,
		Location:    r.Location,
		Description: r.Description,
	}
	if r.Services != nil {
		v.Services = make([]entity.Service, len(r.Services))
		for i, s := range r.Services {
			v.Services[i] = entity.Service(s)
		}
	}
	return v
}

// VendorResponse salida de un proveedor con el rango de precios formateado.
type VendorResponse struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Rating       float64      `json:"rating"`
	ReviewCount  int          `json:"reviewCount"`
	ImageURL     string       `json:"imageUrl"`
	MinPrice     float64      `json:"minPrice"`
	MaxPrice     float64      `json:"maxPrice"`
	PriceDisplay string       `json:"priceDisplay"`
	Location     string       `json:"location"`
	Description  string       `json:"description"`
	Services     []ServiceDTO `json:"services"`
}

// NewVendorResponse mapea la ficha de dominio a la salida HTTP.
func NewVendorResponse(v entity.Vendor) VendorResponse {
	out := VendorResponse{
		ID:           v.ID,
		Name:         v.Name,
		Category:     v.Category,
		Rating:       v.Rating,
		ReviewCount:  v.ReviewCount,
		ImageURL:     v.ImageURL,
		MinPrice:     v.MinPrice,
		MaxPrice:     v.MaxPrice,
		PriceDisplay: v.PriceDisplay(),
		Location:     v.Location,
		Description:  v.Description,
	}
	// siempre una lista, aunque esté vacía
	out.Services = make([]ServiceDTO, len(v.Services))
	for i, s := range v.Services {
		out.Services[i] = ServiceDTO(s)
	}
	return out
}

// NewVendorResponses mapea una lista conservando el orden.
func NewVendorResponses(vs []entity.Vendor) []VendorResponse {
	out := make([]VendorResponse, len(vs))
	for i, v := range vs {
		out[i] = NewVendorResponse(v)
	}
	return out
}

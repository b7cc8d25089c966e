package catalog

import "github.com/jhoicas/weddingvendor-api/internal/domain/entity"

// SampleVendors proveedores de ejemplo con los que se siembra un catálogo vacío.
func SampleVendors() []entity.Vendor {
	return []entity.Vendor{
		{
			ID:          "vendor1",
			Name:        "Elegant Moments Photography",
			Category:    "Photographer",
			Rating:      4.9,
			ReviewCount: 124,
			ImageURL:    "https://images.unsplash.com/photo-1537633552985-df8429e8048b?auto=format&fit=crop&w=800&q=80",
			MinPrice:    1200,
			MaxPrice:    3000,
			Location:    "New York, NY",
			Description: "Specializing in candid wedding photography that captures the emotions of your special day.",
			Services: []entity.Service{
				{ID: "basic", Name: "Basic Wedding Package", Category: "Photography", Description: "6 hours of coverage, 1 photographer, 300+ edited digital images", Price: 1200, Duration: "6 hours"},
				{ID: "premium", Name: "Premium Wedding Package", Category: "Photography", Description: "8 hours of coverage, 2 photographers, engagement session, 500+ edited digital images", Price: 2000, Duration: "8 hours"},
				{ID: "luxury", Name: "Luxury Wedding Package", Category: "Photography", Description: "10 hours of coverage, 2 photographers, engagement session, bridal session, 700+ edited digital images", Price: 3000, Duration: "10 hours"},
			},
		},
		{
			ID:          "vendor2",
			Name:        "Royal Garden Venue",
			Category:    "Venue",
			Rating:      4.8,
			ReviewCount: 89,
			ImageURL:    "https://images.unsplash.com/photo-1464366400600-7168b8af9bc3?auto=format&fit=crop&w=800&q=80",
			MinPrice:    5000,
			MaxPrice:    15000,
			Location:    "Chicago, IL",
			Description: "A stunning garden venue with both indoor and outdoor spaces for your dream wedding.",
			Services: []entity.Service{
				{ID: "basic_venue", Name: "Basic Venue Package", Category: "Venue", Description: "6 hour venue rental, basic setup and cleanup", Price: 5000, Duration: "6 hours"},
				{ID: "premium_venue", Name: "Premium Venue Package", Category: "Venue", Description: "8 hour venue rental, premium setup, cleanup, and basic decoration", Price: 8000, Duration: "8 hours"},
				{ID: "luxury_venue", Name: "Luxury Venue Package", Category: "Venue", Description: "12 hour venue rental, premium setup, cleanup, decoration, and coordination", Price: 15000, Duration: "12 hours"},
			},
		},
		{
			ID:          "vendor3",
			Name:        "Divine Cuisine Catering",
			Category:    "Caterer",
			Rating:      4.7,
			ReviewCount: 156,
			ImageURL:    "https://images.unsplash.com/photo-1555244162-803834f70033?auto=format&fit=crop&w=800&q=80",
			MinPrice:    45,
			MaxPrice:    120,
			Location:    "Los Angeles, CA",
			Description: "Gourmet catering services with customizable menus to suit any taste and dietary requirement.",
		},
		{
			ID:          "vendor4",
			Name:        "Blooming Beauty Florals",
			Category:    "Florist",
			Rating:      4.9,
			ReviewCount: 78,
			ImageURL:    "https://images.unsplash.com/photo-1561128290-006dc4827214?auto=format&fit=crop&w=800&q=80",
			MinPrice:    800,
			MaxPrice:    2500,
			Location:    "Miami, FL",
			Description: "Creating breathtaking floral arrangements that bring your wedding vision to life.",
		},
		{
			ID:          "vendor5",
			Name:        "Harmony Wedding Band",
			Category:    "Entertainment",
			Rating:      4.8,
			ReviewCount: 92,
			ImageURL:    "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?auto=format&fit=crop&w=800&q=80",
			MinPrice:    1800,
			MaxPrice:    3500,
			Location:    "Austin, TX",
			Description: "Live music entertainment that keeps your guests dancing all night long.",
		},
		{
			ID:          "vendor6",
			Name:        "Dream Wedding Planners",
			Category:    "Planner",
			Rating:      5.0,
			ReviewCount: 64,
			ImageURL:    "https://images.unsplash.com/photo-1511795409834-432f7b1632a5?auto=format&fit=crop&w=800&q=80",
			MinPrice:    2500,
			MaxPrice:    8000,
			Location:    "Seattle, WA",
			Description: "Full-service wedding planning to make your journey to the altar stress-free and enjoyable.",
		},
	}
}

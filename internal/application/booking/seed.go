package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// SampleBookings reservas de ejemplo con las que se siembra un repositorio vacío.
func SampleBookings() []entity.Booking {
	ts := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []entity.Booking{
		{
			ID:            "booking1",
			UserID:        "user1",
			UserName:      "Demo Client",
			VendorID:      "vendor1",
			VendorName:    "Elegant Moments Photography",
			ServiceName:   "Premium Wedding Photography",
			EventType:     "Wedding",
			ServiceDate:   "2023-10-15",
			Amount:        decimal.NewFromInt(2500),
			Status:        entity.BookingConfirmed,
			PaymentStatus: entity.PaymentStatusPaid,
			Notes:         "Looking forward to capturing your special day!",
			CreatedAt:     ts("2023-08-20T14:30:00Z"),
			UpdatedAt:     ts("2023-08-20T14:30:00Z"),
		},
		{
			ID:            "booking2",
			UserID:        "user1",
			UserName:      "Demo Client",
			VendorID:      "vendor2",
			VendorName:    "Royal Garden Venue",
			ServiceName:   "Full Day Venue Rental",
			EventType:     "Wedding",
			ServiceDate:   "2023-10-15",
			Amount:        decimal.NewFromInt(8000),
			Status:        entity.BookingConfirmed,
			PaymentStatus: entity.PaymentStatusPaid,
			CreatedAt:     ts("2023-08-18T10:15:00Z"),
			UpdatedAt:     ts("2023-08-18T10:15:00Z"),
		},
		{
			ID:            "booking3",
			UserID:        "user2",
			UserName:      "Jane Smith",
			VendorID:      "vendor1",
			VendorName:    "Elegant Moments Photography",
			ServiceName:   "Engagement Photoshoot",
			EventType:     "Engagement",
			ServiceDate:   "2023-09-10",
			Amount:        decimal.NewFromInt(900),
			Status:        entity.BookingCompleted,
			PaymentStatus: entity.PaymentStatusPaid,
			Notes:         "Beautiful photos delivered on time!",
			CreatedAt:     ts("2023-07-25T09:45:00Z"),
			UpdatedAt:     ts("2023-09-11T16:20:00Z"),
		},
	}
}

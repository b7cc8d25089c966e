package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// SamplePayments pagos de ejemplo de las reservas sembradas booking1 y booking2.
func SamplePayments() []entity.Payment {
	ts := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []entity.Payment{
		{
			ID:            "payment1",
			BookingID:     "booking1",
			UserID:        "user1",
			VendorID:      "vendor1",
			Amount:        decimal.NewFromInt(2500),
			Currency:      DefaultCurrency,
			PaymentMethod: entity.PaymentMethodCreditCard,
			Status:        entity.PaymentCompleted,
			TransactionID: "txn_" + shortID(),
			CreatedAt:     ts("2023-08-20T15:30:00Z"),
			UpdatedAt:     ts("2023-08-20T15:30:00Z"),
		},
		{
			ID:            "payment2",
			BookingID:     "booking2",
			UserID:        "user1",
			VendorID:      "vendor2",
			Amount:        decimal.NewFromInt(8000),
			Currency:      DefaultCurrency,
			PaymentMethod: entity.PaymentMethodCreditCard,
			Status:        entity.PaymentCompleted,
			TransactionID: "txn_" + shortID(),
			CreatedAt:     ts("2023-08-18T11:15:00Z"),
			UpdatedAt:     ts("2023-08-18T11:15:00Z"),
		},
	}
}

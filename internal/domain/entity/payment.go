package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados por la pasarela simulada.
const (
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodPayPal     = "paypal"
)

// Estados de un pago.
const (
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// FailedTransactionID identificador fijo de las transacciones rechazadas.
const FailedTransactionID = "txn_failed"

// Payment pago asociado a una reserva.
type Payment struct {
	ID            string          `json:"id"`
	BookingID     string          `json:"bookingId"`
	UserID        string          `json:"userId"`
	VendorID      string          `json:"vendorId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transactionId"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

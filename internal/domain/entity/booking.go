package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una reserva.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Estados de pago de una reserva.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Booking reserva de un servicio de un proveedor por parte de un cliente.
// VendorName y UserName se desnormalizan para listar sin cruzar con el catálogo.
type Booking struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	UserName      string          `json:"userName"`
	VendorID      string          `json:"vendorId"`
	VendorName    string          `json:"vendorName"`
	ServiceName   string          `json:"serviceName"`
	EventType     string          `json:"eventType"`
	ServiceDate   string          `json:"serviceDate"` // YYYY-MM-DD
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

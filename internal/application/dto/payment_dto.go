package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// CardDetails datos de tarjeta. Solo se usan para la validación simulada; nunca se persisten.
type CardDetails struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
}

// ProcessPaymentRequest entrada de POST /api/payments/process.
// Un método desconocido no es un error de validación: el pago queda "failed".
type ProcessPaymentRequest struct {
	BookingID     string          `json:"bookingId" validate:"required"`
	UserID        string          `json:"userId"`
	VendorID      string          `json:"vendorId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" validate:"omitempty,len=3"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
	CardDetails   *CardDetails    `json:"cardDetails"`
}

// UpdatePaymentRequest actualización parcial de estado y transacción.
type UpdatePaymentRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=completed failed refunded"`
	TransactionID *string `json:"transactionId" validate:"omitempty,max=100"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
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

// NewPaymentResponse mapea el pago de dominio.
func NewPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		UserID:        p.UserID,
		VendorID:      p.VendorID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// NewPaymentResponses mapea una lista.
func NewPaymentResponses(list []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(list))
	for i, p := range list {
		out[i] = NewPaymentResponse(p)
	}
	return out
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// CreateBookingRequest entrada para crear una reserva.
// UserID y UserName los completa el handler a partir del token cuando vienen vacíos.
type CreateBookingRequest struct {
	UserID        string          `json:"userId"`
	UserName      string          `json:"userName" validate:"omitempty,max=200"`
	VendorID      string          `json:"vendorId" validate:"required"`
	VendorName    string          `json:"vendorName" validate:"omitempty,max=200"`
	ServiceName   string          `json:"serviceName" validate:"required,max=200"`
	EventType     string          `json:"eventType" validate:"omitempty,max=100"`
	ServiceDate   string          `json:"serviceDate" validate:"required,datetime=2006-01-02"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus string          `json:"paymentStatus" validate:"omitempty,oneof=pending paid refunded"`
	Notes         string          `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateBookingRequest actualización parcial: solo se aplican los campos no nulos.
// Amount se aplica únicamente si es mayor que cero.
type UpdateBookingRequest struct {
	UserID        *string          `json:"userId"`
	UserName      *string          `json:"userName" validate:"omitempty,max=200"`
	VendorID      *string          `json:"vendorId"`
	VendorName    *string          `json:"vendorName" validate:"omitempty,max=200"`
	ServiceName   *string          `json:"serviceName" validate:"omitempty,max=200"`
	EventType     *string          `json:"eventType" validate:"omitempty,max=100"`
	ServiceDate   *string          `json:"serviceDate" validate:"omitempty,datetime=2006-01-02"`
	Amount        *decimal.Decimal `json:"amount"`
	Status        *string          `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus *string          `json:"paymentStatus" validate:"omitempty,oneof=pending paid refunded"`
	Notes         *string          `json:"notes" validate:"omitempty,max=2000"`
}

// BookingResponse salida de una reserva.
type BookingResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	UserName      string          `json:"userName"`
	VendorID      string          `json:"vendorId"`
	VendorName    string          `json:"vendorName"`
	ServiceName   string          `json:"serviceName"`
	EventType     string          `json:"eventType"`
	ServiceDate   string          `json:"serviceDate"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// NewBookingResponse mapea la reserva de dominio.
func NewBookingResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		UserName:      b.UserName,
		VendorID:      b.VendorID,
		VendorName:    b.VendorName,
		ServiceName:   b.ServiceName,
		EventType:     b.EventType,
		ServiceDate:   b.ServiceDate,
		Amount:        b.Amount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// NewBookingResponses mapea una lista.
func NewBookingResponses(list []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(list))
	for i, b := range list {
		out[i] = NewBookingResponse(b)
	}
	return out
}

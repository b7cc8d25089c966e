package billing

import (
	"context"

	"github.com/jhoicas/weddingvendor-api/internal/application/dto"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// BookingLedger operaciones de reservas que necesita el procesamiento de pagos
// (implementado por booking.BookingUseCase).
type BookingLedger interface {
	GetByID(id string) (*dto.BookingResponse, error)
	MarkPaid(id string) error
}

// ReceiptForPDF datos del comprobante: el pago más el contexto de la reserva.
type ReceiptForPDF struct {
	Payment     entity.Payment
	UserName    string
	VendorName  string
	ServiceName string
	EventType   string
	ServiceDate string
}

// ReceiptPDFGenerator genera la representación PDF de un comprobante de pago.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt ReceiptForPDF) ([]byte, error)
}

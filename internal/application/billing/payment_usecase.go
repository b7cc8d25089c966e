package billing

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/jhoicas/weddingvendor-api/internal/application/dto"
	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
	"github.com/jhoicas/weddingvendor-api/internal/domain/repository"
)

// DefaultCurrency moneda si la petición no la informa.
const DefaultCurrency = "USD"

// PaymentUseCase procesamiento simulado de pagos de reservas y consulta de comprobantes.
type PaymentUseCase struct {
	repo      repository.PaymentRepository
	bookings  BookingLedger
	generator ReceiptPDFGenerator
	now       func() time.Time
}

// NewPaymentUseCase construye el caso de uso inyectando sus dependencias.
func NewPaymentUseCase(repo repository.PaymentRepository, bookings BookingLedger, generator ReceiptPDFGenerator) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, bookings: bookings, generator: generator, now: time.Now}
}

// ProcessPayment registra un pago contra una reserva existente.
//
// Reglas de la pasarela simulada:
//   - credit_card con número de 13 a 19 dígitos: completed, transactionId "txn_xxxxxxxx".
//   - credit_card sin tarjeta o con número inválido: failed, transactionId "txn_failed".
//   - paypal: completed, transactionId "pp_xxxxxxxx".
//   - cualquier otro método: failed.
//
// Un pago completed marca la reserva como pagada. userId, vendorId y amount se toman
// de la reserva cuando no vienen en la petición; un userId distinto del dueño de la
// reserva devuelve domain.ErrForbidden sin registrar nada.
func (uc *PaymentUseCase) ProcessPayment(in dto.ProcessPaymentRequest) (*dto.PaymentResponse, error) {
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
	}
	b, err := uc.bookings.GetByID(in.BookingID)
	if err != nil {
		return nil, err
	}
	if in.UserID != "" && in.UserID != b.UserID {
		return nil, fmt.Errorf("%w: la reserva %s pertenece a otro cliente", domain.ErrForbidden, b.ID)
	}

	now := uc.now().UTC()
	p := &entity.Payment{
		ID:            "payment" + shortID(),
		BookingID:     b.ID,
		UserID:        in.UserID,
		VendorID:      in.VendorID,
		Amount:        in.Amount,
		Currency:      strings.ToUpper(strings.TrimSpace(in.Currency)),
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if p.UserID == "" {
		p.UserID = b.UserID
	}
	if p.VendorID == "" {
		p.VendorID = b.VendorID
	}
	if p.Amount.IsZero() {
		p.Amount = b.Amount
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	p.Status, p.TransactionID = authorize(in.PaymentMethod, in.CardDetails)

	if err := uc.repo.Create(p); err != nil {
		return nil, fmt.Errorf("billing: registrar pago: %w", err)
	}
	if p.Status == entity.PaymentCompleted {
		if err := uc.bookings.MarkPaid(b.ID); err != nil {
			return nil, fmt.Errorf("billing: marcar reserva pagada: %w", err)
		}
	}
	out := dto.NewPaymentResponse(p)
	return &out, nil
}

// authorize decide el resultado de la pasarela simulada.
func authorize(method string, card *dto.CardDetails) (status, transactionID string) {
	switch method {
	case entity.PaymentMethodCreditCard:
		if card == nil || !validCardNumber(card.CardNumber) {
			return entity.PaymentFailed, entity.FailedTransactionID
		}
		return entity.PaymentCompleted, "txn_" + shortID()
	case entity.PaymentMethodPayPal:
		return entity.PaymentCompleted, "pp_" + shortID()
	default:
		return entity.PaymentFailed, entity.FailedTransactionID
	}
}

// validCardNumber 13 a 19 dígitos; se ignoran espacios.
func validCardNumber(number string) bool {
	digits := 0
	for _, r := range number {
		switch {
		case r == ' ':
		case unicode.IsDigit(r):
			digits++
		default:
			return false
		}
	}
	return digits >= 13 && digits <= 19
}

func shortID() string {
	return uuid.New().String()[:8]
}

// GetByID obtiene un pago. domain.ErrNotFound si no existe.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	p, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	out := dto.NewPaymentResponse(p)
	return &out, nil
}

// GetByBookingID primer pago registrado para la reserva. domain.ErrNotFound si no hay.
func (uc *PaymentUseCase) GetByBookingID(bookingID string) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByBookingID(bookingID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewPaymentResponse(p)
	return &out, nil
}

// List todos los pagos.
func (uc *PaymentUseCase) List() ([]dto.PaymentResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return dto.NewPaymentResponses(list), nil
}

// ListByUser pagos de un cliente.
func (uc *PaymentUseCase) ListByUser(userID string) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.NewPaymentResponses(list), nil
}

// Update cambia status y/o transactionId; UpdatedAt se renueva siempre.
func (uc *PaymentUseCase) Update(id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	p, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.TransactionID != nil {
		p.TransactionID = *in.TransactionID
	}
	p.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	out := dto.NewPaymentResponse(p)
	return &out, nil
}

// Receipt genera el comprobante PDF de un pago completado.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pago no existe.
//   - domain.ErrInvalidInput     si el pago no está completed.
func (uc *PaymentUseCase) Receipt(ctx context.Context, paymentID string) (pdfBytes []byte, filename string, err error) {
	p, err := uc.find(paymentID)
	if err != nil {
		return nil, "", err
	}
	if p.Status != entity.PaymentCompleted {
		return nil, "", fmt.Errorf("%w: el pago está en estado %s, solo los pagos completados tienen comprobante",
			domain.ErrInvalidInput, p.Status)
	}

	receipt := ReceiptForPDF{Payment: *p}
	// La reserva puede haberse borrado después del pago; el comprobante sale igual.
	if b, bErr := uc.bookings.GetByID(p.BookingID); bErr == nil {
		receipt.UserName = b.UserName
		receipt.VendorName = b.VendorName
		receipt.ServiceName = b.ServiceName
		receipt.EventType = b.EventType
		receipt.ServiceDate = b.ServiceDate
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, receipt)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("recibo_%s.pdf", p.ID), nil
}

func (uc *PaymentUseCase) find(id string) (*entity.Payment, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

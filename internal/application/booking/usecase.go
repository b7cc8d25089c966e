// Package booking casos de uso de reservas: alta contra el catálogo de proveedores,
// actualización parcial, consultas por cliente y por proveedor.
package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/weddingvendor-api/internal/application/dto"
	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
	"github.com/jhoicas/weddingvendor-api/internal/domain/repository"
)

// vendorIDPrefix prefijo de los IDs del catálogo; los IDs cortos ("3") se normalizan a "vendor3".
const vendorIDPrefix = "vendor"

// VendorLookup consulta de proveedores que necesita el alta de reservas.
type VendorLookup interface {
	GetByID(id string) (entity.Vendor, bool)
}

// BookingUseCase casos de uso de reservas.
type BookingUseCase struct {
	repo    repository.BookingRepository
	vendors VendorLookup
	now     func() time.Time
}

// NewBookingUseCase construye el caso de uso.
func NewBookingUseCase(repo repository.BookingRepository, vendors VendorLookup) *BookingUseCase {
	return &BookingUseCase{repo: repo, vendors: vendors, now: time.Now}
}

// NormalizeVendorID antepone "vendor" a los IDs que no lo llevan.
func NormalizeVendorID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, vendorIDPrefix) {
		return id
	}
	return vendorIDPrefix + id
}

// Create registra una reserva. El proveedor debe existir en el catálogo;
// VendorName se toma de la ficha si no viene. Status y PaymentStatus arrancan en "pending".
func (uc *BookingUseCase) Create(in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if in.UserID == "" {
		return nil, fmt.Errorf("%w: userId requerido", domain.ErrInvalidInput)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
	}
	vendorID := NormalizeVendorID(in.VendorID)
	vendor, ok := uc.vendors.GetByID(vendorID)
	if !ok {
		return nil, domain.ErrVendorNotFound
	}

	now := uc.now().UTC()
	b := &entity.Booking{
		ID:            "booking" + uuid.New().String()[:8],
		UserID:        in.UserID,
		UserName:      in.UserName,
		VendorID:      vendorID,
		VendorName:    in.VendorName,
		ServiceName:   in.ServiceName,
		EventType:     in.EventType,
		ServiceDate:   in.ServiceDate,
		Amount:        in.Amount,
		Status:        in.Status,
		PaymentStatus: in.PaymentStatus,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if b.VendorName == "" {
		b.VendorName = vendor.Name
	}
	if b.Status == "" {
		b.Status = entity.BookingPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = entity.PaymentStatusPending
	}
	if err := uc.repo.Create(b); err != nil {
		return nil, fmt.Errorf("booking: crear: %w", err)
	}
	out := dto.NewBookingResponse(b)
	return &out, nil
}

// GetByID obtiene una reserva. domain.ErrBookingNotFound si no existe.
func (uc *BookingUseCase) GetByID(id string) (*dto.BookingResponse, error) {
	b, err := uc.find(id)
	if err != nil {
		return nil, err
	}
	out := dto.NewBookingResponse(b)
	return &out, nil
}

// List todas las reservas.
func (uc *BookingUseCase) List() ([]dto.BookingResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return dto.NewBookingResponses(list), nil
}

// ListByUser reservas de un cliente.
func (uc *BookingUseCase) ListByUser(userID string) ([]dto.BookingResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.NewBookingResponses(list), nil
}

// ListByVendor reservas de un proveedor (acepta IDs sin el prefijo "vendor").
func (uc *BookingUseCase) ListByVendor(vendorID string) ([]dto.BookingResponse, error) {
	list, err := uc.repo.ListByVendor(NormalizeVendorID(vendorID))
	if err != nil {
		return nil, err
	}
	return dto.NewBookingResponses(list), nil
}

// Update aplica solo los campos informados. Amount se ignora si no es mayor que cero.
// Un vendorId nuevo debe existir en el catálogo. UpdatedAt se renueva siempre.
// La lectura y la escritura ocurren bajo el lock del repositorio.
func (uc *BookingUseCase) Update(id string, in dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	var vendorID string
	if in.VendorID != nil {
		vendorID = NormalizeVendorID(*in.VendorID)
		if _, ok := uc.vendors.GetByID(vendorID); !ok {
			return nil, domain.ErrVendorNotFound
		}
	}
	now := uc.now().UTC()

	b, err := uc.repo.Modify(id, func(b *entity.Booking) {
		if in.UserID != nil {
			b.UserID = *in.UserID
		}
		if in.UserName != nil {
			b.UserName = *in.UserName
		}
		if in.VendorID != nil {
			b.VendorID = vendorID
		}
		if in.VendorName != nil {
			b.VendorName = *in.VendorName
		}
		if in.ServiceName != nil {
			b.ServiceName = *in.ServiceName
		}
		if in.EventType != nil {
			b.EventType = *in.EventType
		}
		if in.ServiceDate != nil {
			b.ServiceDate = *in.ServiceDate
		}
		if in.Amount != nil && in.Amount.GreaterThan(decimal.Zero) {
			b.Amount = *in.Amount
		}
		if in.Status != nil {
			b.Status = *in.Status
		}
		if in.PaymentStatus != nil {
			b.PaymentStatus = *in.PaymentStatus
		}
		if in.Notes != nil {
			b.Notes = *in.Notes
		}
		b.UpdatedAt = now
	})
	if err != nil {
		return nil, err
	}
	out := dto.NewBookingResponse(b)
	return &out, nil
}

// MarkPaid pasa la reserva a paymentStatus "paid". Lo usa el procesamiento de pagos.
func (uc *BookingUseCase) MarkPaid(id string) error {
	paid := entity.PaymentStatusPaid
	_, err := uc.Update(id, dto.UpdateBookingRequest{PaymentStatus: &paid})
	return err
}

// Delete elimina una reserva.
func (uc *BookingUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *BookingUseCase) find(id string) (*entity.Booking, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBookingNotFound
	}
	return b, nil
}

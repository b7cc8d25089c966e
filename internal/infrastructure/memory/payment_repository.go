package memory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
	"github.com/jhoicas/weddingvendor-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository en memoria.
type PaymentRepo struct {
	c collection[entity.Payment]
}

// NewPaymentRepository construye el repositorio; llamar Load antes de usarlo.
func NewPaymentRepository(store repository.SnapshotStore[entity.Payment], log zerolog.Logger) *PaymentRepo {
	return &PaymentRepo{c: newCollection(store, log)}
}

// Load carga el snapshot o siembra con seed si está vacío.
func (r *PaymentRepo) Load(ctx context.Context, seed func() []entity.Payment) { r.c.load(ctx, seed) }

// Flush escribe el snapshot actual.
func (r *PaymentRepo) Flush(ctx context.Context) { r.c.Flush(ctx) }

// Create registra un pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	r.c.insert(*payment)
	return nil
}

// GetByID obtiene un pago por ID; (nil, nil) si no existe.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	return r.c.find(func(p *entity.Payment) bool { return p.ID == id }), nil
}

// GetByBookingID primer pago registrado para la reserva.
func (r *PaymentRepo) GetByBookingID(bookingID string) (*entity.Payment, error) {
	return r.c.find(func(p *entity.Payment) bool { return p.BookingID == bookingID }), nil
}

// Update reemplaza el pago con el mismo ID.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	if !r.c.replace(func(p *entity.Payment) bool { return p.ID == payment.ID }, *payment) {
		return domain.ErrNotFound
	}
	return nil
}

// List todos los pagos.
func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	return r.c.filter(func(*entity.Payment) bool { return true }), nil
}

// ListByUser pagos de un cliente.
func (r *PaymentRepo) ListByUser(userID string) ([]*entity.Payment, error) {
	return r.c.filter(func(p *entity.Payment) bool { return p.UserID == userID }), nil
}

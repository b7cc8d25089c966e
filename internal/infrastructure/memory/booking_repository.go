package memory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
	"github.com/jhoicas/weddingvendor-api/internal/domain/repository"
)

var _ repository.BookingRepository = (*BookingRepo)(nil)

// BookingRepo implementación del puerto BookingRepository en memoria.
type BookingRepo struct {
	c collection[entity.Booking]
}

// NewBookingRepository construye el repositorio; llamar Load antes de usarlo.
func NewBookingRepository(store repository.SnapshotStore[entity.Booking], log zerolog.Logger) *BookingRepo {
	return &BookingRepo{c: newCollection(store, log)}
}

// Load carga el snapshot o siembra con seed si está vacío.
func (r *BookingRepo) Load(ctx context.Context, seed func() []entity.Booking) { r.c.load(ctx, seed) }

// Flush escribe el snapshot actual.
func (r *BookingRepo) Flush(ctx context.Context) { r.c.Flush(ctx) }

// Create agrega una reserva al final.
func (r *BookingRepo) Create(booking *entity.Booking) error {
	r.c.insert(*booking)
	return nil
}

// GetByID obtiene una reserva por ID; (nil, nil) si no existe.
func (r *BookingRepo) GetByID(id string) (*entity.Booking, error) {
	return r.c.find(func(b *entity.Booking) bool { return b.ID == id }), nil
}

// Update reemplaza la reserva con el mismo ID.
func (r *BookingRepo) Update(booking *entity.Booking) error {
	if !r.c.replace(func(b *entity.Booking) bool { return b.ID == booking.ID }, *booking) {
		return domain.ErrBookingNotFound
	}
	return nil
}

// Modify aplica fn sobre la reserva de forma atómica respecto de otras escrituras.
func (r *BookingRepo) Modify(id string, fn func(*entity.Booking)) (*entity.Booking, error) {
	b, ok := r.c.modify(func(b *entity.Booking) bool { return b.ID == id }, fn)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

// List todas las reservas en orden de creación.
func (r *BookingRepo) List() ([]*entity.Booking, error) {
	return r.c.filter(func(*entity.Booking) bool { return true }), nil
}

// ListByUser reservas de un cliente.
func (r *BookingRepo) ListByUser(userID string) ([]*entity.Booking, error) {
	return r.c.filter(func(b *entity.Booking) bool { return b.UserID == userID }), nil
}

// ListByVendor reservas de un proveedor.
func (r *BookingRepo) ListByVendor(vendorID string) ([]*entity.Booking, error) {
	return r.c.filter(func(b *entity.Booking) bool { return b.VendorID == vendorID }), nil
}

// Delete elimina una reserva por ID.
func (r *BookingRepo) Delete(id string) error {
	if !r.c.remove(func(b *entity.Booking) bool { return b.ID == id }) {
		return domain.ErrBookingNotFound
	}
	return nil
}

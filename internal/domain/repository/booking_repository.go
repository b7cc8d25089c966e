package repository

import "github.com/jhoicas/weddingvendor-api/internal/domain/entity"

// BookingRepository define el puerto de persistencia para Booking (DIP).
// GetByID devuelve (nil, nil) si no existe; Update, Modify y Delete devuelven domain.ErrBookingNotFound.
// Modify lee y escribe la reserva bajo el mismo lock (sin ventana entre lectura y escritura).
type BookingRepository interface {
	Create(booking *entity.Booking) error
	GetByID(id string) (*entity.Booking, error)
	Update(booking *entity.Booking) error
	Modify(id string, fn func(*entity.Booking)) (*entity.Booking, error)
	List() ([]*entity.Booking, error)
	ListByUser(userID string) ([]*entity.Booking, error)
	ListByVendor(vendorID string) ([]*entity.Booking, error)
	Delete(id string) error
}

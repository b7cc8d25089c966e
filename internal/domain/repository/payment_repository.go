package repository

import "github.com/jhoicas/weddingvendor-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment (DIP).
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	GetByBookingID(bookingID string) (*entity.Payment, error)
	Update(payment *entity.Payment) error
	List() ([]*entity.Payment, error)
	ListByUser(userID string) ([]*entity.Payment, error)
}

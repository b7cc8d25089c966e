package repository

import "github.com/jhoicas/weddingvendor-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El email es único (comparación sin distinguir mayúsculas).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}

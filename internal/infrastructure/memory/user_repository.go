package memory

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
	"github.com/jhoicas/weddingvendor-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository en memoria.
type UserRepo struct {
	c collection[entity.User]
}

// NewUserRepository construye el repositorio; llamar Load antes de usarlo.
func NewUserRepository(store repository.SnapshotStore[entity.User], log zerolog.Logger) *UserRepo {
	return &UserRepo{c: newCollection(store, log)}
}

// Load carga el snapshot o siembra con seed si está vacío.
func (r *UserRepo) Load(ctx context.Context, seed func() []entity.User) { r.c.load(ctx, seed) }

// Flush escribe el snapshot actual.
func (r *UserRepo) Flush(ctx context.Context) { r.c.Flush(ctx) }

// Create registra un usuario. El chequeo de email y el alta son atómicos.
func (r *UserRepo) Create(user *entity.User) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if r.c.indexOf(sameEmail(user.Email)) >= 0 {
		return domain.ErrEmailAlreadyExists
	}
	r.c.items = append(r.c.items, *user)
	r.c.persistLocked(context.Background())
	return nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.c.find(func(u *entity.User) bool { return u.ID == id }), nil
}

// FindByEmail busca por email sin distinguir mayúsculas; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.c.find(sameEmail(email)), nil
}

func sameEmail(email string) func(*entity.User) bool {
	email = strings.TrimSpace(email)
	return func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }
}

package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// DemoPassword contraseña de las cuentas de demostración.
const DemoPassword = "password"

// DemoUsers cuentas de demostración (cliente, proveedor y admin) con las que se siembra
// un repositorio de usuarios vacío. El cliente es el dueño de las reservas de ejemplo.
func DemoUsers() []entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt solo falla con contraseñas de más de 72 bytes
		panic(err)
	}
	created := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	return []entity.User{
		{ID: "user1", Email: "client@example.com", PasswordHash: string(hash), Name: "Demo Client", Role: entity.RoleUser, CreatedAt: created},
		{ID: "vendoruser1", Email: "vendor@example.com", PasswordHash: string(hash), Name: "Elegant Moments Photography", Role: entity.RoleVendor, CreatedAt: created},
		{ID: "admin1", Email: "admin@example.com", PasswordHash: string(hash), Name: "Admin User", Role: entity.RoleAdmin, CreatedAt: created},
	}
}

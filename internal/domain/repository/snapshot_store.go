package repository

import "context"

// SnapshotStore define el puerto de persistencia de una colección completa (DIP).
// Cada Save reemplaza el snapshot anterior; el orden de los elementos se conserva.
// Load sobre un snapshot inexistente devuelve un slice vacío sin error.
type SnapshotStore[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, items []T) error
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/repository"
)

// querier subconjunto de pgxpool.Pool / pgx.Tx que usa el store.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.SnapshotStore[struct{}] = (*SnapshotStore[struct{}])(nil)

// SnapshotStore guarda la colección completa como un documento JSONB por nombre
// en collection_snapshots. El orden del arreglo es el orden de la colección.
type SnapshotStore[T any] struct {
	db   querier
	name string
}

// NewSnapshotStore construye el adaptador para la colección name (vendors, bookings...).
func NewSnapshotStore[T any](db querier, name string) *SnapshotStore[T] {
	return &SnapshotStore[T]{db: db, name: name}
}

// Load lee el snapshot; si no hay fila devuelve un slice vacío.
func (s *SnapshotStore[T]) Load(ctx context.Context) ([]T, error) {
	var payload []byte
	err := s.db.QueryRow(ctx,
		`SELECT payload FROM collection_snapshots WHERE name = $1`, s.name,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: leer snapshot %s: %w", domain.ErrPersistence, s.name, err)
	}
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("%w: decodificar snapshot %s: %w", domain.ErrPersistence, s.name, err)
	}
	return items, nil
}

// Save reemplaza el snapshot (upsert por nombre).
func (s *SnapshotStore[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: codificar snapshot %s: %w", domain.ErrPersistence, s.name, err)
	}
	query := `
		INSERT INTO collection_snapshots (name, payload, item_count, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET payload = EXCLUDED.payload, item_count = EXCLUDED.item_count, updated_at = EXCLUDED.updated_at`
	if _, err := s.db.Exec(ctx, query, s.name, payload, len(items), time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: guardar snapshot %s: %w", domain.ErrPersistence, s.name, err)
	}
	return nil
}

// Package memory implementa los repositorios de reservas, pagos y usuarios sobre
// colecciones en memoria respaldadas por un repository.SnapshotStore. Cada mutación
// escribe el snapshot completo; un fallo de escritura se registra y no se propaga.
package memory

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/weddingvendor-api/internal/domain/repository"
)

// collection slice ordenado protegido por RWMutex con persistencia de snapshot.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
	store repository.SnapshotStore[T]
	log   zerolog.Logger
}

func newCollection[T any](store repository.SnapshotStore[T], log zerolog.Logger) collection[T] {
	return collection[T]{store: store, log: log}
}

// load lee el snapshot; si está vacío o no se puede leer usa seed (si no es nil) y lo persiste.
func (c *collection[T]) load(ctx context.Context, seed func() []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.store.Load(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("leer snapshot")
		items = nil
	}
	if len(items) > 0 || seed == nil {
		c.items = items
		c.log.Info().Int("items", len(items)).Msg("colección cargada")
		return
	}
	c.items = seed()
	c.log.Info().Int("items", len(c.items)).Msg("colección sembrada con datos de ejemplo")
	c.persistLocked(ctx)
}

// Flush escribe el estado actual.
func (c *collection[T]) Flush(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.persistLocked(ctx)
}

func (c *collection[T]) indexOf(match func(*T) bool) int {
	for i := range c.items {
		if match(&c.items[i]) {
			return i
		}
	}
	return -1
}

// find primera coincidencia (copia) o nil.
func (c *collection[T]) find(match func(*T) bool) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(match); i >= 0 {
		item := c.items[i]
		return &item
	}
	return nil
}

// filter copias de las coincidencias en orden de inserción.
func (c *collection[T]) filter(match func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0, len(c.items))
	for i := range c.items {
		if match(&c.items[i]) {
			item := c.items[i]
			out = append(out, &item)
		}
	}
	return out
}

func (c *collection[T]) insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.persistLocked(context.Background())
}

// replace sustituye la primera coincidencia; false si no existe.
func (c *collection[T]) replace(match func(*T) bool, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(match)
	if i < 0 {
		return false
	}
	c.items[i] = item
	c.persistLocked(context.Background())
	return true
}

// modify aplica fn sobre la primera coincidencia con el lock de escritura tomado
// y devuelve una copia del resultado; false si no existe.
func (c *collection[T]) modify(match func(*T) bool, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(match)
	if i < 0 {
		var zero T
		return zero, false
	}
	fn(&c.items[i])
	c.persistLocked(context.Background())
	return c.items[i], true
}

// remove quita la primera coincidencia; false si no existe.
func (c *collection[T]) remove(match func(*T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(match)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.persistLocked(context.Background())
	return true
}

func (c *collection[T]) persistLocked(ctx context.Context) {
	items := make([]T, len(c.items))
	copy(items, c.items)
	if err := c.store.Save(ctx, items); err != nil {
		c.log.Error().Err(err).Int("items", len(items)).Msg("guardar snapshot")
	}
}

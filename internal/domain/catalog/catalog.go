// Package catalog mantiene el catálogo ordenado de proveedores en memoria:
// altas, bajas, reemplazo completo, filtros, búsqueda y ordenamientos, con
// persistencia de snapshot completo tras cada mutación.
//
// Todas las lecturas devuelven copias: nadie fuera del catálogo comparte
// memoria con las fichas almacenadas.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
	"github.com/jhoicas/weddingvendor-api/internal/domain/repository"
)

// Catalog colección ordenada (orden de inserción) de proveedores.
// Un único RWMutex protege el slice; las escrituras del snapshot ocurren con el
// lock de escritura tomado para que el archivo refleje siempre el orden en memoria.
type Catalog struct {
	mu      sync.RWMutex
	vendors []entity.Vendor
	store   repository.SnapshotStore[entity.Vendor]
	log     zerolog.Logger
}

// New construye un catálogo vacío. Llamar Load antes de servir peticiones.
func New(store repository.SnapshotStore[entity.Vendor], log zerolog.Logger) *Catalog {
	return &Catalog{store: store, log: log}
}

// Load lee el snapshot una sola vez. Si no existe, no se puede leer o está vacío,
// siembra los proveedores de ejemplo y los persiste.
func (c *Catalog) Load(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loaded, err := c.store.Load(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("leer snapshot del catálogo; se usarán datos de ejemplo")
		loaded = nil
	}
	if len(loaded) > 0 {
		c.vendors = loaded
		c.log.Info().Int("vendors", len(loaded)).Msg("catálogo cargado desde snapshot")
		return
	}

	c.vendors = SampleVendors()
	c.log.Info().Int("vendors", len(c.vendors)).Msg("catálogo sin datos, sembrado con proveedores de ejemplo")
	c.persistLocked(ctx)
}

// Flush escribe el estado actual (apagado y volcado periódico).
func (c *Catalog) Flush(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.persistLocked(ctx)
}

// Add agrega la ficha al final del catálogo y devuelve su ID.
// Si llega sin ID se asigna uno ("vendor" + 8 caracteres hex).
func (c *Catalog) Add(v entity.Vendor) string {
	v = v.Clone()
	if v.ID == "" {
		v.ID = NewVendorID()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.vendors = append(c.vendors, v)
	c.persistLocked(context.Background())
	return v.ID
}

// GetByID busca la primera ficha con ese ID.
func (c *Catalog) GetByID(id string) (entity.Vendor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.vendors[i].Clone(), true
	}
	return entity.Vendor{}, false
}

// UpdateByID reemplaza la ficha completa (no es un merge de campos).
// La ficha almacenada conserva el ID buscado.
func (c *Catalog) UpdateByID(id string, v entity.Vendor) bool {
	v = v.Clone()
	v.ID = id

	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.vendors[i] = v
	c.persistLocked(context.Background())
	return true
}

// RemoveByID quita la primera ficha con ese ID.
func (c *Catalog) RemoveByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.removeLocked(i)
	c.persistLocked(context.Background())
	return true
}

// Get devuelve la ficha en la posición index.
func (c *Catalog) Get(index int) (entity.Vendor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkIndex(index); err != nil {
		return entity.Vendor{}, err
	}
	return c.vendors[index].Clone(), nil
}

// RemoveAt quita la ficha en la posición index.
func (c *Catalog) RemoveAt(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.removeLocked(index)
	c.persistLocked(context.Background())
	return nil
}

// Len número de fichas.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vendors)
}

// Snapshot copia ordenada de todas las fichas.
func (c *Catalog) Snapshot() []entity.Vendor {
	return c.filter(func(entity.Vendor) bool { return true })
}

// FilterByCategory fichas cuya categoría es igual a category, sin distinguir mayúsculas.
func (c *Catalog) FilterByCategory(category string) []entity.Vendor {
	fold := cases.Fold()
	want := fold.String(category)
	return c.filter(func(v entity.Vendor) bool {
		return fold.String(v.Category) == want
	})
}

// FilterByLocation fichas cuya ubicación contiene fragment (distingue mayúsculas).
func (c *Catalog) FilterByLocation(fragment string) []entity.Vendor {
	return c.filter(func(v entity.Vendor) bool {
		return strings.Contains(v.Location, fragment)
	})
}

// Search fichas cuyo nombre o descripción contiene query, sin distinguir mayúsculas.
func (c *Catalog) Search(query string) []entity.Vendor {
	fold := cases.Fold()
	q := fold.String(query)
	return c.filter(func(v entity.Vendor) bool {
		return strings.Contains(fold.String(v.Name), q) ||
			strings.Contains(fold.String(v.Description), q)
	})
}

// SortedByPrice copia ordenada por MinPrice. El orden es estable: empates conservan el orden del catálogo.
func (c *Catalog) SortedByPrice(ascending bool) []entity.Vendor {
	out := c.Snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].MinPrice < out[j].MinPrice
		}
		return out[i].MinPrice > out[j].MinPrice
	})
	return out
}

// SortedByRating copia ordenada por Rating descendente (estable).
func (c *Catalog) SortedByRating() []entity.Vendor {
	out := c.Snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out
}

func (c *Catalog) filter(keep func(entity.Vendor) bool) []entity.Vendor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Vendor, 0, len(c.vendors))
	for _, v := range c.vendors {
		if keep(v) {
			out = append(out, v.Clone())
		}
	}
	return out
}

func (c *Catalog) indexOf(id string) int {
	for i := range c.vendors {
		if c.vendors[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) checkIndex(index int) error {
	if index < 0 || index >= len(c.vendors) {
		return fmt.Errorf("%w: index %d, size %d", domain.ErrOutOfRange, index, len(c.vendors))
	}
	return nil
}

func (c *Catalog) removeLocked(i int) {
	copy(c.vendors[i:], c.vendors[i+1:])
	c.vendors[len(c.vendors)-1] = entity.Vendor{}
	c.vendors = c.vendors[:len(c.vendors)-1]
}

// persistLocked escribe el snapshot completo. Un fallo se registra y el catálogo sigue en memoria.
func (c *Catalog) persistLocked(ctx context.Context) {
	items := make([]entity.Vendor, len(c.vendors))
	for i, v := range c.vendors {
		items[i] = v.Clone()
	}
	if err := c.store.Save(ctx, items); err != nil {
		c.log.Error().Err(err).Int("vendors", len(items)).Msg("guardar snapshot del catálogo")
		return
	}
	c.log.Debug().Int("vendors", len(items)).Msg("snapshot del catálogo guardado")
}

// NewVendorID genera un ID con el formato de los proveedores sembrados.
func NewVendorID() string {
	return "vendor" + uuid.New().String()[:8]
}

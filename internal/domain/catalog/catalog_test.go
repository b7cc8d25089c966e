package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/catalog"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// memStore SnapshotStore en memoria que cuenta escrituras y permite simular fallos.
type memStore struct {
	items   []entity.Vendor
	saves   int
	loadErr error
	saveErr error
}

func (s *memStore) Load(context.Context) ([]entity.Vendor, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return append([]entity.Vendor(nil), s.items...), nil
}

func (s *memStore) Save(_ context.Context, items []entity.Vendor) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items = append([]entity.Vendor(nil), items...)
	return nil
}

// newCatalog catálogo cargado desde un snapshot con los proveedores dados.
func newCatalog(t *testing.T, vendors ...entity.Vendor) (*catalog.Catalog, *memStore) {
	t.Helper()
	store := &memStore{items: vendors}
	c := catalog.New(store, zerolog.Nop())
	c.Load(context.Background())
	store.saves = 0
	return c, store
}

func ids(vs []entity.Vendor) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func priced(id string, minPrice float64) entity.Vendor {
	return entity.Vendor{ID: id, Name: "Vendor " + id, MinPrice: minPrice, MaxPrice: minPrice * 2}
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga y siembra
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_SnapshotVacio_SiembraYPersiste(t *testing.T) {
	store := &memStore{}
	c := catalog.New(store, zerolog.Nop())
	c.Load(context.Background())

	assert.Equal(t, 6, c.Len())
	assert.Equal(t, 1, store.saves, "la siembra debe escribirse de vuelta")
	assert.Len(t, store.items, 6)

	categories := map[string]bool{}
	for _, v := range c.Snapshot() {
		categories[v.Category] = true
	}
	for _, want := range []string{"Photographer", "Venue", "Caterer", "Florist", "Entertainment", "Planner"} {
		assert.True(t, categories[want], "falta la categoría %s en la siembra", want)
	}
}

func TestLoad_ErrorDeLectura_SiembraYContinua(t *testing.T) {
	store := &memStore{loadErr: errors.New("disco roto")}
	c := catalog.New(store, zerolog.Nop())
	c.Load(context.Background())

	assert.Equal(t, 6, c.Len())
}

func TestLoad_SnapshotExistente_NoSiembra(t *testing.T) {
	c, store := newCatalog(t, priced("a", 1), priced("b", 2))

	assert.Equal(t, []string{"a", "b"}, ids(c.Snapshot()))
	assert.Zero(t, store.saves)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_ConservaOrdenDeInsercion(t *testing.T) {
	c, store := newCatalog(t, priced("v0", 10))

	for _, id := range []string{"v1", "v2", "v3"} {
		assert.Equal(t, id, c.Add(priced(id, 5)))
	}

	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, ids(c.Snapshot()))
	assert.Equal(t, 3, store.saves, "cada alta persiste el snapshot")
	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, ids(store.items))
}

func TestAdd_SinID_AsignaID(t *testing.T) {
	c, _ := newCatalog(t, priced("v0", 10))

	in := entity.Vendor{Name: "Nuevo", Category: "Florist", MinPrice: 100, MaxPrice: 50}
	id := c.Add(in)

	require.True(t, strings.HasPrefix(id, "vendor"))
	assert.Len(t, id, len("vendor")+8)

	got, ok := c.GetByID(id)
	require.True(t, ok)
	in.ID = id
	assert.Equal(t, in, got, "la ficha se acepta tal cual, incluso con minPrice > maxPrice")
}

func TestGetByID_DevuelveCopia(t *testing.T) {
	v := priced("v1", 100)
	v.Services = []entity.Service{{ID: "s1", Name: "Paquete", Price: 100}}
	c, _ := newCatalog(t, v)

	got, ok := c.GetByID("v1")
	require.True(t, ok)
	got.Name = "mutado"
	got.Services[0].Name = "mutado"

	again, _ := c.GetByID("v1")
	assert.Equal(t, "Vendor v1", again.Name)
	assert.Equal(t, "Paquete", again.Services[0].Name)
}

func TestGetByID_Inexistente(t *testing.T) {
	c, _ := newCatalog(t, priced("v1", 1))
	_, ok := c.GetByID("nope")
	assert.False(t, ok)
}

func TestUpdateByID_ReemplazaFichaCompleta(t *testing.T) {
	original := entity.Vendor{
		ID: "v1", Name: "Old", Category: "Venue", Location: "Chicago, IL",
		Description: "desc", Rating: 4.5, Services: []entity.Service{{ID: "s"}},
	}
	c, store := newCatalog(t, original)

	ok := c.UpdateByID("v1", entity.Vendor{Name: "New", MinPrice: 10})
	require.True(t, ok)

	got, _ := c.GetByID("v1")
	assert.Equal(t, entity.Vendor{ID: "v1", Name: "New", MinPrice: 10}, got,
		"los campos ausentes en la nueva ficha desaparecen (no es merge)")
	assert.Equal(t, 1, store.saves)
}

func TestUpdateByID_Inexistente_NoPersiste(t *testing.T) {
	c, store := newCatalog(t, priced("v1", 1))

	assert.False(t, c.UpdateByID("nope", priced("nope", 1)))
	assert.Zero(t, store.saves)
}

func TestRemoveByID(t *testing.T) {
	c, store := newCatalog(t, priced("v1", 1), priced("v2", 2), priced("v3", 3))

	assert.True(t, c.RemoveByID("v2"))
	assert.Equal(t, []string{"v1", "v3"}, ids(c.Snapshot()))
	assert.Equal(t, []string{"v1", "v3"}, ids(store.items))

	assert.True(t, c.RemoveByID("v1"), "quitar la cabeza")
	assert.Equal(t, []string{"v3"}, ids(c.Snapshot()))
}

func TestRemoveByID_Inexistente_NoCambiaSnapshot(t *testing.T) {
	c, store := newCatalog(t, priced("v1", 1), priced("v2", 2))
	before := c.Snapshot()

	assert.False(t, c.RemoveByID("nope"))
	assert.Equal(t, before, c.Snapshot())
	assert.Zero(t, store.saves)
}

func TestPosicional_FueraDeRango(t *testing.T) {
	c, _ := newCatalog(t, priced("v1", 1), priced("v2", 2))

	got, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.ID)

	for _, idx := range []int{-1, 2, 99} {
		_, err := c.Get(idx)
		assert.ErrorIs(t, err, domain.ErrOutOfRange)
		assert.ErrorIs(t, c.RemoveAt(idx), domain.ErrOutOfRange)
	}

	require.NoError(t, c.RemoveAt(0))
	assert.Equal(t, []string{"v2"}, ids(c.Snapshot()))
}

func TestPersistencia_FalloNoInterrumpe(t *testing.T) {
	c, store := newCatalog(t, priced("v1", 1))
	store.saveErr = errors.New("sin espacio")

	id := c.Add(priced("v2", 2))
	assert.Equal(t, "v2", id)
	assert.True(t, c.UpdateByID("v1", priced("v1", 5)))
	assert.True(t, c.RemoveByID("v2"))
	assert.Equal(t, 3, store.saves, "el fallo no evita intentos posteriores")
	assert.Equal(t, 1, c.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterByCategory_SinDistinguirMayusculas(t *testing.T) {
	c, _ := newCatalog(t,
		entity.Vendor{ID: "a", Category: "Photographer"},
		entity.Vendor{ID: "b", Category: "Venue"},
		entity.Vendor{ID: "c", Category: "photographer"},
		entity.Vendor{ID: "d", Category: "Photographers"},
		entity.Vendor{ID: "e", Category: "PHOTOGRAPHER"},
	)

	assert.Equal(t, []string{"a", "c", "e"}, ids(c.FilterByCategory("Photographer")))
	assert.Empty(t, c.FilterByCategory("Baker"))
}

func TestFilterByLocation_SubcadenaDistingueMayusculas(t *testing.T) {
	c, _ := newCatalog(t,
		entity.Vendor{ID: "a", Location: "New York, NY"},
		entity.Vendor{ID: "b", Location: "Chicago, IL"},
		entity.Vendor{ID: "c", Location: "York Beach, ME"},
	)

	assert.Equal(t, []string{"a", "c"}, ids(c.FilterByLocation("York")))
	assert.Empty(t, c.FilterByLocation("york"))
}

func TestSearch_NombreODescripcion(t *testing.T) {
	c, _ := newCatalog(t,
		entity.Vendor{ID: "p", Name: "Elegant Moments Photography", Description: "candid shots"},
		entity.Vendor{ID: "v", Name: "Royal Estate", Description: "A stunning Garden venue"},
		entity.Vendor{ID: "x", Name: "Divine Cuisine", Description: "menus"},
	)

	assert.Equal(t, []string{"p"}, ids(c.Search("moments")))
	assert.Equal(t, []string{"p"}, ids(c.Search("Moments")))
	assert.Equal(t, []string{"v"}, ids(c.Search("garden")), "coincide por descripción")
	assert.Len(t, c.Search(""), 3)
}

func TestSortedByPrice_EscenarioConcreto(t *testing.T) {
	c, _ := newCatalog(t, priced("v1", 1200), priced("v2", 5000), priced("v3", 45))

	assert.Equal(t, []string{"v3", "v1", "v2"}, ids(c.SortedByPrice(true)))
	assert.Equal(t, []string{"v2", "v1", "v3"}, ids(c.SortedByPrice(false)))
	assert.Equal(t, []string{"v1", "v2", "v3"}, ids(c.Snapshot()), "ordenar no altera el catálogo")
}

func TestSortedByPrice_EstableConEmpates(t *testing.T) {
	c, _ := newCatalog(t,
		priced("a", 100), priced("b", 50), priced("c", 100), priced("d", 50), priced("e", 75),
	)

	asc := c.SortedByPrice(true)
	assert.Equal(t, []string{"b", "d", "e", "a", "c"}, ids(asc))
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].MinPrice, asc[i].MinPrice)
	}

	desc := c.SortedByPrice(false)
	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, ids(desc))
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].MinPrice, desc[i].MinPrice)
	}
}

func TestSortedByRating_DescendenteEstable(t *testing.T) {
	c, _ := newCatalog(t,
		entity.Vendor{ID: "a", Rating: 4.7},
		entity.Vendor{ID: "b", Rating: 4.9},
		entity.Vendor{ID: "c", Rating: 5.0},
		entity.Vendor{ID: "d", Rating: 4.9},
	)

	assert.Equal(t, []string{"c", "b", "d", "a"}, ids(c.SortedByRating()))
}

func TestSnapshot_EsCopiaDefensiva(t *testing.T) {
	c, _ := newCatalog(t, priced("v1", 1), priced("v2", 2))

	snap := c.Snapshot()
	snap[0].ID = "mutado"
	_ = append(snap[:1], priced("intruso", 0))

	assert.Equal(t, []string{"v1", "v2"}, ids(c.Snapshot()))
}

func TestPriceDisplay(t *testing.T) {
	v := entity.Vendor{MinPrice: 1200, MaxPrice: 3000}
	assert.Equal(t, "$1200 - $3000", v.PriceDisplay())
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia
// ──────────────────────────────────────────────────────────────────────────────

func TestConcurrencia_AltasYLecturasSimultaneas(t *testing.T) {
	c, store := newCatalog(t, priced("base", 10))

	const writers, perWriter = 8, 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				c.Add(priced(fmt.Sprintf("w%d-%d", w, i), float64(i)))
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = c.SortedByPrice(true)
				_, _ = c.GetByID("base")
			}
		}()
	}
	wg.Wait()

	want := 1 + writers*perWriter
	assert.Equal(t, want, c.Len())
	assert.Len(t, store.items, want, "el último snapshot refleja todas las altas")
	assert.Equal(t, ids(c.Snapshot()), ids(store.items), "el snapshot persiste el orden en memoria")
}

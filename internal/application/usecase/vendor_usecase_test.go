package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weddingvendor-api/internal/application/dto"
	"github.com/jhoicas/weddingvendor-api/internal/application/usecase"
	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/catalog"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// nopStore SnapshotStore que no guarda nada y arranca vacío (fuerza la semilla).
type nopStore struct{}

func (nopStore) Load(context.Context) ([]entity.Vendor, error) { return nil, nil }
func (nopStore) Save(context.Context, []entity.Vendor) error   { return nil }

func newVendorUseCase(t *testing.T) *usecase.VendorUseCase {
	t.Helper()
	c := catalog.New(nopStore{}, zerolog.Nop())
	c.Load(context.Background())
	return usecase.NewVendorUseCase(c)
}

func responseIDs(list []dto.VendorResponse) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = v.ID
	}
	return out
}

func TestVendorUseCase_List_SinFiltros(t *testing.T) {
	uc := newVendorUseCase(t)

	got := uc.List(dto.VendorListQuery{})
	assert.Equal(t, []string{"vendor1", "vendor2", "vendor3", "vendor4", "vendor5", "vendor6"}, responseIDs(got))
	assert.Equal(t, "$1200 - $3000", got[0].PriceDisplay)
}

func TestVendorUseCase_List_Precedencia(t *testing.T) {
	uc := newVendorUseCase(t)

	tests := []struct {
		name  string
		query dto.VendorListQuery
		want  []string
	}{
		{
			name:  "search gana sobre category",
			query: dto.VendorListQuery{Search: "garden", Category: "Photographer"},
			want:  []string{"vendor2"},
		},
		{
			name:  "category sin distinguir mayúsculas",
			query: dto.VendorListQuery{Category: "photographer", Location: "Miami"},
			want:  []string{"vendor1"},
		},
		{
			name:  "category all cede a location",
			query: dto.VendorListQuery{Category: "all", Location: "Miami"},
			want:  []string{"vendor4"},
		},
		{
			name:  "location all cede a sortBy",
			query: dto.VendorListQuery{Category: "all", Location: "all", SortBy: "priceAsc"},
			want:  []string{"vendor3", "vendor4", "vendor1", "vendor5", "vendor6", "vendor2"},
		},
		{
			name:  "priceDesc",
			query: dto.VendorListQuery{SortBy: "priceDesc"},
			want:  []string{"vendor2", "vendor6", "vendor5", "vendor1", "vendor4", "vendor3"},
		},
		{
			name:  "rating estable en empates",
			query: dto.VendorListQuery{SortBy: "rating"},
			want:  []string{"vendor6", "vendor1", "vendor4", "vendor2", "vendor5", "vendor3"},
		},
		{
			name:  "sortBy desconocido",
			query: dto.VendorListQuery{SortBy: "name"},
			want:  []string{"vendor1", "vendor2", "vendor3", "vendor4", "vendor5", "vendor6"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, responseIDs(uc.List(tt.query)))
		})
	}
}

func TestVendorUseCase_CRUD(t *testing.T) {
	uc := newVendorUseCase(t)

	id := uc.Create(dto.VendorRequest{Name: "Sweet Cakes", Category: "Baker", MinPrice: 300, MaxPrice: 900})
	require.NotEmpty(t, id)

	got, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Sweet Cakes", got.Name)
	assert.Equal(t, "$300 - $900", got.PriceDisplay)

	require.NoError(t, uc.Update(id, dto.VendorRequest{ID: "otro", Name: "Sweeter Cakes"}))
	got, err = uc.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID, "el ID de la ruta prevalece")
	assert.Equal(t, "Sweeter Cakes", got.Name)
	assert.Empty(t, got.Category, "reemplazo completo, no merge")

	require.NoError(t, uc.Delete(id))
	_, err = uc.GetByID(id)
	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestVendorUseCase_NoEncontrado(t *testing.T) {
	uc := newVendorUseCase(t)

	assert.ErrorIs(t, uc.Update("nope", dto.VendorRequest{}), domain.ErrVendorNotFound)
	assert.ErrorIs(t, uc.Delete("nope"), domain.ErrVendorNotFound)
}

func TestVendorUseCase_ServiciosSeConservan(t *testing.T) {
	uc := newVendorUseCase(t)

	got, err := uc.GetByID("vendor1")
	require.NoError(t, err)
	require.Len(t, got.Services, 3)
	assert.Equal(t, "premium", got.Services[1].ID)
	assert.Equal(t, 2000.0, got.Services[1].Price)

	caterer, err := uc.GetByID("vendor3")
	require.NoError(t, err)
	assert.Empty(t, caterer.Services)
}

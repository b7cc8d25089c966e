package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weddingvendor-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/vendors
// ──────────────────────────────────────────────────────────────────────────────

func TestVendorHandler_List_TodosEnOrden(t *testing.T) {
	app := buildApp(t)
	resp := do(t, app, http.MethodGet, "/api/vendors", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []dto.VendorResponse
	decode(t, resp, &out)
	require.Len(t, out, 6)
	assert.Equal(t, "vendor1", out[0].ID)
	assert.Equal(t, "$1200 - $3000", out[0].PriceDisplay)
}

func TestVendorHandler_List_Precedencia(t *testing.T) {
	app := buildApp(t)

	tests := []struct {
		name  string
		query string
		ids   []string
	}{
		{"search gana a category", "?search=garden&category=Photographer", []string{"vendor2"}},
		{"category sin distinguir mayúsculas", "?category=florist", []string{"vendor4"}},
		{"category all cae a location", "?category=all&location=Miami", []string{"vendor4"}},
		{"location distingue mayúsculas", "?location=miami", []string{}},
		{"orden por precio ascendente", "?sortBy=priceAsc", []string{"vendor3", "vendor4", "vendor1", "vendor5", "vendor6", "vendor2"}},
		{"orden por rating estable", "?sortBy=rating", []string{"vendor6", "vendor1", "vendor4", "vendor2", "vendor5", "vendor3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, app, http.MethodGet, "/api/vendors"+tt.query, "", nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var out []dto.VendorResponse
			decode(t, resp, &out)
			ids := make([]string, 0, len(out))
			for _, v := range out {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestVendorHandler_SinServicios_DevuelveListaVacia(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodPost, "/api/vendors", "", dto.VendorRequest{Name: "NoSvc"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.SuccessResponse
	decode(t, resp, &created)
	id, ok := created.Data.(string)
	require.True(t, ok)

	resp = do(t, app, http.MethodGet, "/api/vendors/"+id, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var raw map[string]json.RawMessage
	decode(t, resp, &raw)
	require.Contains(t, raw, "services", "la ficha incluye todos los atributos")
	assert.JSONEq(t, "[]", string(raw["services"]))
}

func TestVendorHandler_GetByID_NoExiste404(t *testing.T) {
	app := buildApp(t)
	resp := do(t, app, http.MethodGet, "/api/vendors/nope", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVendorHandler_CrearActualizarEliminar(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodPost, "/api/vendors", "", dto.VendorRequest{
		Name: "Sweet Cakes", Category: "Baker", Rating: 4.5, MinPrice: 300, MaxPrice: 900, Location: "Boston, MA",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Status string `json:"status"`
		Data   string `json:"data"`
	}
	decode(t, resp, &created)
	assert.Equal(t, "success", created.Status)
	require.Regexp(t, `^vendor[0-9a-f]{8}$`, created.Data)

	resp = do(t, app, http.MethodPut, "/api/vendors/"+created.Data, "", dto.VendorRequest{
		Name: "Sweet Cakes Bakery", Category: "Baker", MinPrice: 350, MaxPrice: 950,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodGet, "/api/vendors/"+created.Data, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got dto.VendorResponse
	decode(t, resp, &got)
	assert.Equal(t, created.Data, got.ID)
	assert.Equal(t, "Sweet Cakes Bakery", got.Name)
	assert.Empty(t, got.Location, "el reemplazo es completo, no un merge")

	resp = do(t, app, http.MethodDelete, "/api/vendors/"+created.Data, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, app, http.MethodDelete, "/api/vendors/"+created.Data, "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVendorHandler_Create_BodyMalformado400(t *testing.T) {
	app := buildApp(t)
	resp := do(t, app, http.MethodPost, "/api/vendors", "", "no es un objeto")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

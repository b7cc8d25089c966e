package http_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weddingvendor-api/internal/application/dto"
)

func TestBookingHandler_SinToken401(t *testing.T) {
	app := buildApp(t)
	resp := do(t, app, http.MethodGet, "/api/vendor/bookings", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBookingHandler_List_SegunRol(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodGet, "/api/vendor/bookings", bearer(t, "admin1", "admin"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []dto.BookingResponse
	decode(t, resp, &all)
	assert.Len(t, all, 3)

	resp = do(t, app, http.MethodGet, "/api/vendor/bookings", bearer(t, "user2", "user"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var own []dto.BookingResponse
	decode(t, resp, &own)
	require.Len(t, own, 1)
	assert.Equal(t, "booking3", own[0].ID)
}

func TestBookingHandler_ListByUser_OtroCliente403(t *testing.T) {
	app := buildApp(t)
	resp := do(t, app, http.MethodGet, "/api/vendor/bookings/user/user1", bearer(t, "user2", "user"), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBookingHandler_ListByVendor_NormalizaIDYExigeStaff(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodGet, "/api/vendor/bookings/vendor/1", bearer(t, "vendoruser1", "vendor"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.BookingResponse
	decode(t, resp, &out)
	assert.Len(t, out, 2)

	resp = do(t, app, http.MethodGet, "/api/vendor/bookings/vendor/vendor1", bearer(t, "user1", "user"), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBookingHandler_Create_TomaUsuarioDelToken(t *testing.T) {
	app := buildApp(t)
	resp := do(t, app, http.MethodPost, "/api/vendor/bookings", bearer(t, "user1", "user"), dto.CreateBookingRequest{
		UserID:      "otro",
		VendorID:    "vendor4",
		ServiceName: "Bridal Bouquet",
		ServiceDate: "2027-05-01",
		Amount:      decimal.NewFromInt(950),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.BookingResponse
	decode(t, resp, &out)
	assert.Regexp(t, `^booking[0-9a-f]{8}$`, out.ID)
	assert.Equal(t, "user1", out.UserID)
	assert.Equal(t, "Test user", out.UserName)
	assert.Equal(t, "Blooming Beauty Florals", out.VendorName)
	assert.Equal(t, "pending", out.Status)
	assert.Equal(t, "pending", out.PaymentStatus)
}

func TestBookingHandler_Create_Errores(t *testing.T) {
	app := buildApp(t)
	tok := bearer(t, "user1", "user")

	resp := do(t, app, http.MethodPost, "/api/vendor/bookings", tok, dto.CreateBookingRequest{
		VendorID: "vendor1", ServiceName: "X", ServiceDate: "15/10/2027",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "fecha con formato inválido")

	resp = do(t, app, http.MethodPost, "/api/vendor/bookings", tok, dto.CreateBookingRequest{
		VendorID: "vendor99", ServiceName: "X", ServiceDate: "2027-10-15",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "proveedor inexistente")
}

func TestBookingHandler_Update_ClienteNoMarcaPagada(t *testing.T) {
	app := buildApp(t)
	notes, paid := "cambiar hora", "paid"

	resp := do(t, app, http.MethodPost, "/api/vendor/bookings", bearer(t, "user1", "user"), dto.CreateBookingRequest{
		VendorID: "vendor5", ServiceName: "Reception Set", ServiceDate: "2027-06-12",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.BookingResponse
	decode(t, resp, &created)

	resp = do(t, app, http.MethodPut, "/api/vendor/bookings/"+created.ID, bearer(t, "user1", "user"),
		dto.UpdateBookingRequest{Notes: &notes, PaymentStatus: &paid})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.BookingResponse
	decode(t, resp, &updated)
	assert.Equal(t, "cambiar hora", updated.Notes)
	assert.Equal(t, "pending", updated.PaymentStatus)

	resp = do(t, app, http.MethodPut, "/api/vendor/bookings/"+created.ID, bearer(t, "user2", "user"),
		dto.UpdateBookingRequest{Notes: &notes})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBookingHandler_Delete_SoloAdmin(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodDelete, "/api/vendor/bookings/booking3", bearer(t, "vendoruser1", "vendor"), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/api/vendor/bookings/booking3", bearer(t, "admin1", "admin"), nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodGet, "/api/vendor/bookings/booking3", bearer(t, "admin1", "admin"), nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

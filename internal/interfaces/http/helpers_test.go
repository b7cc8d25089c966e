package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weddingvendor-api/internal/application/auth"
	"github.com/jhoicas/weddingvendor-api/internal/application/billing"
	"github.com/jhoicas/weddingvendor-api/internal/application/booking"
	"github.com/jhoicas/weddingvendor-api/internal/application/usecase"
	"github.com/jhoicas/weddingvendor-api/internal/domain/catalog"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
	"github.com/jhoicas/weddingvendor-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/weddingvendor-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/weddingvendor-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "wedding-vendor-api-test"
	testExpMin    = 60
)

type nopStore[T any] struct{}

func (nopStore[T]) Load(context.Context) ([]T, error) { return nil, nil }
func (nopStore[T]) Save(context.Context, []T) error   { return nil }

type fakeReceipts struct{}

func (fakeReceipts) GenerateReceiptPDF(context.Context, billing.ReceiptForPDF) ([]byte, error) {
	return []byte("%PDF-1.3 test"), nil
}

// buildApp aplicación completa sobre repositorios en memoria sembrados con los datos de ejemplo.
func buildApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	log := zerolog.Nop()

	vendors := catalog.New(nopStore[entity.Vendor]{}, log)
	vendors.Load(ctx)

	bookingRepo := memory.NewBookingRepository(nopStore[entity.Booking]{}, log)
	bookingRepo.Load(ctx, booking.SampleBookings)
	paymentRepo := memory.NewPaymentRepository(nopStore[entity.Payment]{}, log)
	paymentRepo.Load(ctx, billing.SamplePayments)
	userRepo := memory.NewUserRepository(nopStore[entity.User]{}, log)
	userRepo.Load(ctx, auth.DemoUsers)

	bookingUC := booking.NewBookingUseCase(bookingRepo, vendors)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		VendorUC:  usecase.NewVendorUseCase(vendors),
		BookingUC: bookingUC,
		PaymentUC: billing.NewPaymentUseCase(paymentRepo, bookingUC, fakeReceipts{}),
		AuthUC:    authUC,
		JWTSecret: testJWTSecret,
	})
	return app
}

// bearer genera "Bearer <jwt>" para el usuario y rol dados.
func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, pkgjwt.Identity{UserID: userID, Name: "Test " + role, Role: role}, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// do lanza la petición; body se serializa a JSON si no es nil.
func do(t *testing.T, app *fiber.App, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

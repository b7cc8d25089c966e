package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/weddingvendor-api/internal/application/auth"
	"github.com/jhoicas/weddingvendor-api/internal/application/billing"
	"github.com/jhoicas/weddingvendor-api/internal/application/booking"
	"github.com/jhoicas/weddingvendor-api/internal/application/usecase"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	VendorUC  *usecase.VendorUseCase
	BookingUC *booking.BookingUseCase
	PaymentUC *billing.PaymentUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWTSecret)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/status", authHandler.Status)

	// Vendors (público)
	vendors := api.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Bookings (protegido)
	bookings := api.Group("/vendor/bookings", requireAuth)
	bookingHandler := NewBookingHandler(deps.BookingUC)
	bookings.Get("/", bookingHandler.List)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/user/:userId", bookingHandler.ListByUser)
	bookings.Get("/vendor/:vendorId", RequireRole(entity.RoleVendor, entity.RoleAdmin), bookingHandler.ListByVendor)
	bookings.Get("/:id", bookingHandler.GetByID)
	bookings.Put("/:id", bookingHandler.Update)
	bookings.Delete("/:id", RequireRole(entity.RoleAdmin), bookingHandler.Delete)

	// Payments (protegido)
	payments := api.Group("/payments", requireAuth)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/", paymentHandler.List)
	payments.Post("/", paymentHandler.Process)
	payments.Get("/user/:userId", paymentHandler.ListByUser)
	payments.Get("/booking/:bookingId", paymentHandler.GetByBookingID)
	payments.Get("/:id/receipt", paymentHandler.Receipt)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", RequireRole(entity.RoleAdmin), paymentHandler.Update)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/weddingvendor-api/internal/application/auth"
	"github.com/jhoicas/weddingvendor-api/internal/application/billing"
	"github.com/jhoicas/weddingvendor-api/internal/application/booking"
	"github.com/jhoicas/weddingvendor-api/internal/application/usecase"
	"github.com/jhoicas/weddingvendor-api/internal/domain/catalog"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
	"github.com/jhoicas/weddingvendor-api/internal/domain/repository"
	"github.com/jhoicas/weddingvendor-api/internal/infrastructure/filestore"
	"github.com/jhoicas/weddingvendor-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/weddingvendor-api/internal/infrastructure/pdf"
	"github.com/jhoicas/weddingvendor-api/internal/infrastructure/postgres"
	"github.com/jhoicas/weddingvendor-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/weddingvendor-api/internal/interfaces/http"
	"github.com/jhoicas/weddingvendor-api/pkg/config"
	"github.com/jhoicas/weddingvendor-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var pool *pgxpool.Pool
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema de snapshots")
		}
	}

	// Colecciones en memoria: se cargan del snapshot o se siembran con datos de ejemplo.
	vendors := catalog.New(openStore[entity.Vendor](cfg.Storage, pool, "vendors"), log.Component("catalog"))
	vendors.Load(ctx)

	bookingRepo := memory.NewBookingRepository(openStore[entity.Booking](cfg.Storage, pool, "bookings"), log.Component("bookings"))
	bookingRepo.Load(ctx, booking.SampleBookings)

	paymentRepo := memory.NewPaymentRepository(openStore[entity.Payment](cfg.Storage, pool, "payments"), log.Component("payments"))
	paymentRepo.Load(ctx, billing.SamplePayments)

	flushers := map[string]scheduler.Flusher{
		"vendors":  vendors,
		"bookings": bookingRepo,
		"payments": paymentRepo,
	}

	// Usuarios: con PostgreSQL una fila por usuario (email único en la base); si no, snapshot en archivo.
	var userRepo repository.UserRepository
	if pool != nil {
		pgUsers := postgres.NewUserRepository(pool)
		if err := pgUsers.Seed(ctx, auth.DemoUsers); err != nil {
			log.Fatal().Err(err).Msg("sembrar usuarios demo")
		}
		userRepo = pgUsers
	} else {
		memUsers := memory.NewUserRepository(filestore.New[entity.User](cfg.Storage.DataDir, "users", cfg.Storage.Compress), log.Component("users"))
		memUsers.Load(ctx, auth.DemoUsers)
		flushers["users"] = memUsers
		userRepo = memUsers
	}

	vendorUC := usecase.NewVendorUseCase(vendors)
	bookingUC := booking.NewBookingUseCase(bookingRepo, vendors)

	// PDF: comprobante de pago
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	paymentUC := billing.NewPaymentUseCase(paymentRepo, bookingUC, receiptGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	var flushScheduler *scheduler.FlushScheduler
	if cfg.Scheduler.FlushCron != "" {
		flushScheduler, err = scheduler.New(cfg.Scheduler.FlushCron, flushers, log.Component("scheduler"))
		if err != nil {
			log.Fatal().Err(err).Msg("configurar volcado periódico")
		}
		flushScheduler.Start()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Wedding Vendor API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		VendorUC:  vendorUC,
		BookingUC: bookingUC,
		PaymentUC: paymentUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if flushScheduler != nil {
		flushScheduler.Stop(shutdownCtx)
	}

	// último volcado con el servidor ya detenido
	for name, f := range flushers {
		f.Flush(shutdownCtx)
		log.Info().Str("collection", name).Msg("snapshot guardado")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore elige el backend de snapshots según STORAGE_DRIVER.
func openStore[T any](cfg config.StorageConfig, pool *pgxpool.Pool, name string) repository.SnapshotStore[T] {
	if cfg.Driver == config.StorageDriverPostgres {
		return postgres.NewSnapshotStore[T](pool, name)
	}
	return filestore.New[T](cfg.DataDir, name, cfg.Compress)
}

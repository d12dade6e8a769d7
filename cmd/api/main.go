package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jenil-sutariya/Smart-Kitchen-AI/docs"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/auth"
	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/orders"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/usecase"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/infrastructure/postgres"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/infrastructure/scheduler"
	httpRouter "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/interfaces/http"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/pkg/config"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/pkg/logger"
)

// @title        Smart Kitchen API
// @version      1.0
// @description  Libro diario de inventario y motor de pedidos para cocina
func main() {
	cfg, err := config.Load()
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockItemRepository(pool)
	ledgerRepo := postgres.NewLedgerEntryRepository(pool)
	dayRepo := postgres.NewDayStatusRepository(pool)
	logRepo := postgres.NewInventoryLogRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	wasteRepo := postgres.NewWasteRecordRepository(pool)
	menuRepo := postgres.NewMenuItemRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := appinventory.NewLedgerUseCase(txRunner, dayRepo, ledgerRepo)
	dayUC := appinventory.NewDayBoundaryUseCase(txRunner, dayRepo)
	sweepUC := appinventory.NewExpirySweepUseCase(txRunner, stockRepo, log)
	wasteUC := appinventory.NewWasteUseCase(txRunner, wasteRepo)
	availabilityUC := appinventory.NewAvailabilityUseCase(menuRepo, stockRepo)
	auditUC := appinventory.NewAuditUseCase(logRepo, stockRepo)
	orderUC := orders.NewOrderUseCase(txRunner, ledgerUC, orderRepo, menuRepo, stockRepo, log)
	stockItemUC := usecase.NewStockItemUseCase(stockRepo)
	menuItemUC := usecase.NewMenuItemUseCase(menuRepo, stockRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	sched := scheduler.New(cfg.Sweep, sweepUC, log)
	sched.Start()
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Smart Kitchen API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockItemUC:  stockItemUC,
		MenuItemUC:   menuItemUC,
		LedgerUC:     ledgerUC,
		WasteUC:      wasteUC,
		SweepUC:      sweepUC,
		DayUC:        dayUC,
		Availability: availabilityUC,
		AuditUC:      auditUC,
		OrderUC:      orderUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}

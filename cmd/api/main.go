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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/food-order-api/internal/application/analytics"
	"github.com/jhoicas/food-order-api/internal/application/auth"
	"github.com/jhoicas/food-order-api/internal/application/ordering"
	"github.com/jhoicas/food-order-api/internal/application/usecase"
	"github.com/jhoicas/food-order-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/food-order-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/food-order-api/internal/interfaces/http"
	"github.com/jhoicas/food-order-api/pkg/config"
	"github.com/jhoicas/food-order-api/pkg/logger"
	"github.com/jhoicas/food-order-api/pkg/metrics"
)

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

	// Precios y totales viajan como números JSON.
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.Session.Secret == "" {
		cfg.Session.Secret = uuid.NewString() + uuid.NewString()
		log.Warn().Msg("SESSION_SECRET vacío: se usa un secreto aleatorio, las sesiones no sobreviven un reinicio")
	}

	// Stores en memoria
	userRepo := memory.NewUserRepository()
	sessionRepo := memory.NewSessionRepository()
	menuRepo := memory.NewMenuItemRepository()
	cartRepo := memory.NewCartRepository()
	orderRepo := memory.NewOrderRepository()

	if cfg.Menu.Seed {
		n, err := memory.SeedMenu(menuRepo)
		if err != nil {
			log.Fatal().Err(err).Msg("cargar menú inicial")
		}
		log.Info().Int("items", n).Msg("menú de demostración cargado")
	}

	gate := auth.NewGate(userRepo, sessionRepo, auth.TokenConfig{
		Secret:     cfg.Session.Secret,
		Issuer:     cfg.Session.Issuer,
		TTLMinutes: cfg.Session.TTLMinutes,
	})
	authUC := auth.NewAuthUseCase(userRepo, sessionRepo, gate)
	menuUC := usecase.NewMenuUseCase(menuRepo)

	// Carrito y checkout comparten el candado por usuario.
	locks := ordering.NewUserLocks()
	cartUC := usecase.NewCartUseCase(cartRepo, menuRepo, locks)
	orderUC := ordering.NewOrderUseCase(menuRepo, orderRepo, cartRepo, locks, ordering.Options{
		EnforceTransitions: cfg.Orders.EnforceTransitions,
	})
	receiptUC := ordering.NewReceiptUseCase(orderRepo, infrapdf.NewMarotoReceiptGenerator(cfg.App.Name))
	dashboardUC := appanalytics.NewDashboardUseCase(orderRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(metrics.Middleware())
	app.Use(httpRouter.RequestLogger())
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Swagger.Enabled {
		if _, err := os.Stat(cfg.Swagger.FilePath); err != nil {
			log.Warn().Err(err).Str("file", cfg.Swagger.FilePath).Msg("swagger deshabilitado: archivo no encontrado")
		} else {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Swagger.FilePath,
				Path:     "docs",
				Title:    "Food Order API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Gate:        gate,
		AuthUC:      authUC,
		MenuUC:      menuUC,
		CartUC:      cartUC,
		OrderUC:     orderUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.App.Env == "production",
		},
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

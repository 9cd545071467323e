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

	"github.com/labmetricas/labstock-api/internal/application/audit"
	"github.com/labmetricas/labstock-api/internal/application/auth"
	"github.com/labmetricas/labstock-api/internal/application/catalogue"
	"github.com/labmetricas/labstock-api/internal/application/movement"
	"github.com/labmetricas/labstock-api/internal/application/product"
	infrapdf "github.com/labmetricas/labstock-api/internal/infrastructure/pdf"
	"github.com/labmetricas/labstock-api/internal/infrastructure/postgres"
	"github.com/labmetricas/labstock-api/internal/infrastructure/qrimg"
	httpRouter "github.com/labmetricas/labstock-api/internal/interfaces/http"
	"github.com/labmetricas/labstock-api/pkg/config"
	"github.com/labmetricas/labstock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	// Repositorios sobre el pool (las variantes transaccionales las crea TxRunner)
	productRepo := postgres.NewProductRepository(pool)
	qrRepo := postgres.NewQrCodeRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	discountRepo := postgres.NewProductDiscountLogRepository(pool)
	catalogueRepo := postgres.NewStockCatalogueRepository(pool)
	statusRepo := postgres.NewProductStatusRepository(pool)
	warehouseRepo := postgres.NewWarehouseTypeRepository(pool)
	unitRepo := postgres.NewUnitOfMeasurementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditor := audit.NewRecorder(auditRepo, log)
	auditQuery := audit.NewQuery(auditRepo)

	productUC := product.NewUseCase(txRunner, productRepo, qrRepo, catalogueRepo, statusRepo, warehouseRepo, unitRepo, auditor)
	discountUC := product.NewDiscountUseCase(txRunner, productRepo, discountRepo, auditor)
	movementUC := movement.NewUseCase(movementRepo)
	catalogueUC := catalogue.NewUseCase(catalogueRepo, statusRepo, warehouseRepo, unitRepo, auditor)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auditor)

	qrRenderer := qrimg.NewRenderer()
	labelGen := infrapdf.NewLabelGenerator()

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
		Title:    "LabStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		DiscountUC:  discountUC,
		MovementUC:  movementUC,
		CatalogueUC: catalogueUC,
		AuthUC:      authUC,
		AuditQuery:  auditQuery,
		QrRenderer:  qrRenderer,
		LabelGen:    labelGen,
		JWTSecret:   cfg.JWT.Secret,
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

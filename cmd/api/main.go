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

	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	"github.com/jhoicas/PuntoVenta-api/internal/application/authz"
	"github.com/jhoicas/PuntoVenta-api/internal/application/inventory"
	"github.com/jhoicas/PuntoVenta-api/internal/application/sales"
	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/PuntoVenta-api/internal/infrastructure/pdf"
	"github.com/jhoicas/PuntoVenta-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/PuntoVenta-api/internal/interfaces/http"
	"github.com/jhoicas/PuntoVenta-api/pkg/config"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	orgRepo := postgres.NewOrganizationRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de autorización: todo guard de organización pasa por aquí.
	engine := authz.NewEngine(membershipRepo, storeRepo, productRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	})
	orgUC := usecase.NewOrganizationUseCase(orgRepo, membershipRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo, orgRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	membershipUC := usecase.NewMembershipUseCase(membershipRepo)
	userUC := usecase.NewUserUseCase(userRepo, membershipRepo, engine)
	stockUC := inventory.NewStockUseCase(inventoryRepo)

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	saleUC := sales.NewSaleUseCase(saleRepo, productRepo, txRunner, receiptGenerator)

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
		Title:    "PuntoVenta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		OrganizationUC: orgUC,
		StoreUC:        storeUC,
		ProductUC:      productUC,
		RoleUC:         roleUC,
		MembershipUC:   membershipUC,
		UserUC:         userUC,
		StockUC:        stockUC,
		SaleUC:         saleUC,
		Engine:         engine,
		JWTSecret:      cfg.JWT.Secret,
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

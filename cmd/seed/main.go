// Command seed prepara una base de datos recién creada: rol de sistema
// super-admin, usuario administrador global y, opcionalmente, datos de
// demostración (organización, tienda, producto y stock inicial).
//
// Uso:
//
//	SEED_ADMIN_EMAIL=admin@local SEED_ADMIN_PASSWORD=changeme go run ./cmd/seed
//	SEED_DEMO=true go run ./cmd/seed   # incluye datos de demostración
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/infrastructure/postgres"
	"github.com/jhoicas/PuntoVenta-api/pkg/config"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "seed"})

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

	roleUC := usecase.NewRoleUseCase(roleRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	})

	// 1. Rol de sistema super-admin (idempotente).
	role, err := roleUC.EnsureSuperAdmin("Super Admin", "Rol de sistema con acceso total")
	if err != nil {
		log.Fatal().Err(err).Msg("crear rol super-admin")
	}
	log.Info().Str("role_id", role.ID).Str("key", role.Key).Msg("rol super-admin listo")

	// 2. Usuario administrador global.
	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@puntoventa.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "changeme123")
	adminUser, err := authUC.Register(dto.RegisterRequest{
		Email:    adminEmail,
		Password: adminPassword,
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	})
	switch {
	case err == nil:
		log.Info().Str("user_id", adminUser.ID).Str("email", adminEmail).Msg("usuario admin creado")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Info().Str("email", adminEmail).Msg("usuario admin ya existe, se omite")
	default:
		log.Fatal().Err(err).Msg("crear usuario admin")
	}

	// 3. Datos de demostración (solo si SEED_DEMO=true).
	if os.Getenv("SEED_DEMO") != "true" {
		log.Info().Msg("seed completado")
		return
	}

	now := time.Now()
	org := &entity.Organization{ID: uuid.New().String(), Name: "Tienda Demo", CreatedAt: now, UpdatedAt: now}
	if err := orgRepo.Create(org); err != nil {
		log.Fatal().Err(err).Msg("crear organización demo")
	}
	store := &entity.Store{
		ID: uuid.New().String(), OrgID: org.ID,
		Name: "Sucursal Centro", Code: "CENTRO",
		CreatedAt: now, UpdatedAt: now,
	}
	if err := storeRepo.Create(store); err != nil {
		log.Fatal().Err(err).Msg("crear tienda demo")
	}
	product := &entity.Product{
		ID: uuid.New().String(), OrgID: org.ID,
		SKU: "CAFE-500", Name: "Café molido 500g",
		Price:     decimal.RequireFromString("18.50"),
		CreatedAt: now, UpdatedAt: now,
	}
	if err := productRepo.Create(product); err != nil {
		log.Fatal().Err(err).Msg("crear producto demo")
	}
	if err := inventoryRepo.Set(&entity.Inventory{
		OrgID: org.ID, StoreID: store.ID, ProductID: product.ID, Qty: 100, UpdatedAt: now,
	}); err != nil {
		log.Fatal().Err(err).Msg("fijar stock demo")
	}

	// El admin global también queda vinculado como org-admin de la demo para
	// poder ejercitar los flujos que no pasan por el atajo de super-admin.
	if adminUser != nil {
		if err := membershipRepo.LinkUserOrg(&entity.UserOrganization{
			ID: uuid.New().String(), UserID: adminUser.ID, OrgID: org.ID,
			Role: entity.OrgRoleAdmin, CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			log.Fatal().Err(err).Msg("vincular admin a organización demo")
		}
	}

	log.Info().
		Str("org_id", org.ID).
		Str("store_id", store.ID).
		Str("product_id", product.ID).
		Msg("datos de demostración listos")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

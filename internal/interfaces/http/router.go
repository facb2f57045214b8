package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	"github.com/jhoicas/PuntoVenta-api/internal/application/authz"
	"github.com/jhoicas/PuntoVenta-api/internal/application/inventory"
	"github.com/jhoicas/PuntoVenta-api/internal/application/sales"
	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	OrganizationUC *usecase.OrganizationUseCase
	StoreUC        *usecase.StoreUseCase
	ProductUC      *usecase.ProductUseCase
	RoleUC         *usecase.RoleUseCase
	MembershipUC   *usecase.MembershipUseCase
	UserUC         *usecase.UserUseCase
	StockUC        *inventory.StockUseCase
	SaleUC         *sales.SaleUseCase
	Engine         *authz.Engine
	JWTSecret      string
}

// Router registra las rutas de la API. Cada grupo protegido lleva primero el
// middleware de autenticación y después el guard de autorización que
// corresponde a la operación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	guard := NewAuthzMiddleware(deps.Engine)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Organizations (protegido)
	orgHandler := NewOrganizationHandler(deps.OrganizationUC, deps.MembershipUC)
	orgs := protected.Group("/organizations")
	orgs.Post("/", guard.SuperAdmin(), orgHandler.Create)
	orgs.Get("/", guard.SuperAdmin(), orgHandler.List)
	orgs.Post("/link", guard.OrgAdminAllFromBody(), orgHandler.LinkUser)
	orgs.Get("/by-user/:userId", guard.TargetUserFromParam("userId"), orgHandler.LinksByUser)
	orgs.Get("/:id", guard.OrgMemberFromParam("id"), orgHandler.GetByID)

	// Vistas del propio usuario
	protected.Get("/my-orgs", orgHandler.ListMine)

	// Stores (protegido)
	storeHandler := NewStoreHandler(deps.StoreUC, deps.MembershipUC)
	stores := protected.Group("/stores")
	stores.Post("/", guard.StoreMutation(), storeHandler.Create)
	stores.Get("/:id", guard.StoreMemberFromParam("id"), storeHandler.GetByID)
	stores.Put("/:id", guard.StoreMutation(), storeHandler.Update)

	// Vinculación de cajeros a tiendas
	userStores := protected.Group("/user-stores")
	userStores.Post("/link", guard.StoreAdminFromBody(), storeHandler.LinkUser)
	userStores.Get("/mine", storeHandler.MyStoreLinks)

	// Listados por organización (cualquier miembro)
	orgs.Get("/:orgId/stores", guard.OrgMemberFromParam("orgId"), storeHandler.ListByOrg)

	// Products (protegido)
	productHandler := NewProductHandler(deps.ProductUC, deps.Engine)
	products := protected.Group("/products")
	products.Post("/", guard.ProductMutation(), productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", guard.ProductMutation(), productHandler.Update)
	products.Delete("/:id", guard.ProductMutation(), productHandler.Delete)
	orgs.Get("/:orgId/products", guard.OrgMemberFromParam("orgId"), productHandler.ListByOrg)

	// Roles (solo super-admin)
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles := protected.Group("/roles", guard.SuperAdmin())
	roles.Post("/", roleHandler.Create)
	roles.Post("/super-admin", roleHandler.EnsureSuperAdmin)
	roles.Get("/", roleHandler.List)
	roles.Put("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Delete)

	// Users (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users")
	users.Post("/", guard.SuperAdmin(), userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/by-org/:orgId", guard.OrgAdminFromParam("orgId"), userHandler.ListByOrg)
	users.Patch("/:id", guard.TargetUserFromParam("id"), userHandler.Update)

	// Perfil propio
	protected.Get("/me", userHandler.Me)
	protected.Patch("/me", userHandler.UpdateMe)

	// Inventory (protegido): fijar stock requiere rol grueso admin además del
	// guard de organización, como el resto de mutaciones de inventario.
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	inv := protected.Group("/inventory")
	inv.Put("/:orgId/:storeId/:productId",
		RequireRole(entity.RoleAdmin), guard.OrgAdminFromParam("orgId"), inventoryHandler.SetStock)
	inv.Get("/:orgId/:storeId/:productId",
		guard.OrgMemberFromParam("orgId"), inventoryHandler.GetStock)

	// Sales (protegido)
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Engine)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", guard.StoreMemberFromBody(), saleHandler.Create)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	stores.Get("/:storeId/sales", guard.StoreMemberFromParam("storeId"), saleHandler.ListByStore)
}

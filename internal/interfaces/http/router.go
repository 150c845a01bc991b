package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oktech/boasaude-api/internal/application/auth"
	"github.com/oktech/boasaude-api/internal/application/usecase"
	"github.com/oktech/boasaude-api/internal/domain/entity"
	"github.com/oktech/boasaude-api/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ShopUC    *usecase.ShopUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	UserRepo  repository.UserRepository
	JWTSecret string
	JWTIssuer string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	// Toda a árvore /v1 passa pela resolução de identidade; sem header a
	// requisição segue anônima e os gates decidem depois.
	v1 := app.Group("/v1", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer, deps.UserRepo))

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := v1.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	users := v1.Group("/users")
	users.Get("/all", RequireAuthority(entity.AuthorityAdmin), userHandler.List)
	users.Put("/:id/role", RequireAuthority(entity.AuthorityAdmin), userHandler.UpdateRole)
	users.Get("/", RequireAuth(), userHandler.Me)
	users.Put("/", RequireAuth(), userHandler.Update)
	users.Delete("/", RequireAuth(), userHandler.Delete)

	// Shops
	shopHandler := NewShopHandler(deps.ShopUC)
	productHandler := NewProductHandler(deps.ProductUC)
	shops := v1.Group("/shops")
	shops.Get("/all", shopHandler.List)
	shops.Get("/get/:id", shopHandler.GetByID)
	shops.Get("/:shopId/products", productHandler.ListByShop)
	shops.Post("/create", RequireAuth(), shopHandler.Create)
	shops.Get("/", RequireAuth(), shopHandler.GetMine)
	shops.Put("/:id", RequireAuth(), shopHandler.Update)
	shops.Delete("/:id", RequireAuth(), shopHandler.Delete)

	// Products
	products := v1.Group("/products")
	products.Get("/get", productHandler.List)
	products.Get("/get/:id", productHandler.GetByID)
	products.Post("/create/:shopId", RequireAuth(), productHandler.Create)
	products.Put("/update/:id", RequireAuth(), productHandler.Update)
	products.Delete("/delete/:id", RequireAuth(), productHandler.Delete)

	// Orders (tudo requer identidade)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := v1.Group("/orders", RequireAuth())
	orders.Post("/create", orderHandler.Create)
	orders.Post("/buy/:orderId/:status", orderHandler.UpdateStatus)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
}

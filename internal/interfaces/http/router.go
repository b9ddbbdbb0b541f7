package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andreshreposo/ecommerce-api/internal/application/auth"
	"github.com/andreshreposo/ecommerce-api/internal/application/usecase"
	"github.com/andreshreposo/ecommerce-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	CartUC    *usecase.CartUseCase
	UserUC    *usecase.UserUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API. La autorización fina (ownership,
// verificación premium) vive en la política de dominio; aquí solo quedan
// autenticación y los gates de rol gruesos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sessions (público)
	sessions := api.Group("/sessions")
	sessionHandler := NewSessionHandler(deps.AuthUC)
	sessions.Post("/register", sessionHandler.Register)
	sessions.Post("/login", sessionHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido; crear/mutar lo decide la política por actor)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:pid", productHandler.GetByID)
	products.Put("/:pid", productHandler.Update)
	products.Delete("/:pid", productHandler.Delete)

	// Cart (protegido; cualquier actor autenticado)
	cart := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Post("/", cartHandler.Create)
	cart.Get("/:cid", cartHandler.GetByID)
	cart.Put("/:cid", cartHandler.Replace)
	cart.Delete("/:cid", cartHandler.Delete)
	cart.Delete("/:cid/products", cartHandler.Clear)
	cart.Post("/:cid/product/:pid", cartHandler.AddProduct)
	cart.Put("/:cid/product/:pid", cartHandler.SetQuantity)
	cart.Delete("/:cid/product/:pid", cartHandler.RemoveProduct)

	// Users (protegido; listado y promoción solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireRole(entity.RoleAdmin), userHandler.List)
	users.Post("/premium/:uid", RequireRole(entity.RoleAdmin), userHandler.PromoteToPremium)
	users.Get("/:uid", userHandler.GetByID)
	users.Post("/:uid/documents", userHandler.SetDocuments)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC     *usecase.AccountUseCase
	CustomerUC *usecase.AccountUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	CatalogUC  *usecase.CatalogPDFUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	// AuthRequired protege cuentas y catálogo con Bearer Token.
	AuthRequired bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo la consulta por id)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/:id", AuthMiddleware(deps.JWTSecret), authHandler.GetByID)

	// Con AuthRequired cada grupo de recursos exige Bearer; auth y rutas desconocidas quedan fuera.
	var protect []fiber.Handler
	if deps.AuthRequired {
		protect = append(protect, AuthMiddleware(deps.JWTSecret))
	}

	registerAccountRoutes(api.Group("/users", protect...), NewAccountHandler(deps.UserUC))
	registerAccountRoutes(api.Group("/customers", protect...), NewAccountHandler(deps.CustomerUC))

	categories := api.Group("/categories", protect...)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Disable)

	products := api.Group("/products", protect...)
	productHandler := NewProductHandler(deps.ProductUC, deps.CatalogUC)
	products.Get("/catalog.pdf", productHandler.CatalogPDF)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Disable)
}

func registerAccountRoutes(g fiber.Router, h *AccountHandler) {
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/email/:email", h.GetByEmail)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Patch("/:id/senha", h.UpdatePassword)
	g.Delete("/:id", h.Delete)
}

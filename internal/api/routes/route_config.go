package routes

import (
	"Recipe-Radar-Backend/internal/api/handlers"
	"Recipe-Radar-Backend/internal/middleware"
	"Recipe-Radar-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	ImportHandler    handlers.ImportHandler
	CatalogHandler   handlers.CatalogHandler
	RecommendHandler handlers.RecommendHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Imports()
	c.Catalog()
	c.Recommendations()
	c.GuestRoute()
}

// Imports covers the bulk upload surface: file intake, batch progress, cancel,
// and the per-batch review queues. Admin only.
func (c *Config) Imports() {
	imports := c.App.Group("/api/v1/imports",
		c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly)
	{
		imports.Post("", c.ImportHandler.UploadImport)
		imports.Get("/:id", c.ImportHandler.GetBatchStatus)
		imports.Post("/:id/cancel", c.ImportHandler.CancelImport)
		imports.Get("/:id/pending-ingredients", c.ImportHandler.GetPendingIngredients)
		imports.Get("/:id/pending-recipes", c.ImportHandler.GetPendingRecipes)
	}
}

// Catalog covers the approved ingredient list and the approval gate.
func (c *Config) Catalog() {
	ingredients := c.App.Group("/api/v1/ingredients")
	ingredients.Get("", c.CatalogHandler.GetIngredients)
	ingredients.Post("/recompute-seasonings",
		c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly,
		c.CatalogHandler.RecomputeSeasoningFlags)

	pending := c.App.Group("/api/v1/pending",
		c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly)
	{
		pending.Post("/ingredients/:id/approve", c.CatalogHandler.ApproveIngredient)
		pending.Post("/ingredients/:id/reject", c.CatalogHandler.RejectIngredient)
		pending.Post("/ingredients/:id/needs-review", c.CatalogHandler.MarkIngredientNeedsReview)
		pending.Post("/recipes/:id/approve", c.CatalogHandler.ApproveRecipe)
		pending.Post("/recipes/:id/reject", c.CatalogHandler.RejectRecipe)
	}
}

func (c *Config) Recommendations() {
	c.App.Post("/api/v1/recommendations", c.RecommendHandler.Recommend)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

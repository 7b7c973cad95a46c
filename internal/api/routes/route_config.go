package routes

import (
	"Recipe-Catalog-Service/internal/api/handlers"
	"Recipe-Catalog-Service/internal/middleware"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.Recipes()
	c.Ingredients()
	c.GuestRoute()
}

func (c *Config) Recipes() {
	c.App.Get("/recipes", c.RecipeHandler.GetRecipes)
	c.App.Get("/recipes/:id", c.RecipeHandler.GetRecipeDetail)
	c.App.Post("/recipes", c.RecipeHandler.CreateRecipe)
	// The delete path keeps its historical shape: id glued to the segment,
	// e.g. DELETE /delete_recipe42.
	c.App.Delete("/delete_recipe:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Ingredients() {
	c.App.Post("/ingredients", c.IngredientHandler.CreateIngredient)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

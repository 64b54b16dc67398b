package routes

import (
	"Resep-HPP/domain"
	"Resep-HPP/internal/api/handlers"
	"Resep-HPP/internal/middleware"
	"Resep-HPP/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	FoodHandler      handlers.FoodHandler
	RecipeHandler    handlers.RecipeHandler
	PlanHandler      handlers.PlanHandler
	SettingHandler   handlers.SettingHandler
	AssistantHandler handlers.AssistantHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Foods()
	c.Recipes()
	c.Plans()
	c.Settings()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))

	foods.Get("", c.FoodHandler.GetFoods)
	foods.Get("/:id", c.FoodHandler.GetFoodDetail)
	foods.Post("/draft", c.AssistantHandler.DraftFood)

	// only owners edit the shared catalogue
	owner := c.Middleware.RequireRole(domain.RoleOwner)
	foods.Post("", owner, c.FoodHandler.AddFood)
	foods.Put("/:id", owner, c.FoodHandler.UpdateFood)
	foods.Delete("/:id", owner, c.FoodHandler.DeleteFood)
	foods.Put("/:id/conversions", owner, c.FoodHandler.SetConversions)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

	recipes.Get("/:id/cost", c.RecipeHandler.GetRecipeCost)
	recipes.Post("/:id/scale", c.RecipeHandler.ScaleRecipe)
	recipes.Post("/:id/instructions/draft", c.AssistantHandler.DraftInstructions)
}

func (c *Config) Plans() {
	plans := c.App.Group("/api/v1/plans", c.Middleware.AuthMiddleware(c.JWTService))

	plans.Post("/compute", c.PlanHandler.ComputePlan)
	plans.Post("/export", c.PlanHandler.ExportPlan)
	plans.Get("/exports", c.PlanHandler.GetExports)
}

func (c *Config) Settings() {
	settings := c.App.Group("/api/v1/settings", c.Middleware.AuthMiddleware(c.JWTService))

	settings.Get("", c.SettingHandler.GetSettings)
	settings.Put("", c.Middleware.RequireRole(domain.RoleOwner), c.SettingHandler.UpdateSettings)
}

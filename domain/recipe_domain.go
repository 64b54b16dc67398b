package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessGetRecipeCost   = "success get recipe cost"
	MessageSuccessScaleRecipe     = "recipe scaled successfully"

	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedGetRecipeCost   = "failed to get recipe cost"
	MessageFailedScaleRecipe     = "failed to scale recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrInvalidServings          = errors.New("servings must be at least 1")
	ErrInvalidQuantity          = errors.New("quantity must be positive")
	ErrInvalidMargin            = errors.New("margin percent must not be negative")
	ErrInvalidCost              = errors.New("cost must not be negative")
)

type (
	IngredientRequest struct {
		FoodID       string  `json:"food_id" validate:"required,uuid"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required"`
		DisplayOrder *int    `json:"display_order" validate:"omitempty,min=0"`
	}

	RecipeRequest struct {
		Name                     string              `json:"name" validate:"required"`
		Description              string              `json:"description" validate:"omitempty"`
		Instructions             string              `json:"instructions" validate:"omitempty"`
		Servings                 int                 `json:"servings" validate:"omitempty,min=1"`
		CostOperationalPerRecipe float64             `json:"cost_operational_per_recipe" validate:"min=0"`
		CostLaborPerRecipe       float64             `json:"cost_labor_per_recipe" validate:"min=0"`
		MarginPercent            *float64            `json:"margin_percent" validate:"omitempty,min=0"`
		Ingredients              []IngredientRequest `json:"ingredients" validate:"dive"`
	}

	ScaleRecipeRequest struct {
		TargetServings float64 `json:"target_servings" validate:"required,gte=1"`
	}

	IngredientResponse struct {
		ID           string  `json:"id"`
		FoodID       string  `json:"food_id,omitempty"`
		FoodName     string  `json:"food_name,omitempty"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
		Grams        float64 `json:"grams"`
		DisplayOrder int     `json:"display_order"`
		Missing      bool    `json:"missing,omitempty"`
	}

	Recipe struct {
		ID                       string    `json:"id"`
		Name                     string    `json:"name"`
		Description              string    `json:"description"`
		Servings                 int       `json:"servings"`
		CostOperationalPerRecipe float64   `json:"cost_operational_per_recipe"`
		CostLaborPerRecipe       float64   `json:"cost_labor_per_recipe"`
		MarginPercent            *float64  `json:"margin_percent"`
		CreatedAt                time.Time `json:"created_at"`
	}

	RecipeDetail struct {
		Recipe
		Instructions string               `json:"instructions"`
		Ingredients  []IngredientResponse `json:"ingredients"`
	}

	RecipeListResponse struct {
		Recipes    []Recipe           `json:"recipes"`
		Pagination PaginationResponse `json:"pagination"`
	}

	RecipeCostResponse struct {
		RecipeID  string            `json:"recipe_id"`
		Servings  int               `json:"servings"`
		Nutrition NutritionResponse `json:"nutrition"`
		Cost      CostResponse      `json:"cost"`
		// per serving values, Servings is never below 1 here
		NutritionPerServing NutritionResponse `json:"nutrition_per_serving"`
		HPPPerServing       float64           `json:"hpp_per_serving"`
	}

	ScaledRecipeResponse struct {
		RecipeID       string               `json:"recipe_id"`
		BaseServings   int                  `json:"base_servings"`
		TargetServings float64              `json:"target_servings"`
		ScalingFactor  float64              `json:"scaling_factor"`
		Ingredients    []IngredientResponse `json:"ingredients"`
		Nutrition      NutritionResponse    `json:"nutrition"`
		Cost           CostResponse         `json:"cost"`
	}
)

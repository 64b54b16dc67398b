package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessComputePlan = "production plan computed successfully"
	MessageSuccessExportPlan  = "production plan exported successfully"
	MessageSuccessGetExports  = "success get plan exports"

	MessageFailedComputePlan = "failed to compute production plan"
	MessageFailedExportPlan  = "failed to export production plan"
	MessageFailedGetExports  = "failed to get plan exports"

	ErrDuplicatePlanRecipe  = errors.New("recipe selected more than once")
	ErrExportFailed         = errors.New("failed to render plan export")
	ErrStorageNotConfigured = errors.New("file storage is not configured")
)

type (
	PlanEntryRequest struct {
		RecipeID       string  `json:"recipe_id" validate:"required,uuid"`
		TargetServings float64 `json:"target_servings" validate:"required,gte=1"`
	}

	ComputePlanRequest struct {
		Entries []PlanEntryRequest `json:"entries" validate:"dive"`
	}

	ExportPlanRequest struct {
		Entries []PlanEntryRequest `json:"entries" validate:"required,min=1,dive"`
		Title   string             `json:"title" validate:"omitempty,max=100"`
		Email   string             `json:"email" validate:"omitempty,email"`
	}

	ShoppingListItemResponse struct {
		FoodID   string  `json:"food_id"`
		FoodName string  `json:"food_name"`
		Unit     string  `json:"unit"`
		Quantity float64 `json:"quantity"`
		// estimated ingredient cost of this row
		Cost float64 `json:"cost"`
	}

	PlanRecipeSummary struct {
		RecipeID       string  `json:"recipe_id"`
		Name           string  `json:"name"`
		BaseServings   int     `json:"base_servings"`
		TargetServings float64 `json:"target_servings"`
		ScalingFactor  float64 `json:"scaling_factor"`
		Skipped        bool    `json:"skipped,omitempty"`
	}

	PlanResponse struct {
		Recipes        []PlanRecipeSummary        `json:"recipes"`
		ShoppingList   []ShoppingListItemResponse `json:"shopping_list"`
		TotalCost      CostResponse               `json:"total_cost"`
		TotalNutrition NutritionResponse          `json:"total_nutrition"`
	}

	PlanExportResponse struct {
		ID           string    `json:"id"`
		FileName     string    `json:"file_name"`
		URL          string    `json:"url"`
		RecipeCount  int       `json:"recipe_count"`
		TotalModal   float64   `json:"total_modal"`
		SellingPrice float64   `json:"selling_price"`
		SentTo       string    `json:"sent_to,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	PlanExportListResponse struct {
		Exports    []PlanExportResponse `json:"exports"`
		Pagination PaginationResponse   `json:"pagination"`
	}
)

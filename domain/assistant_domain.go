package domain

import (
	"errors"
)

var (
	MessageSuccessDraftFood         = "food draft generated"
	MessageSuccessDraftInstructions = "instructions draft generated"

	MessageFailedDraftFood         = "failed to generate food draft"
	MessageFailedDraftInstructions = "failed to generate instructions draft"

	ErrGeminiAPIFailed     = errors.New("gemini API processing failed")
	ErrGeminiNotConfigured = errors.New("gemini API is not configured")
)

type (
	FoodDraftRequest struct {
		Name string `json:"name" validate:"required"`
	}

	// FoodDraft mirrors FoodRequest so the client can review and submit it.
	FoodDraft struct {
		Name             string  `json:"name"`
		Category         string  `json:"category"`
		ServingSizeGrams float64 `json:"serving_size_grams"`
		CaloriesKcal     float64 `json:"calories_kcal"`
		ProteinGrams     float64 `json:"protein_grams"`
		FatGrams         float64 `json:"fat_grams"`
		CarbsGrams       float64 `json:"carbs_grams"`
		FiberGrams       float64 `json:"fiber_grams"`
		PricePer100g     float64 `json:"price_per_100g"`
	}

	InstructionsDraft struct {
		RecipeID string   `json:"recipe_id"`
		Steps    []string `json:"steps"`
	}
)

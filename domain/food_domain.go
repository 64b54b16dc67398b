package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFood           = "food added successfully"
	MessageSuccessUpdateFood        = "food updated successfully"
	MessageSuccessDeleteFood        = "food deleted successfully"
	MessageSuccessGetFoods          = "foods retrieved successfully"
	MessageSuccessGetFoodDetail     = "food detail retrieved successfully"
	MessageSuccessUpdateConversions = "unit conversions updated successfully"

	MessageFailedAddFood           = "failed to add food"
	MessageFailedUpdateFood        = "failed to update food"
	MessageFailedDeleteFood        = "failed to delete food"
	MessageFailedGetFoods          = "failed to retrieve foods"
	MessageFailedGetFoodDetail     = "failed to retrieve food detail"
	MessageFailedUpdateConversions = "failed to update unit conversions"

	ErrFoodNotFound        = errors.New("food not found")
	ErrInvalidNutrition    = errors.New("nutrition and price values must not be negative")
	ErrInvalidServingSize  = errors.New("serving size must be positive")
	ErrInvalidConversion   = errors.New("grams per unit must be positive")
	ErrDuplicateConversion = errors.New("duplicate unit conversion")
)

type (
	FoodRequest struct {
		Name             string   `json:"name" validate:"required"`
		Category         string   `json:"category" validate:"omitempty"`
		ServingSizeGrams *float64 `json:"serving_size_grams" validate:"omitempty,gt=0"`
		CaloriesKcal     float64  `json:"calories_kcal" validate:"min=0"`
		ProteinGrams     float64  `json:"protein_grams" validate:"min=0"`
		FatGrams         float64  `json:"fat_grams" validate:"min=0"`
		CarbsGrams       float64  `json:"carbs_grams" validate:"min=0"`
		FiberGrams       float64  `json:"fiber_grams" validate:"min=0"`
		PricePer100g     float64  `json:"price_per_100g" validate:"min=0"`
		Notes            string   `json:"notes" validate:"omitempty"`
	}

	UnitConversionRequest struct {
		Unit         string  `json:"unit" validate:"required"`
		GramsPerUnit float64 `json:"grams_per_unit" validate:"required,gt=0"`
	}

	SetConversionsRequest struct {
		Conversions []UnitConversionRequest `json:"conversions" validate:"dive"`
	}

	UnitConversionResponse struct {
		Unit         string  `json:"unit"`
		GramsPerUnit float64 `json:"grams_per_unit"`
	}

	FoodResponse struct {
		ID               string                   `json:"id"`
		Name             string                   `json:"name"`
		Category         string                   `json:"category,omitempty"`
		ServingSizeGrams float64                  `json:"serving_size_grams"`
		CaloriesKcal     float64                  `json:"calories_kcal"`
		ProteinGrams     float64                  `json:"protein_grams"`
		FatGrams         float64                  `json:"fat_grams"`
		CarbsGrams       float64                  `json:"carbs_grams"`
		FiberGrams       float64                  `json:"fiber_grams"`
		PricePer100g     float64                  `json:"price_per_100g"`
		Notes            string                   `json:"notes,omitempty"`
		Conversions      []UnitConversionResponse `json:"conversions,omitempty"`
		CreatedAt        time.Time                `json:"created_at"`
	}

	FoodListResponse struct {
		Foods      []FoodResponse     `json:"foods"`
		Pagination PaginationResponse `json:"pagination"`
	}
)

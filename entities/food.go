package entities

import (
	"github.com/google/uuid"
)

// Nutrition and price columns are per ServingSizeGrams of the food.
type Food struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name             string    `gorm:"index" json:"name"`
	Category         string    `json:"category"`
	ServingSizeGrams float64   `gorm:"default:100" json:"serving_size_grams"`
	CaloriesKcal     float64   `json:"calories_kcal"`
	ProteinGrams     float64   `json:"protein_grams"`
	FatGrams         float64   `json:"fat_grams"`
	CarbsGrams       float64   `json:"carbs_grams"`
	FiberGrams       float64   `json:"fiber_grams"`
	PricePer100g     float64   `gorm:"column:price_per_100g" json:"price_per_100g"`
	Notes            string    `gorm:"type:text" json:"notes,omitempty"`

	Conversions []FoodUnitConversion `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// FoodUnitConversion maps a non-gram unit ("butir", "siung", "sdm") of one food to grams.
type FoodUnitConversion struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_food_unit" json:"food_id"`
	Unit         string    `gorm:"uniqueIndex:idx_food_unit" json:"unit"`
	GramsPerUnit float64   `json:"grams_per_unit"`
}

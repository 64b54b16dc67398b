package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID                       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID                   uuid.UUID `json:"user_id"`
	Name                     string    `json:"name"`
	Description              string    `json:"description"`
	Instructions             string    `json:"instructions" gorm:"type:text"`
	Servings                 int       `gorm:"default:1" json:"servings"`
	CostOperationalPerRecipe float64   `json:"cost_operational_per_recipe"`
	CostLaborPerRecipe       float64   `json:"cost_labor_per_recipe"`
	MarginPercent            *float64  `json:"margin_percent"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	User        *User              `gorm:"foreignKey:UserID"`
	Timestamp
}

type RecipeIngredient struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID     uuid.UUID  `gorm:"type:uuid;index" json:"recipe_id"`
	FoodID       *uuid.UUID `gorm:"type:uuid" json:"food_id"`
	Quantity     float64    `json:"quantity"`
	Unit         string     `json:"unit"`
	DisplayOrder int        `json:"display_order"`

	// nil when the food row no longer exists
	Food *Food `gorm:"foreignKey:FoodID;constraint:OnDelete:SET NULL"`
}

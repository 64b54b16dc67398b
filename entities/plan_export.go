package entities

import (
	"github.com/google/uuid"
)

type PlanExport struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	FileName     string    `json:"file_name"`
	ObjectKey    string    `json:"object_key"`
	URL          string    `json:"url"`
	RecipeCount  int       `json:"recipe_count"`
	TotalModal   float64   `json:"total_modal"`
	SellingPrice float64   `json:"selling_price"`
	SentTo       string    `json:"sent_to,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

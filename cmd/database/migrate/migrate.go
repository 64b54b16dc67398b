package migration

import (
	"Resep-HPP/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return err
	}

	models := []any{
		&entities.User{},
		&entities.Food{},
		&entities.FoodUnitConversion{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Setting{},
		&entities.PlanExport{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Errorf("Error migrating %T: %v", model, err)
			return err
		}
	}

	log.Info("Database migration complete")
	return nil
}

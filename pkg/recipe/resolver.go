package recipe

import (
	"sort"

	"Resep-HPP/domain"
	"Resep-HPP/entities"
	"Resep-HPP/pkg/costing"
	"Resep-HPP/pkg/units"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// SortIngredients returns a copy of ingredients ordered by DisplayOrder.
func SortIngredients(ingredients []entities.RecipeIngredient) []entities.RecipeIngredient {
	sorted := make([]entities.RecipeIngredient, len(ingredients))
	copy(sorted, ingredients)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DisplayOrder < sorted[j].DisplayOrder
	})
	return sorted
}

// ResolveLines converts stored ingredient lines into costing lines with
// quantities in grams, relabelled as "g". A line whose food is gone becomes
// unresolved. Units that cannot be converted keep their quantity and label.
func ResolveLines(ingredients []entities.RecipeIngredient, conversions map[uuid.UUID][]entities.FoodUnitConversion) []costing.IngredientLine {
	sorted := SortIngredients(ingredients)
	lines := make([]costing.IngredientLine, 0, len(sorted))

	for _, ing := range sorted {
		line := costing.IngredientLine{
			Food:         costing.Unresolved(),
			Quantity:     ing.Quantity,
			Unit:         ing.Unit,
			DisplayOrder: ing.DisplayOrder,
		}

		if ing.Food != nil {
			line.Food = costing.Resolved(ResolveFood(ing.Food))
			if grams, ok := toGrams(ing, conversions[ing.Food.ID]); ok {
				line.Quantity = grams
				line.Unit = units.Gram
			}
		}

		lines = append(lines, line)
	}
	return lines
}

func toGrams(ing entities.RecipeIngredient, conversions []entities.FoodUnitConversion) (float64, bool) {
	converter := units.NewConverter()
	for _, c := range conversions {
		converter.WithConversion(c.Unit, c.GramsPerUnit)
	}

	grams, err := converter.ToGrams(ing.Quantity, ing.Unit)
	if err != nil {
		log.Warnw("no gram conversion, using quantity as grams",
			"food_id", ing.Food.ID, "unit", ing.Unit, "error", err)
		return ing.Quantity, false
	}
	return grams, true
}

func ResolveFood(f *entities.Food) costing.Food {
	return costing.Food{
		ID:               f.ID.String(),
		Name:             f.Name,
		ServingSizeGrams: f.ServingSizeGrams,
		CaloriesKcal:     f.CaloriesKcal,
		ProteinGrams:     f.ProteinGrams,
		FatGrams:         f.FatGrams,
		CarbsGrams:       f.CarbsGrams,
		FiberGrams:       f.FiberGrams,
		PricePer100g:     f.PricePer100g,
	}
}

func ResolveRecipe(r *entities.Recipe) costing.Recipe {
	return costing.Recipe{
		ID:                       r.ID.String(),
		Name:                     r.Name,
		Servings:                 r.Servings,
		CostOperationalPerRecipe: r.CostOperationalPerRecipe,
		CostLaborPerRecipe:       r.CostLaborPerRecipe,
		MarginPercent:            r.MarginPercent,
	}
}

// FoodIDs lists the distinct resolved food ids used by recipes.
func FoodIDs(recipes ...*entities.Recipe) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			if ing.Food == nil || seen[ing.Food.ID] {
				continue
			}
			seen[ing.Food.ID] = true
			ids = append(ids, ing.Food.ID)
		}
	}
	return ids
}

func ToNutritionResponse(n costing.Nutrition) domain.NutritionResponse {
	return domain.NutritionResponse{
		Calories: n.Calories,
		Protein:  n.Protein,
		Fat:      n.Fat,
		Carbs:    n.Carbs,
		Fiber:    n.Fiber,
	}
}

func ToCostResponse(c costing.PlanCost) domain.CostResponse {
	return domain.CostResponse{
		HPP:           c.HPP,
		Operational:   c.Operational,
		Labor:         c.Labor,
		TotalModal:    c.TotalModal,
		AverageMargin: c.AverageMargin,
		Profit:        c.Profit,
		SellingPrice:  c.SellingPrice,
	}
}

// Package costing computes nutrition, cost of goods (HPP) and selling price
// recommendations for recipes and multi-recipe production plans.
//
// Everything here operates on plain values supplied by the caller. Nothing is
// fetched, stored or mutated, so calls can run concurrently on different inputs.
package costing

const (
	// DefaultServingSizeGrams is the reference mass used when a food has no serving size.
	DefaultServingSizeGrams = 100.0
	// DefaultMarginPercent applies to recipes without their own margin.
	DefaultMarginPercent = 50.0
	// DefaultRoundingStep is the increment a selling price is rounded up to.
	DefaultRoundingStep = 500.0
)

type (
	Food struct {
		ID               string
		Name             string
		ServingSizeGrams float64
		CaloriesKcal     float64
		ProteinGrams     float64
		FatGrams         float64
		CarbsGrams       float64
		FiberGrams       float64
		PricePer100g     float64
	}

	// FoodRef is either a resolved Food or an unresolved reference (deleted or
	// not loaded). Use Resolved and Unresolved to build one.
	FoodRef struct {
		food     Food
		resolved bool
	}

	// IngredientLine is a quantity of a food. Quantity must already be expressed
	// in grams; Unit is only carried for display and for grouping shopping lists.
	IngredientLine struct {
		Food         FoodRef
		Quantity     float64
		Unit         string
		DisplayOrder int
	}

	Recipe struct {
		ID                       string
		Name                     string
		Servings                 int
		CostOperationalPerRecipe float64
		CostLaborPerRecipe       float64
		// MarginPercent is nil when the recipe has no margin of its own.
		MarginPercent *float64
	}

	PlanEntry struct {
		Recipe         Recipe
		TargetServings float64
	}

	// PlanOptions carries shop-wide settings into a calculation.
	PlanOptions struct {
		DefaultMarginPercent float64
		RoundingStep         float64
	}

	Totals struct {
		Calories float64
		Protein  float64
		Fat      float64
		Carbs    float64
		Fiber    float64
		Price    float64
	}

	Nutrition struct {
		Calories float64
		Protein  float64
		Fat      float64
		Carbs    float64
		Fiber    float64
	}

	ShoppingListItem struct {
		Food     Food
		Unit     string
		Quantity float64
	}

	PlanCost struct {
		HPP           float64
		Operational   float64
		Labor         float64
		TotalModal    float64
		AverageMargin float64
		Profit        float64
		SellingPrice  float64
	}

	PlanResult struct {
		ShoppingList   []ShoppingListItem
		TotalCost      PlanCost
		TotalNutrition Nutrition
	}

	ScaledRecipe struct {
		ScalingFactor float64
		Lines         []IngredientLine
		Totals        Totals
		Cost          PlanCost
	}
)

func Resolved(f Food) FoodRef {
	return FoodRef{food: f, resolved: true}
}

func Unresolved() FoodRef {
	return FoodRef{}
}

// Food returns the referenced food and whether the reference is resolved.
func (r FoodRef) Food() (Food, bool) {
	return r.food, r.resolved
}

func (r FoodRef) IsResolved() bool {
	return r.resolved
}

func (t Totals) Nutrition() Nutrition {
	return Nutrition{
		Calories: t.Calories,
		Protein:  t.Protein,
		Fat:      t.Fat,
		Carbs:    t.Carbs,
		Fiber:    t.Fiber,
	}
}

// DefaultPlanOptions returns the options used when no settings are stored.
func DefaultPlanOptions() PlanOptions {
	return PlanOptions{
		DefaultMarginPercent: DefaultMarginPercent,
		RoundingStep:         DefaultRoundingStep,
	}
}

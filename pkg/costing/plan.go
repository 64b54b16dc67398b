package costing

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ComputePlan runs ComputePlanWithOptions with DefaultPlanOptions.
func ComputePlan(entries []PlanEntry, ingredientsByRecipe map[string][]IngredientLine) PlanResult {
	return ComputePlanWithOptions(entries, ingredientsByRecipe, DefaultPlanOptions())
}

// ComputePlanWithOptions scales every selected recipe to its target servings,
// merges the scaled lines into one shopping list and prices the whole batch.
// Recipes without ingredient lines are skipped entirely, including their
// operational and labor costs and their margin.
func ComputePlanWithOptions(entries []PlanEntry, ingredientsByRecipe map[string][]IngredientLine, opts PlanOptions) PlanResult {
	result := PlanResult{ShoppingList: []ShoppingListItem{}}
	if len(entries) == 0 {
		return result
	}

	// entry order must not change float summation
	ordered := make([]PlanEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Recipe.ID < ordered[j].Recipe.ID
	})

	var (
		scaled      []IngredientLine
		operational float64
		labor       float64
		marginSum   float64
		marginCount int
	)

	for _, entry := range ordered {
		lines := ingredientsByRecipe[entry.Recipe.ID]
		if len(lines) == 0 {
			continue
		}

		factor := ScalingFactor(entry.TargetServings, entry.Recipe.Servings)
		scaled = append(scaled, scaleLines(lines, factor)...)

		operational += entry.Recipe.CostOperationalPerRecipe * factor
		labor += entry.Recipe.CostLaborPerRecipe * factor

		marginSum += ResolveMargin(entry.Recipe.MarginPercent, opts.DefaultMarginPercent)
		marginCount++
	}

	result.ShoppingList = MergeShoppingList(scaled)

	totals := ComputeTotals(shoppingLines(result.ShoppingList), 1)
	result.TotalNutrition = totals.Nutrition()

	cost := PlanCost{
		HPP:         totals.Price,
		Operational: operational,
		Labor:       labor,
	}
	cost.TotalModal = cost.HPP + cost.Operational + cost.Labor
	if marginCount > 0 {
		cost.AverageMargin = marginSum / float64(marginCount)
	}
	cost.Profit, cost.SellingPrice = PriceFromModal(cost.TotalModal, cost.AverageMargin, opts.roundingStep())
	result.TotalCost = cost

	return result
}

type shoppingKey struct {
	foodKey string
	unit    string
}

// MergeShoppingList groups lines by (food, unit) and sums their quantities.
// Unresolved lines are dropped. The result is ordered by food name using
// Indonesian collation, then by unit and food ID.
func MergeShoppingList(lines []IngredientLine) []ShoppingListItem {
	items := []ShoppingListItem{}
	index := make(map[shoppingKey]int)

	for _, line := range lines {
		food, ok := line.Food.Food()
		if !ok {
			continue
		}

		key := shoppingKey{foodKey: food.ID, unit: line.Unit}
		if key.foodKey == "" {
			key.foodKey = "name:" + food.Name
		}

		if i, exists := index[key]; exists {
			items[i].Quantity += line.Quantity
			continue
		}
		index[key] = len(items)
		items = append(items, ShoppingListItem{
			Food:     food,
			Unit:     line.Unit,
			Quantity: line.Quantity,
		})
	}

	// a collator keeps internal buffers, so each call gets its own
	col := collate.New(language.Indonesian, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		if c := col.CompareString(items[i].Food.Name, items[j].Food.Name); c != 0 {
			return c < 0
		}
		if items[i].Unit != items[j].Unit {
			return items[i].Unit < items[j].Unit
		}
		return items[i].Food.ID < items[j].Food.ID
	})

	return items
}

func shoppingLines(items []ShoppingListItem) []IngredientLine {
	lines := make([]IngredientLine, len(items))
	for i, item := range items {
		lines[i] = IngredientLine{
			Food:     Resolved(item.Food),
			Quantity: item.Quantity,
			Unit:     item.Unit,
		}
	}
	return lines
}

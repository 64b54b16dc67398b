package costing

// ComputeTotals sums nutrition and price over lines, each line scaled by
// quantity / servingSizeGrams and then by scalingFactor. Unresolved lines
// contribute nothing. The factor is not validated: zero or negative factors
// yield zero or negative totals.
func ComputeTotals(lines []IngredientLine, scalingFactor float64) Totals {
	var totals Totals

	for _, line := range lines {
		food, ok := line.Food.Food()
		if !ok {
			continue
		}

		servingSize := food.ServingSizeGrams
		if servingSize <= 0 {
			servingSize = DefaultServingSizeGrams
		}

		baseMultiplier := line.Quantity / servingSize
		finalMultiplier := baseMultiplier * scalingFactor

		totals.Calories += food.CaloriesKcal * finalMultiplier
		totals.Protein += food.ProteinGrams * finalMultiplier
		totals.Fat += food.FatGrams * finalMultiplier
		totals.Carbs += food.CarbsGrams * finalMultiplier
		totals.Fiber += food.FiberGrams * finalMultiplier
		// price is stored per serving size, same as the nutrition columns
		totals.Price += food.PricePer100g * finalMultiplier
	}

	return totals
}

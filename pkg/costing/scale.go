package costing

// ScaleRecipe runs ScaleRecipeWithOptions with DefaultPlanOptions.
func ScaleRecipe(recipe Recipe, lines []IngredientLine, targetServings float64) ScaledRecipe {
	return ScaleRecipeWithOptions(recipe, lines, targetServings, DefaultPlanOptions())
}

// ScaleRecipeWithOptions scales one recipe to targetServings and prices it
// with the recipe's own margin. Unlike a plan, flat costs are kept even when
// the recipe has no ingredient lines.
func ScaleRecipeWithOptions(recipe Recipe, lines []IngredientLine, targetServings float64, opts PlanOptions) ScaledRecipe {
	factor := ScalingFactor(targetServings, recipe.Servings)
	scaled := scaleLines(lines, factor)
	totals := ComputeTotals(scaled, 1)

	cost := PlanCost{
		HPP:           totals.Price,
		Operational:   recipe.CostOperationalPerRecipe * factor,
		Labor:         recipe.CostLaborPerRecipe * factor,
		AverageMargin: ResolveMargin(recipe.MarginPercent, opts.DefaultMarginPercent),
	}
	cost.TotalModal = cost.HPP + cost.Operational + cost.Labor
	cost.Profit, cost.SellingPrice = PriceFromModal(cost.TotalModal, cost.AverageMargin, opts.roundingStep())

	return ScaledRecipe{
		ScalingFactor: factor,
		Lines:         scaled,
		Totals:        totals,
		Cost:          cost,
	}
}

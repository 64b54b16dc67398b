package costing

import "math"

// ResolveMargin returns the recipe's own margin, or fallback when it has none.
func ResolveMargin(marginPercent *float64, fallback float64) float64 {
	if marginPercent == nil {
		return fallback
	}
	return *marginPercent
}

// RoundUpPrice rounds price up to the next multiple of step. It never rounds
// down. A non-positive step leaves the price unchanged.
func RoundUpPrice(price, step float64) float64 {
	if step <= 0 {
		return price
	}

	rounded := math.Ceil(price/step) * step
	if rounded < price {
		rounded += step
	}
	return rounded
}

// PriceFromModal applies marginPercent on top of modal and rounds the result
// up to step. It is shared by single-recipe scaling and production plans.
func PriceFromModal(modal, marginPercent, step float64) (profit, sellingPrice float64) {
	profit = modal * (marginPercent / 100)
	sellingPrice = RoundUpPrice(modal+profit, step)
	return profit, sellingPrice
}

// ScalingFactor is targetServings / baseServings with the base clamped to 1.
func ScalingFactor(targetServings float64, baseServings int) float64 {
	if baseServings < 1 {
		baseServings = 1
	}
	return targetServings / float64(baseServings)
}

func (o PlanOptions) roundingStep() float64 {
	if o.RoundingStep <= 0 {
		return DefaultRoundingStep
	}
	return o.RoundingStep
}

func scaleLines(lines []IngredientLine, factor float64) []IngredientLine {
	scaled := make([]IngredientLine, len(lines))
	for i, line := range lines {
		line.Quantity *= factor
		scaled[i] = line
	}
	return scaled
}

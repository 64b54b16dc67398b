package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleRecipe(t *testing.T) {
	r1 := Recipe{ID: "r1", Servings: 2, MarginPercent: margin(50)}
	lines := []IngredientLine{{Food: Resolved(foodA), Quantity: 50, Unit: "g"}}

	scaled := ScaleRecipe(r1, lines, 4)

	assert.Equal(t, 2.0, scaled.ScalingFactor)
	require.Len(t, scaled.Lines, 1)
	assert.Equal(t, 100.0, scaled.Lines[0].Quantity)
	assert.Equal(t, 50.0, lines[0].Quantity)
	assert.Equal(t, 200.0, scaled.Totals.Calories)
	assert.Equal(t, 5000.0, scaled.Cost.HPP)
	assert.Equal(t, 2500.0, scaled.Cost.Profit)
	assert.Equal(t, 7500.0, scaled.Cost.SellingPrice)
}

func TestScaleRecipe_AgreesWithSingleEntryPlan(t *testing.T) {
	r := Recipe{ID: "r1", Servings: 3, CostOperationalPerRecipe: 4500, CostLaborPerRecipe: 3000}
	lines := sampleLines()

	scaled := ScaleRecipe(r, lines, 10)
	plan := ComputePlan([]PlanEntry{{Recipe: r, TargetServings: 10}}, map[string][]IngredientLine{"r1": lines})

	assert.InDelta(t, plan.TotalCost.HPP, scaled.Cost.HPP, 1e-9)
	assert.InDelta(t, plan.TotalCost.TotalModal, scaled.Cost.TotalModal, 1e-9)
	assert.Equal(t, plan.TotalCost.AverageMargin, scaled.Cost.AverageMargin)
	assert.Equal(t, plan.TotalCost.SellingPrice, scaled.Cost.SellingPrice)
}

func TestScaleRecipe_KeepsFlatCostsWithoutIngredients(t *testing.T) {
	r := Recipe{ID: "r1", Servings: 1, CostOperationalPerRecipe: 1000}

	scaled := ScaleRecipe(r, nil, 2)

	assert.Empty(t, scaled.Lines)
	assert.Equal(t, 2000.0, scaled.Cost.TotalModal)
	assert.Equal(t, DefaultMarginPercent, scaled.Cost.AverageMargin)
	assert.Equal(t, 3000.0, scaled.Cost.SellingPrice)
}

package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var foodA = Food{
	ID:               "food-a",
	Name:             "Tepung Terigu",
	ServingSizeGrams: 100,
	CaloriesKcal:     200,
	PricePer100g:     5000,
}

func sampleLines() []IngredientLine {
	return []IngredientLine{
		{Food: Resolved(foodA), Quantity: 50, Unit: "g"},
		{Food: Resolved(Food{
			ID:               "food-b",
			Name:             "Telur Ayam",
			ServingSizeGrams: 60,
			CaloriesKcal:     86,
			ProteinGrams:     7.5,
			FatGrams:         5.8,
			CarbsGrams:       0.4,
			PricePer100g:     1800,
		}), Quantity: 120, Unit: "butir"},
		{Food: Resolved(Food{
			ID:               "food-c",
			Name:             "Gula Pasir",
			ServingSizeGrams: 0,
			CaloriesKcal:     387,
			CarbsGrams:       100,
			FiberGrams:       0.2,
			PricePer100g:     1700,
		}), Quantity: 30, Unit: "g"},
	}
}

func TestComputeTotals_Empty(t *testing.T) {
	for _, factor := range []float64{0, 1, 2.5, -3} {
		assert.Equal(t, Totals{}, ComputeTotals(nil, factor))
		assert.Equal(t, Totals{}, ComputeTotals([]IngredientLine{}, factor))
	}
}

func TestComputeTotals_SingleFood(t *testing.T) {
	totals := ComputeTotals([]IngredientLine{{Food: Resolved(foodA), Quantity: 50, Unit: "g"}}, 1)

	assert.Equal(t, 100.0, totals.Calories)
	assert.Equal(t, 2500.0, totals.Price)
	assert.Zero(t, totals.Protein)
}

func TestComputeTotals_DefaultServingSize(t *testing.T) {
	lines := sampleLines()[2:]
	totals := ComputeTotals(lines, 1)

	assert.InDelta(t, 387*0.3, totals.Calories, 1e-9)
	assert.InDelta(t, 1700*0.3, totals.Price, 1e-9)
}

func TestComputeTotals_LinearInFactor(t *testing.T) {
	lines := sampleLines()
	base := ComputeTotals(lines, 1)

	for _, k := range []float64{0.5, 2, 3.75, 10} {
		scaled := ComputeTotals(lines, k)
		assert.InDelta(t, base.Calories*k, scaled.Calories, 1e-9)
		assert.InDelta(t, base.Protein*k, scaled.Protein, 1e-9)
		assert.InDelta(t, base.Fat*k, scaled.Fat, 1e-9)
		assert.InDelta(t, base.Carbs*k, scaled.Carbs, 1e-9)
		assert.InDelta(t, base.Fiber*k, scaled.Fiber, 1e-9)
		assert.InDelta(t, base.Price*k, scaled.Price, 1e-9)
	}
}

func TestComputeTotals_Deterministic(t *testing.T) {
	lines := sampleLines()
	assert.Equal(t, ComputeTotals(lines, 1.3), ComputeTotals(lines, 1.3))
}

func TestComputeTotals_UnresolvedContributesZero(t *testing.T) {
	lines := sampleLines()
	withMissing := append([]IngredientLine{{Food: Unresolved(), Quantity: 500, Unit: "g"}}, lines...)

	assert.NotPanics(t, func() { ComputeTotals(withMissing, 1) })
	assert.Equal(t, ComputeTotals(lines, 1), ComputeTotals(withMissing, 1))
	assert.Equal(t, Totals{}, ComputeTotals([]IngredientLine{{Food: Unresolved(), Quantity: 10}}, 1))
}

func TestComputeTotals_NegativeFactorPropagates(t *testing.T) {
	totals := ComputeTotals([]IngredientLine{{Food: Resolved(foodA), Quantity: 50}}, -1)
	assert.Equal(t, -100.0, totals.Calories)
	assert.Equal(t, -2500.0, totals.Price)
}

func TestComputeTotals_DoesNotMutateInput(t *testing.T) {
	lines := sampleLines()
	before := make([]IngredientLine, len(lines))
	copy(before, lines)

	ComputeTotals(lines, 4)
	assert.Equal(t, before, lines)
}

package recipe

import (
	"testing"

	"Resep-HPP/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLines(t *testing.T) {
	bawang := &entities.Food{ID: uuid.New(), Name: "Bawang Merah", ServingSizeGrams: 100}
	gula := &entities.Food{ID: uuid.New(), Name: "Gula Pasir", ServingSizeGrams: 100}
	goneID := uuid.New()

	ingredients := []entities.RecipeIngredient{
		{FoodID: &gula.ID, Food: gula, Quantity: 2, Unit: "sdm", DisplayOrder: 2},
		{FoodID: &bawang.ID, Food: bawang, Quantity: 3, Unit: "siung", DisplayOrder: 0},
		{FoodID: &goneID, Quantity: 7, Unit: "g", DisplayOrder: 1},
	}
	conversions := map[uuid.UUID][]entities.FoodUnitConversion{
		bawang.ID: {{Unit: "siung", GramsPerUnit: 5}},
	}

	lines := ResolveLines(ingredients, conversions)
	require.Len(t, lines, 3)

	assert.True(t, lines[0].Food.IsResolved())
	assert.Equal(t, 15.0, lines[0].Quantity)
	assert.Equal(t, "g", lines[0].Unit)

	assert.False(t, lines[1].Food.IsResolved())
	assert.Equal(t, 7.0, lines[1].Quantity)
	assert.Equal(t, "g", lines[1].Unit)

	// sdm comes from the shared unit table
	assert.Equal(t, 30.0, lines[2].Quantity)
	assert.Equal(t, "g", lines[2].Unit)
}

func TestResolveLines_UnknownUnitFallsBackToGrams(t *testing.T) {
	garam := &entities.Food{ID: uuid.New(), Name: "Garam"}

	lines := ResolveLines([]entities.RecipeIngredient{
		{FoodID: &garam.ID, Food: garam, Quantity: 4, Unit: "jumput"},
	}, nil)

	require.Len(t, lines, 1)
	assert.Equal(t, 4.0, lines[0].Quantity)
	assert.Equal(t, "jumput", lines[0].Unit)
}

func TestFoodIDs_Distinct(t *testing.T) {
	a := &entities.Food{ID: uuid.New()}
	b := &entities.Food{ID: uuid.New()}

	r1 := &entities.Recipe{Ingredients: []entities.RecipeIngredient{{Food: a}, {Food: b}, {}}}
	r2 := &entities.Recipe{Ingredients: []entities.RecipeIngredient{{Food: a}}}

	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, FoodIDs(r1, r2))
}

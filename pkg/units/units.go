package units

import (
	"fmt"
	"strings"

	"Resep-HPP/domain"
)

// Gram is the unit of every converted quantity.
const Gram = "g"

// volume units are treated as water density (1 ml = 1 g) unless a food
// conversion overrides them
var gramsPerUnit = map[string]float64{
	// mass (base = g)
	"mg":   0.001,
	"g":    1,
	"gr":   1,
	"gram": 1,
	"ons":  100,
	"kg":   1000,

	// volume (base = ml)
	"ml":    1,
	"l":     1000,
	"liter": 1000,
	"sdt":   5,
	"sdm":   15,
	"gelas": 240,
	"cup":   240,
}

// Converter turns display quantities into grams. Food-specific conversions
// take precedence over the generic table.
type Converter struct {
	perFood map[string]float64
}

func NewConverter() *Converter {
	return &Converter{perFood: map[string]float64{}}
}

// WithConversion registers how many grams one unit weighs for a single food.
func (c *Converter) WithConversion(unit string, gramsPerUnit float64) *Converter {
	c.perFood[Normalize(unit)] = gramsPerUnit
	return c
}

func (c *Converter) ToGrams(quantity float64, unit string) (float64, error) {
	key := Normalize(unit)
	if key == "" {
		return quantity, nil
	}

	if grams, ok := c.perFood[key]; ok {
		return quantity * grams, nil
	}

	grams, ok := gramsPerUnit[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, unit)
	}
	return quantity * grams, nil
}

// IsKnown reports whether unit converts without a food-specific entry.
func IsKnown(unit string) bool {
	_, ok := gramsPerUnit[Normalize(unit)]
	return ok
}

func Normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

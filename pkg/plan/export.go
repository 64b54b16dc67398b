package plan

import (
	"Resep-HPP/domain"

	"github.com/xuri/excelize/v2"
)

const (
	SheetShopping  = "Belanja"
	SheetCost      = "Biaya"
	SheetNutrition = "Nutrisi"
)

// RenderWorkbook writes a computed plan into an xlsx workbook with one sheet
// for the shopping list, one for the cost breakdown and one for nutrition.
func RenderWorkbook(title string, plan domain.PlanResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetShopping); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetCost, SheetNutrition} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	shopping := [][]any{{"Bahan", "Jumlah", "Satuan", "Perkiraan Biaya"}}
	for _, item := range plan.ShoppingList {
		shopping = append(shopping, []any{item.FoodName, item.Quantity, item.Unit, item.Cost})
	}
	if err := writeRows(f, SheetShopping, shopping, header); err != nil {
		return nil, err
	}

	c := plan.TotalCost
	cost := [][]any{
		{title, ""},
		{"Resep", len(activeRecipes(plan.Recipes))},
		{"HPP Bahan", c.HPP},
		{"Biaya Operasional", c.Operational},
		{"Biaya Tenaga Kerja", c.Labor},
		{"Total Modal", c.TotalModal},
		{"Rata-rata Margin (%)", c.AverageMargin},
		{"Keuntungan", c.Profit},
		{"Harga Jual", c.SellingPrice},
		{"", ""},
	}
	recipeHeader := len(cost) + 1
	cost = append(cost, []any{"Resep", "Porsi Dasar", "Target Porsi", "Faktor"})
	for _, r := range plan.Recipes {
		name := r.Name
		if r.Skipped {
			name += " (tanpa bahan)"
		}
		cost = append(cost, []any{name, r.BaseServings, r.TargetServings, r.ScalingFactor})
	}
	if err := writeRows(f, SheetCost, cost, header); err != nil {
		return nil, err
	}
	first, err := excelize.CoordinatesToCellName(1, recipeHeader)
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(4, recipeHeader)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetCost, first, last, header); err != nil {
		return nil, err
	}

	n := plan.TotalNutrition
	nutrition := [][]any{
		{"Nutrisi", "Total"},
		{"Kalori (kkal)", n.Calories},
		{"Protein (g)", n.Protein},
		{"Lemak (g)", n.Fat},
		{"Karbohidrat (g)", n.Carbs},
		{"Serat (g)", n.Fiber},
	}
	if err := writeRows(f, SheetNutrition, nutrition, header); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeRows fills a sheet from A1 and bolds the first row.
func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}

func activeRecipes(recipes []domain.PlanRecipeSummary) []domain.PlanRecipeSummary {
	var active []domain.PlanRecipeSummary
	for _, r := range recipes {
		if !r.Skipped {
			active = append(active, r)
		}
	}
	return active
}

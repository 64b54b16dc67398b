package plan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"Resep-HPP/domain"
	"Resep-HPP/entities"
	"Resep-HPP/internal/utils/mailing"
	"Resep-HPP/pkg/setting"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type mockRecipeRepository struct {
	recipes map[uuid.UUID]*entities.Recipe
}

func (m *mockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	m.recipes[recipe.ID] = recipe
	return nil
}

func (m *mockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	return m.recipes[uuid.MustParse(id)], nil
}

func (m *mockRecipeRepository) GetRecipes(ctx context.Context, userID string, search string, page, limit int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (m *mockRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return nil
}

func (m *mockRecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return nil
}

func (m *mockRecipeRepository) GetRecipesWithIngredients(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	for _, id := range ids {
		if r, ok := m.recipes[id]; ok {
			recipes = append(recipes, r)
		}
	}
	return recipes, nil
}

type mockFoodRepository struct {
	conversions map[uuid.UUID][]entities.FoodUnitConversion
}

func (m *mockFoodRepository) AddFood(ctx context.Context, food *entities.Food) error { return nil }

func (m *mockFoodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	return nil, nil
}

func (m *mockFoodRepository) UpdateFood(ctx context.Context, food *entities.Food) error { return nil }

func (m *mockFoodRepository) DeleteFood(ctx context.Context, id string) error { return nil }

func (m *mockFoodRepository) GetFoods(ctx context.Context, search string, page, limit int) ([]*entities.Food, int64, error) {
	return nil, 0, nil
}

func (m *mockFoodRepository) GetFoodsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Food, error) {
	return nil, nil
}

func (m *mockFoodRepository) SetConversions(ctx context.Context, foodID uuid.UUID, conversions []entities.FoodUnitConversion) error {
	return nil
}

func (m *mockFoodRepository) GetConversionsByFoodIDs(ctx context.Context, foodIDs []uuid.UUID) (map[uuid.UUID][]entities.FoodUnitConversion, error) {
	return m.conversions, nil
}

type mockSettingRepository struct {
	values map[string]string
}

func (m *mockSettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	return m.values, nil
}

func (m *mockSettingRepository) Upsert(ctx context.Context, values map[string]string) error {
	return nil
}

type mockPlanRepository struct {
	exports []*entities.PlanExport
	err     error
}

func (m *mockPlanRepository) CreateExport(ctx context.Context, export *entities.PlanExport) error {
	if m.err != nil {
		return m.err
	}
	m.exports = append(m.exports, export)
	return nil
}

func (m *mockPlanRepository) GetExports(ctx context.Context, userID string, page, limit int) ([]*entities.PlanExport, int64, error) {
	var out []*entities.PlanExport
	for _, e := range m.exports {
		if e.UserID.String() == userID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

type mockStorage struct {
	files map[string][]byte
}

func (m *mockStorage) UploadFile(ctx context.Context, objectKey string, content []byte, contentType string) (string, error) {
	m.files[objectKey] = content
	return objectKey, nil
}

func (m *mockStorage) DeleteFile(ctx context.Context, objectKey string) error {
	delete(m.files, objectKey)
	return nil
}

func (m *mockStorage) GetPublicLinkKey(objectKey string) string {
	return "https://files.test/" + objectKey
}

func (m *mockStorage) GetObjectKeyFromLink(link string) string {
	return link[len("https://files.test/"):]
}

type sentMail struct {
	to          string
	attachments []mailing.Attachment
}

type planFixture struct {
	userID      string
	recipes     *mockRecipeRepository
	conversions map[uuid.UUID][]entities.FoodUnitConversion
	plans       *mockPlanRepository
	storage     *mockStorage
	settings    map[string]string
	mails       []sentMail
	mailErr     error
	nasi        *entities.Recipe
	sambal      *entities.Recipe
	kosong      *entities.Recipe
}

func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()

	owner := uuid.New()
	beras := &entities.Food{ID: uuid.New(), Name: "beras", ServingSizeGrams: 100, CaloriesKcal: 130, CarbsGrams: 28, PricePer100g: 1500}
	cabai := &entities.Food{ID: uuid.New(), Name: "Cabai Merah", ServingSizeGrams: 100, CaloriesKcal: 40, PricePer100g: 6000}
	bawang := &entities.Food{ID: uuid.New(), Name: "Bawang Merah", ServingSizeGrams: 100, CaloriesKcal: 72, PricePer100g: 4000}

	nasi := &entities.Recipe{
		ID: uuid.New(), UserID: owner, Name: "Nasi Putih", Servings: 4,
		CostOperationalPerRecipe: 2000, CostLaborPerRecipe: 1000,
		Ingredients: []entities.RecipeIngredient{
			{FoodID: &beras.ID, Food: beras, Quantity: 400, Unit: "g"},
			{FoodID: &bawang.ID, Food: bawang, Quantity: 20, Unit: "g", DisplayOrder: 1},
		},
	}
	sambalMargin := 30.0
	sambal := &entities.Recipe{
		ID: uuid.New(), UserID: owner, Name: "Sambal Merah", Servings: 2, MarginPercent: &sambalMargin,
		Ingredients: []entities.RecipeIngredient{
			{FoodID: &cabai.ID, Food: cabai, Quantity: 100, Unit: "g"},
			{FoodID: &bawang.ID, Food: bawang, Quantity: 30, Unit: "g", DisplayOrder: 1},
		},
	}
	kosong := &entities.Recipe{ID: uuid.New(), UserID: owner, Name: "Resep Kosong", Servings: 1, CostOperationalPerRecipe: 99999}

	return &planFixture{
		userID: owner.String(),
		recipes: &mockRecipeRepository{recipes: map[uuid.UUID]*entities.Recipe{
			nasi.ID: nasi, sambal.ID: sambal, kosong.ID: kosong,
		}},
		plans:    &mockPlanRepository{},
		storage:  &mockStorage{files: map[string][]byte{}},
		settings: map[string]string{},
		nasi:     nasi,
		sambal:   sambal,
		kosong:   kosong,
	}
}

func (f *planFixture) service() PlanService {
	settings := setting.NewSettingService(&mockSettingRepository{values: f.settings})
	send := func(to, subject, body string, attachments ...mailing.Attachment) error {
		if f.mailErr != nil {
			return f.mailErr
		}
		f.mails = append(f.mails, sentMail{to: to, attachments: attachments})
		return nil
	}
	return NewPlanService(f.recipes, &mockFoodRepository{conversions: f.conversions}, settings, f.plans, f.storage, send)
}

func TestComputePlan_Empty(t *testing.T) {
	f := newPlanFixture(t)

	res, err := f.service().ComputePlan(context.Background(), domain.ComputePlanRequest{}, f.userID)
	require.NoError(t, err)
	assert.NotNil(t, res.ShoppingList)
	assert.Empty(t, res.ShoppingList)
	assert.Zero(t, res.TotalCost.SellingPrice)
}

func TestComputePlan(t *testing.T) {
	f := newPlanFixture(t)

	res, err := f.service().ComputePlan(context.Background(), domain.ComputePlanRequest{
		Entries: []domain.PlanEntryRequest{
			{RecipeID: f.nasi.ID.String(), TargetServings: 8},
			{RecipeID: f.sambal.ID.String(), TargetServings: 2},
		},
	}, f.userID)
	require.NoError(t, err)

	require.Len(t, res.ShoppingList, 3)
	assert.Equal(t, "Bawang Merah", res.ShoppingList[0].FoodName)
	assert.InDelta(t, 70, res.ShoppingList[0].Quantity, 1e-9)
	assert.InDelta(t, 2800, res.ShoppingList[0].Cost, 1e-9)
	assert.Equal(t, "beras", res.ShoppingList[1].FoodName)
	assert.InDelta(t, 800, res.ShoppingList[1].Quantity, 1e-9)
	assert.Equal(t, "Cabai Merah", res.ShoppingList[2].FoodName)

	// beras 12000 + bawang 2800 + cabai 6000
	assert.InDelta(t, 20800, res.TotalCost.HPP, 1e-9)
	assert.InDelta(t, 4000, res.TotalCost.Operational, 1e-9)
	assert.InDelta(t, 2000, res.TotalCost.Labor, 1e-9)
	assert.InDelta(t, 26800, res.TotalCost.TotalModal, 1e-9)
	assert.InDelta(t, 40, res.TotalCost.AverageMargin, 1e-9)
	assert.Equal(t, 38000.0, res.TotalCost.SellingPrice)

	require.Len(t, res.Recipes, 2)
	assert.Equal(t, 2.0, res.Recipes[0].ScalingFactor)
}

func TestComputePlan_ConvertsUnitsBeforeMerging(t *testing.T) {
	f := newPlanFixture(t)

	telur := &entities.Food{ID: uuid.New(), Name: "Telur Ayam", ServingSizeGrams: 100, PricePer100g: 6000}
	tepung := &entities.Food{ID: uuid.New(), Name: "Tepung Terigu", ServingSizeGrams: 100, PricePer100g: 1000}
	f.conversions = map[uuid.UUID][]entities.FoodUnitConversion{
		telur.ID: {{FoodID: telur.ID, Unit: "butir", GramsPerUnit: 50}},
	}

	kue := &entities.Recipe{
		ID: uuid.New(), UserID: uuid.MustParse(f.userID), Name: "Kue Bolu", Servings: 1,
		Ingredients: []entities.RecipeIngredient{
			{FoodID: &telur.ID, Food: telur, Quantity: 2, Unit: "butir"},
			{FoodID: &tepung.ID, Food: tepung, Quantity: 1, Unit: "kg", DisplayOrder: 1},
		},
	}
	roti := &entities.Recipe{
		ID: uuid.New(), UserID: uuid.MustParse(f.userID), Name: "Roti Tawar", Servings: 1,
		Ingredients: []entities.RecipeIngredient{
			{FoodID: &tepung.ID, Food: tepung, Quantity: 500, Unit: "g"},
		},
	}
	f.recipes.recipes[kue.ID] = kue
	f.recipes.recipes[roti.ID] = roti

	res, err := f.service().ComputePlan(context.Background(), domain.ComputePlanRequest{
		Entries: []domain.PlanEntryRequest{
			{RecipeID: kue.ID.String(), TargetServings: 1},
			{RecipeID: roti.ID.String(), TargetServings: 1},
		},
	}, f.userID)
	require.NoError(t, err)

	require.Len(t, res.ShoppingList, 2)
	assert.Equal(t, "Telur Ayam", res.ShoppingList[0].FoodName)
	assert.Equal(t, "g", res.ShoppingList[0].Unit)
	assert.InDelta(t, 100, res.ShoppingList[0].Quantity, 1e-9)
	assert.InDelta(t, 6000, res.ShoppingList[0].Cost, 1e-9)

	assert.Equal(t, "Tepung Terigu", res.ShoppingList[1].FoodName)
	assert.Equal(t, "g", res.ShoppingList[1].Unit)
	assert.InDelta(t, 1500, res.ShoppingList[1].Quantity, 1e-9)
	assert.InDelta(t, 15000, res.ShoppingList[1].Cost, 1e-9)

	content, err := RenderWorkbook("Pesanan", res)
	require.NoError(t, err)
	book, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(SheetShopping)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Tepung Terigu", "1500", "g", "15000"}, rows[2])
}

func TestComputePlan_UsesSettings(t *testing.T) {
	f := newPlanFixture(t)
	f.settings[domain.SettingDefaultMargin] = "100"
	f.settings[domain.SettingRoundingStep] = "1000"

	res, err := f.service().ComputePlan(context.Background(), domain.ComputePlanRequest{
		Entries: []domain.PlanEntryRequest{{RecipeID: f.nasi.ID.String(), TargetServings: 4}},
	}, f.userID)
	require.NoError(t, err)

	// beras 6000 + bawang 800 + op 2000 + labor 1000
	assert.InDelta(t, 9800, res.TotalCost.TotalModal, 1e-9)
	assert.Equal(t, 100.0, res.TotalCost.AverageMargin)
	assert.Equal(t, 20000.0, res.TotalCost.SellingPrice)
}

func TestComputePlan_SkipsRecipeWithoutIngredients(t *testing.T) {
	f := newPlanFixture(t)

	res, err := f.service().ComputePlan(context.Background(), domain.ComputePlanRequest{
		Entries: []domain.PlanEntryRequest{
			{RecipeID: f.kosong.ID.String(), TargetServings: 3},
			{RecipeID: f.sambal.ID.String(), TargetServings: 2},
		},
	}, f.userID)
	require.NoError(t, err)

	require.Len(t, res.Recipes, 2)
	assert.True(t, res.Recipes[0].Skipped)
	assert.False(t, res.Recipes[1].Skipped)
	assert.Zero(t, res.TotalCost.Operational)
	assert.Equal(t, 30.0, res.TotalCost.AverageMargin)
}

func TestComputePlan_Validation(t *testing.T) {
	f := newPlanFixture(t)
	service := f.service()
	ctx := context.Background()

	_, err := service.ComputePlan(ctx, domain.ComputePlanRequest{Entries: []domain.PlanEntryRequest{
		{RecipeID: f.nasi.ID.String(), TargetServings: 2},
		{RecipeID: f.nasi.ID.String(), TargetServings: 3},
	}}, f.userID)
	assert.ErrorIs(t, err, domain.ErrDuplicatePlanRecipe)

	_, err = service.ComputePlan(ctx, domain.ComputePlanRequest{Entries: []domain.PlanEntryRequest{
		{RecipeID: f.nasi.ID.String(), TargetServings: 0},
	}}, f.userID)
	assert.ErrorIs(t, err, domain.ErrInvalidServings)

	_, err = service.ComputePlan(ctx, domain.ComputePlanRequest{Entries: []domain.PlanEntryRequest{
		{RecipeID: uuid.NewString(), TargetServings: 1},
	}}, f.userID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = service.ComputePlan(ctx, domain.ComputePlanRequest{Entries: []domain.PlanEntryRequest{
		{RecipeID: f.nasi.ID.String(), TargetServings: 1},
	}}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
}

func TestExportPlan(t *testing.T) {
	f := newPlanFixture(t)

	res, err := f.service().ExportPlan(context.Background(), domain.ExportPlanRequest{
		Entries: []domain.PlanEntryRequest{{RecipeID: f.sambal.ID.String(), TargetServings: 4}},
		Title:   "Pesanan Jumat",
		Email:   "dapur@example.com",
	}, f.userID)
	require.NoError(t, err)

	assert.Equal(t, 1, res.RecipeCount)
	assert.Equal(t, "dapur@example.com", res.SentTo)
	assert.Contains(t, res.URL, "https://files.test/plans/"+f.userID)
	require.Len(t, f.plans.exports, 1)
	require.Len(t, f.storage.files, 1)

	require.Len(t, f.mails, 1)
	require.Len(t, f.mails[0].attachments, 1)
	assert.Equal(t, res.FileName, f.mails[0].attachments[0].FileName)

	content := f.storage.files[f.plans.exports[0].ObjectKey]
	book, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{SheetShopping, SheetCost, SheetNutrition}, book.GetSheetList())

	rows, err := book.GetRows(SheetShopping)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Bahan", rows[0][0])
	assert.Equal(t, "Bawang Merah", rows[1][0])
	assert.Equal(t, "Cabai Merah", rows[2][0])

	title, err := book.GetCellValue(SheetCost, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Pesanan Jumat", title)

	costRows, err := book.GetRows(SheetCost)
	require.NoError(t, err)
	headerRow := 0
	for i, row := range costRows {
		if len(row) > 1 && row[0] == "Resep" && row[1] == "Porsi Dasar" {
			headerRow = i + 1
		}
	}
	require.NotZero(t, headerRow)

	bold, err := book.GetCellStyle(SheetCost, "A1")
	require.NoError(t, err)
	for _, col := range []string{"A", "D"} {
		style, err := book.GetCellStyle(SheetCost, fmt.Sprintf("%s%d", col, headerRow))
		require.NoError(t, err)
		assert.Equal(t, bold, style)
	}
	plain, err := book.GetCellStyle(SheetCost, fmt.Sprintf("A%d", headerRow+1))
	require.NoError(t, err)
	assert.NotEqual(t, bold, plain)
}

func TestExportPlan_RenderFailure(t *testing.T) {
	f := newPlanFixture(t)

	saved := renderWorkbook
	t.Cleanup(func() { renderWorkbook = saved })
	renderWorkbook = func(title string, plan domain.PlanResponse) ([]byte, error) {
		return nil, errors.New("disk full")
	}

	_, err := f.service().ExportPlan(context.Background(), domain.ExportPlanRequest{
		Entries: []domain.PlanEntryRequest{{RecipeID: f.nasi.ID.String(), TargetServings: 4}},
	}, f.userID)
	require.ErrorIs(t, err, domain.ErrExportFailed)
	assert.Equal(t, domain.ErrExportFailed.Error()+": disk full", err.Error())
	assert.Empty(t, f.storage.files)
	assert.Empty(t, f.plans.exports)
}

func TestExportPlan_MailFailureKeepsExport(t *testing.T) {
	f := newPlanFixture(t)
	f.mailErr = errors.New("smtp down")

	res, err := f.service().ExportPlan(context.Background(), domain.ExportPlanRequest{
		Entries: []domain.PlanEntryRequest{{RecipeID: f.nasi.ID.String(), TargetServings: 4}},
		Email:   "dapur@example.com",
	}, f.userID)
	require.NoError(t, err)
	assert.Empty(t, res.SentTo)
	assert.Len(t, f.plans.exports, 1)
}

func TestExportPlan_RemovesFileWhenSaveFails(t *testing.T) {
	f := newPlanFixture(t)
	f.plans.err = errors.New("db down")

	_, err := f.service().ExportPlan(context.Background(), domain.ExportPlanRequest{
		Entries: []domain.PlanEntryRequest{{RecipeID: f.nasi.ID.String(), TargetServings: 4}},
	}, f.userID)
	require.Error(t, err)
	assert.Empty(t, f.storage.files)
}

func TestExportPlan_WithoutStorage(t *testing.T) {
	f := newPlanFixture(t)
	settings := setting.NewSettingService(&mockSettingRepository{values: map[string]string{}})
	service := NewPlanService(f.recipes, &mockFoodRepository{}, settings, f.plans, nil, nil)

	_, err := service.ExportPlan(context.Background(), domain.ExportPlanRequest{
		Entries: []domain.PlanEntryRequest{{RecipeID: f.nasi.ID.String(), TargetServings: 4}},
	}, f.userID)
	assert.ErrorIs(t, err, domain.ErrStorageNotConfigured)
}

func TestGetExports(t *testing.T) {
	f := newPlanFixture(t)
	service := f.service()

	_, err := service.ExportPlan(context.Background(), domain.ExportPlanRequest{
		Entries: []domain.PlanEntryRequest{{RecipeID: f.nasi.ID.String(), TargetServings: 4}},
	}, f.userID)
	require.NoError(t, err)

	res, err := service.GetExports(context.Background(), f.userID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, res.Exports, 1)

	res, err = service.GetExports(context.Background(), uuid.NewString(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, res.Exports)
}

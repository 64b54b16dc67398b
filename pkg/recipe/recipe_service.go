package recipe

import (
	"context"
	"errors"
	"fmt"

	"Resep-HPP/domain"
	"Resep-HPP/entities"
	"Resep-HPP/pkg/costing"
	"Resep-HPP/pkg/food"
	"Resep-HPP/pkg/setting"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest, userID string) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		GetRecipes(ctx context.Context, search string, page, limit int, userID string) (domain.RecipeListResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetail, error)
		GetRecipeCost(ctx context.Context, recipeID string, userID string) (domain.RecipeCostResponse, error)
		ScaleRecipe(ctx context.Context, recipeID string, req domain.ScaleRecipeRequest, userID string) (domain.ScaledRecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		foodRepository   food.FoodRepository
		settingService   setting.SettingService
	}
)

func NewRecipeService(recipeRepository RecipeRepository, foodRepository food.FoodRepository, settingService setting.SettingService) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		foodRepository:   foodRepository,
		settingService:   settingService,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.RecipeDetail, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrParseUUID
	}

	ingredients, err := s.buildIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	recipe := &entities.Recipe{UserID: ownerID}
	if err := applyRecipeRequest(recipe, req); err != nil {
		return domain.RecipeDetail{}, err
	}
	recipe.Ingredients = ingredients

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetail{}, fmt.Errorf("create recipe: %w", err)
	}

	log.Infow("recipe created", "recipe_id", recipe.ID, "ingredients", len(ingredients))
	return s.GetRecipeDetail(ctx, recipe.ID.String(), userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest, userID string) (domain.RecipeDetail, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	ingredients, err := s.buildIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	if err := applyRecipeRequest(recipe, req); err != nil {
		return domain.RecipeDetail{}, err
	}
	recipe.Ingredients = ingredients

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetail{}, fmt.Errorf("update recipe: %w", err)
	}

	return s.GetRecipeDetail(ctx, recipeID, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.getOwnedRecipe(ctx, recipeID, userID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) GetRecipes(ctx context.Context, search string, page, limit int, userID string) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, userID, search, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	res := domain.RecipeListResponse{
		Recipes:    make([]domain.Recipe, 0, len(recipes)),
		Pagination: domain.NewPagination(page, limit, count),
	}
	for _, r := range recipes {
		res.Recipes = append(res.Recipes, toRecipe(r))
	}
	return res, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetail, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	lines, err := s.resolve(ctx, recipe)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	return domain.RecipeDetail{
		Recipe:       toRecipe(recipe),
		Instructions: recipe.Instructions,
		Ingredients:  toIngredientResponses(SortIngredients(recipe.Ingredients), lines),
	}, nil
}

// GetRecipeCost prices the recipe at its stored serving count.
func (s *recipeService) GetRecipeCost(ctx context.Context, recipeID string, userID string) (domain.RecipeCostResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.RecipeCostResponse{}, err
	}

	lines, err := s.resolve(ctx, recipe)
	if err != nil {
		return domain.RecipeCostResponse{}, err
	}

	opts, err := s.settingService.GetPlanOptions(ctx)
	if err != nil {
		return domain.RecipeCostResponse{}, err
	}

	base := ResolveRecipe(recipe)
	servings := base.Servings
	if servings < 1 {
		servings = 1
	}
	scaled := costing.ScaleRecipeWithOptions(base, lines, float64(servings), opts)

	perServing := costing.ComputeTotals(lines, 1/float64(servings))
	return domain.RecipeCostResponse{
		RecipeID:            recipeID,
		Servings:            servings,
		Nutrition:           ToNutritionResponse(scaled.Totals.Nutrition()),
		Cost:                ToCostResponse(scaled.Cost),
		NutritionPerServing: ToNutritionResponse(perServing.Nutrition()),
		HPPPerServing:       perServing.Price,
	}, nil
}

func (s *recipeService) ScaleRecipe(ctx context.Context, recipeID string, req domain.ScaleRecipeRequest, userID string) (domain.ScaledRecipeResponse, error) {
	if req.TargetServings < 1 {
		return domain.ScaledRecipeResponse{}, domain.ErrInvalidServings
	}

	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.ScaledRecipeResponse{}, err
	}

	lines, err := s.resolve(ctx, recipe)
	if err != nil {
		return domain.ScaledRecipeResponse{}, err
	}

	opts, err := s.settingService.GetPlanOptions(ctx)
	if err != nil {
		return domain.ScaledRecipeResponse{}, err
	}

	scaled := costing.ScaleRecipeWithOptions(ResolveRecipe(recipe), lines, req.TargetServings, opts)

	ingredients := toIngredientResponses(SortIngredients(recipe.Ingredients), scaled.Lines)
	for i := range ingredients {
		ingredients[i].Quantity *= scaled.ScalingFactor
	}

	return domain.ScaledRecipeResponse{
		RecipeID:       recipeID,
		BaseServings:   recipe.Servings,
		TargetServings: req.TargetServings,
		ScalingFactor:  scaled.ScalingFactor,
		Ingredients:    ingredients,
		Nutrition:      ToNutritionResponse(scaled.Totals.Nutrition()),
		Cost:           ToCostResponse(scaled.Cost),
	}, nil
}

func (s *recipeService) getOwnedRecipe(ctx context.Context, recipeID string, userID string) (*entities.Recipe, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if recipe.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

func (s *recipeService) resolve(ctx context.Context, recipe *entities.Recipe) ([]costing.IngredientLine, error) {
	conversions, err := s.foodRepository.GetConversionsByFoodIDs(ctx, FoodIDs(recipe))
	if err != nil {
		return nil, fmt.Errorf("load unit conversions: %w", err)
	}
	return ResolveLines(recipe.Ingredients, conversions), nil
}

func (s *recipeService) buildIngredients(ctx context.Context, reqs []domain.IngredientRequest) ([]entities.RecipeIngredient, error) {
	ids := make([]uuid.UUID, 0, len(reqs))
	for _, r := range reqs {
		id, err := uuid.Parse(r.FoodID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		if r.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		ids = append(ids, id)
	}

	foods, err := s.foodRepository.GetFoodsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]bool, len(foods))
	for _, f := range foods {
		known[f.ID] = true
	}

	ingredients := make([]entities.RecipeIngredient, 0, len(reqs))
	for i, r := range reqs {
		id := ids[i]
		if !known[id] {
			return nil, fmt.Errorf("%w: %s", domain.ErrFoodNotFound, id)
		}

		order := i
		if r.DisplayOrder != nil {
			order = *r.DisplayOrder
		}
		ingredients = append(ingredients, entities.RecipeIngredient{
			FoodID:       &id,
			Quantity:     r.Quantity,
			Unit:         r.Unit,
			DisplayOrder: order,
		})
	}
	return ingredients, nil
}

func applyRecipeRequest(recipe *entities.Recipe, req domain.RecipeRequest) error {
	if req.Servings < 0 {
		return domain.ErrInvalidServings
	}
	if req.CostOperationalPerRecipe < 0 || req.CostLaborPerRecipe < 0 {
		return domain.ErrInvalidCost
	}
	if req.MarginPercent != nil && *req.MarginPercent < 0 {
		return domain.ErrInvalidMargin
	}

	recipe.Name = req.Name
	recipe.Description = req.Description
	recipe.Instructions = req.Instructions
	recipe.Servings = req.Servings
	if recipe.Servings == 0 {
		recipe.Servings = 1
	}
	recipe.CostOperationalPerRecipe = req.CostOperationalPerRecipe
	recipe.CostLaborPerRecipe = req.CostLaborPerRecipe
	recipe.MarginPercent = req.MarginPercent
	return nil
}

func toRecipe(r *entities.Recipe) domain.Recipe {
	return domain.Recipe{
		ID:                       r.ID.String(),
		Name:                     r.Name,
		Description:              r.Description,
		Servings:                 r.Servings,
		CostOperationalPerRecipe: r.CostOperationalPerRecipe,
		CostLaborPerRecipe:       r.CostLaborPerRecipe,
		MarginPercent:            r.MarginPercent,
		CreatedAt:                r.CreatedAt,
	}
}

// ingredients and lines must be in the same order
func toIngredientResponses(ingredients []entities.RecipeIngredient, lines []costing.IngredientLine) []domain.IngredientResponse {
	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for i, ing := range ingredients {
		item := domain.IngredientResponse{
			ID:           ing.ID.String(),
			Quantity:     ing.Quantity,
			Unit:         ing.Unit,
			Grams:        lines[i].Quantity,
			DisplayOrder: ing.DisplayOrder,
		}
		if ing.FoodID != nil {
			item.FoodID = ing.FoodID.String()
		}
		if ing.Food != nil {
			item.FoodName = ing.Food.Name
		} else {
			item.Missing = true
			item.Grams = 0
		}
		res = append(res, item)
	}
	return res
}

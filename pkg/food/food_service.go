package food

import (
	"context"
	"errors"
	"fmt"

	"Resep-HPP/domain"
	"Resep-HPP/entities"
	"Resep-HPP/pkg/costing"
	"Resep-HPP/pkg/units"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.FoodRequest) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.FoodRequest) (domain.FoodResponse, error)
		DeleteFood(ctx context.Context, id string) error
		GetFoods(ctx context.Context, search string, page, limit int) (domain.FoodListResponse, error)
		GetFoodDetail(ctx context.Context, id string) (domain.FoodResponse, error)
		SetConversions(ctx context.Context, id string, req domain.SetConversionsRequest) (domain.FoodResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.FoodRequest) (domain.FoodResponse, error) {
	if err := validateFood(req); err != nil {
		return domain.FoodResponse{}, err
	}

	food := &entities.Food{}
	applyFoodRequest(food, req)

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return domain.FoodResponse{}, fmt.Errorf("add food: %w", err)
	}

	log.Infow("food added", "food_id", food.ID, "name", food.Name)
	return toFoodResponse(food), nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.FoodRequest) (domain.FoodResponse, error) {
	if err := validateFood(req); err != nil {
		return domain.FoodResponse{}, err
	}

	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	applyFoodRequest(food, req)
	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.FoodResponse{}, fmt.Errorf("update food: %w", err)
	}

	return toFoodResponse(food), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string) error {
	if _, err := s.getFood(ctx, id); err != nil {
		return err
	}

	// recipe lines keep pointing at the deleted food and are skipped when costing
	if err := s.foodRepository.DeleteFood(ctx, id); err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	return nil
}

func (s *foodService) GetFoods(ctx context.Context, search string, page, limit int) (domain.FoodListResponse, error) {
	foods, count, err := s.foodRepository.GetFoods(ctx, search, page, limit)
	if err != nil {
		return domain.FoodListResponse{}, err
	}

	res := domain.FoodListResponse{
		Foods:      make([]domain.FoodResponse, 0, len(foods)),
		Pagination: domain.NewPagination(page, limit, count),
	}
	for _, f := range foods {
		res.Foods = append(res.Foods, toFoodResponse(f))
	}
	return res, nil
}

func (s *foodService) GetFoodDetail(ctx context.Context, id string) (domain.FoodResponse, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(food), nil
}

func (s *foodService) SetConversions(ctx context.Context, id string, req domain.SetConversionsRequest) (domain.FoodResponse, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	seen := make(map[string]bool, len(req.Conversions))
	conversions := make([]entities.FoodUnitConversion, 0, len(req.Conversions))
	for _, c := range req.Conversions {
		unit := units.Normalize(c.Unit)
		if c.GramsPerUnit <= 0 {
			return domain.FoodResponse{}, domain.ErrInvalidConversion
		}
		if seen[unit] {
			return domain.FoodResponse{}, fmt.Errorf("%w: %s", domain.ErrDuplicateConversion, unit)
		}
		seen[unit] = true
		conversions = append(conversions, entities.FoodUnitConversion{
			Unit:         unit,
			GramsPerUnit: c.GramsPerUnit,
		})
	}

	if err := s.foodRepository.SetConversions(ctx, food.ID, conversions); err != nil {
		return domain.FoodResponse{}, fmt.Errorf("set conversions: %w", err)
	}

	food.Conversions = conversions
	return toFoodResponse(food), nil
}

func (s *foodService) getFood(ctx context.Context, id string) (*entities.Food, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func validateFood(req domain.FoodRequest) error {
	for _, v := range []float64{req.CaloriesKcal, req.ProteinGrams, req.FatGrams, req.CarbsGrams, req.FiberGrams, req.PricePer100g} {
		if v < 0 {
			return domain.ErrInvalidNutrition
		}
	}
	if req.ServingSizeGrams != nil && *req.ServingSizeGrams <= 0 {
		return domain.ErrInvalidServingSize
	}
	return nil
}

func applyFoodRequest(food *entities.Food, req domain.FoodRequest) {
	food.Name = req.Name
	food.Category = req.Category
	food.ServingSizeGrams = costing.DefaultServingSizeGrams
	if req.ServingSizeGrams != nil {
		food.ServingSizeGrams = *req.ServingSizeGrams
	}
	food.CaloriesKcal = req.CaloriesKcal
	food.ProteinGrams = req.ProteinGrams
	food.FatGrams = req.FatGrams
	food.CarbsGrams = req.CarbsGrams
	food.FiberGrams = req.FiberGrams
	food.PricePer100g = req.PricePer100g
	food.Notes = req.Notes
}

func toFoodResponse(food *entities.Food) domain.FoodResponse {
	res := domain.FoodResponse{
		ID:               food.ID.String(),
		Name:             food.Name,
		Category:         food.Category,
		ServingSizeGrams: food.ServingSizeGrams,
		CaloriesKcal:     food.CaloriesKcal,
		ProteinGrams:     food.ProteinGrams,
		FatGrams:         food.FatGrams,
		CarbsGrams:       food.CarbsGrams,
		FiberGrams:       food.FiberGrams,
		PricePer100g:     food.PricePer100g,
		Notes:            food.Notes,
		CreatedAt:        food.CreatedAt,
	}
	for _, c := range food.Conversions {
		res.Conversions = append(res.Conversions, domain.UnitConversionResponse{
			Unit:         c.Unit,
			GramsPerUnit: c.GramsPerUnit,
		})
	}
	return res
}

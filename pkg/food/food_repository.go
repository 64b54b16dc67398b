package food

import (
	"context"

	"Resep-HPP/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		DeleteFood(ctx context.Context, id string) error
		GetFoods(ctx context.Context, search string, page, limit int) ([]*entities.Food, int64, error)
		GetFoodsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Food, error)

		SetConversions(ctx context.Context, foodID uuid.UUID, conversions []entities.FoodUnitConversion) error
		GetConversionsByFoodIDs(ctx context.Context, foodIDs []uuid.UUID) (map[uuid.UUID][]entities.FoodUnitConversion, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).
		Preload("Conversions").
		Where("id = ?", id).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Omit("Conversions").Save(food).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{}).Error
}

func (r *foodRepository) GetFoods(ctx context.Context, search string, page, limit int) ([]*entities.Food, int64, error) {
	var foods []*entities.Food
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Food{})
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&foods).Error; err != nil {
		return nil, 0, err
	}

	return foods, count, nil
}

func (r *foodRepository) GetFoodsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Food, error) {
	var foods []*entities.Food
	if len(ids) == 0 {
		return foods, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// SetConversions replaces every unit conversion of a food.
func (r *foodRepository) SetConversions(ctx context.Context, foodID uuid.UUID, conversions []entities.FoodUnitConversion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", foodID).Delete(&entities.FoodUnitConversion{}).Error; err != nil {
			return err
		}
		if len(conversions) == 0 {
			return nil
		}
		for i := range conversions {
			conversions[i].FoodID = foodID
		}
		return tx.Create(&conversions).Error
	})
}

func (r *foodRepository) GetConversionsByFoodIDs(ctx context.Context, foodIDs []uuid.UUID) (map[uuid.UUID][]entities.FoodUnitConversion, error) {
	result := make(map[uuid.UUID][]entities.FoodUnitConversion)
	if len(foodIDs) == 0 {
		return result, nil
	}

	var conversions []entities.FoodUnitConversion
	if err := r.db.WithContext(ctx).Where("food_id IN ?", foodIDs).Find(&conversions).Error; err != nil {
		return nil, err
	}

	for _, c := range conversions {
		result[c.FoodID] = append(result[c.FoodID], c)
	}
	return result, nil
}

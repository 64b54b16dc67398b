package plan

import (
	"context"

	"Resep-HPP/entities"

	"gorm.io/gorm"
)

type (
	PlanRepository interface {
		CreateExport(ctx context.Context, export *entities.PlanExport) error
		GetExports(ctx context.Context, userID string, page, limit int) ([]*entities.PlanExport, int64, error)
	}

	planRepository struct {
		db *gorm.DB
	}
)

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) CreateExport(ctx context.Context, export *entities.PlanExport) error {
	return r.db.WithContext(ctx).Create(export).Error
}

func (r *planRepository) GetExports(ctx context.Context, userID string, page, limit int) ([]*entities.PlanExport, int64, error) {
	var exports []*entities.PlanExport
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.PlanExport{}).Where("user_id = ?", userID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&exports).Error; err != nil {
		return nil, 0, err
	}

	return exports, count, nil
}

package setting

import (
	"context"

	"Resep-HPP/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	SettingRepository interface {
		GetAll(ctx context.Context) (map[string]string, error)
		Upsert(ctx context.Context, values map[string]string) error
	}

	settingRepository struct {
		db *gorm.DB
	}
)

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []entities.Setting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	return values, nil
}

func (r *settingRepository) Upsert(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	rows := make([]entities.Setting, 0, len(values))
	for k, v := range values {
		rows = append(rows, entities.Setting{Key: k, Value: v})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rows).Error
}

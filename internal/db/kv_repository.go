package db

import (
	"context"
	"time"

	"github.com/terraincognita07/taskflow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository is a string-keyed, string-valued durable dictionary.
type KVRepository struct {
	database *gorm.DB
}

func NewKVRepository(database *gorm.DB) *KVRepository {
	return &KVRepository{database: database}
}

func (repo *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	entry := models.KVEntry{}
	result := repo.database.WithContext(ctx).
		Where(map[string]any{"key": key}).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (repo *KVRepository) Set(ctx context.Context, key string, value string) error {
	entry := models.KVEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return repo.database.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

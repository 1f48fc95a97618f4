package db

import (
	"context"
	"time"

	"github.com/terraincognita07/taskflow/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

// Create stores fire times in UTC so textual comparisons in sqlite stay ordered.
func (repo *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	reminder.FireAt = reminder.FireAt.UTC()
	return repo.database.WithContext(ctx).Create(reminder).Error
}

func (repo *ReminderRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.database.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("status = ?", models.ReminderStatusPending).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CancelPending reports whether a pending reminder with the handle was cancelled.
func (repo *ReminderRepository) CancelPending(ctx context.Context, handle string) (bool, error) {
	result := repo.database.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("handle = ? AND status = ?", handle, models.ReminderStatusPending).
		Update("status", models.ReminderStatusCancelled)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *ReminderRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	query := repo.database.WithContext(ctx).
		Where("status = ? AND fire_at <= ?", models.ReminderStatusPending, now.UTC()).
		Order("fire_at ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *ReminderRepository) MarkDelivered(ctx context.Context, reminderID uint, deliveredAt time.Time) error {
	return repo.database.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ? AND status = ?", reminderID, models.ReminderStatusPending).
		Updates(map[string]any{
			"status":       models.ReminderStatusDelivered,
			"delivered_at": deliveredAt.UTC(),
		}).Error
}

func (repo *ReminderRepository) MarkFailed(ctx context.Context, reminderID uint) error {
	return repo.database.WithContext(ctx).
		Model(&models.Reminder{}).
		Where("id = ? AND status = ?", reminderID, models.ReminderStatusPending).
		Update("status", models.ReminderStatusFailed).Error
}

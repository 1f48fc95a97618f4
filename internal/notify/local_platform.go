package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/taskflow/internal/models"
)

const DefaultReminderQuota = 64

var (
	ErrPermissionDenied = errors.New("notifications are disabled")
	ErrQuotaExceeded    = errors.New("pending reminder quota reached")
)

type ReminderStore interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	CountPending(ctx context.Context) (int64, error)
	CancelPending(ctx context.Context, handle string) (bool, error)
}

// LocalPlatform keeps one-shot reminders in sqlite until the dispatcher
// delivers them.
type LocalPlatform struct {
	reminders ReminderStore
	quota     int
	enabled   bool
	newHandle func() string
}

func NewLocalPlatform(reminders ReminderStore, quota int, enabled bool) *LocalPlatform {
	if quota <= 0 {
		quota = DefaultReminderQuota
	}
	return &LocalPlatform{
		reminders: reminders,
		quota:     quota,
		enabled:   enabled,
		newHandle: uuid.NewString,
	}
}

func (platform *LocalPlatform) RequestPermission(context.Context) (bool, error) {
	return platform.enabled, nil
}

func (platform *LocalPlatform) ScheduleOneShot(ctx context.Context, title string, body string, at time.Time) (string, error) {
	if !platform.enabled {
		return "", ErrPermissionDenied
	}

	pending, err := platform.reminders.CountPending(ctx)
	if err != nil {
		return "", fmt.Errorf("count pending reminders: %w", err)
	}
	if pending >= int64(platform.quota) {
		return "", fmt.Errorf("%w (%d)", ErrQuotaExceeded, platform.quota)
	}

	reminder := models.Reminder{
		Handle: platform.newHandle(),
		Title:  title,
		Body:   body,
		FireAt: at,
		Status: models.ReminderStatusPending,
	}
	if err := platform.reminders.Create(ctx, &reminder); err != nil {
		return "", fmt.Errorf("store reminder: %w", err)
	}
	return reminder.Handle, nil
}

// Cancel succeeds for unknown, delivered or already cancelled handles.
func (platform *LocalPlatform) Cancel(ctx context.Context, handle string) error {
	if _, err := platform.reminders.CancelPending(ctx, handle); err != nil {
		return fmt.Errorf("cancel reminder %s: %w", handle, err)
	}
	return nil
}

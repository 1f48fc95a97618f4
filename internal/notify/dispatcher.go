package notify

import (
	"context"
	"log"
	"time"

	"github.com/terraincognita07/taskflow/internal/models"
)

const (
	DefaultPollInterval = time.Minute
	dispatchBatchSize   = 50
)

type DueReminderStore interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]models.Reminder, error)
	MarkDelivered(ctx context.Context, reminderID uint, deliveredAt time.Time) error
	MarkFailed(ctx context.Context, reminderID uint) error
}

// Dispatcher delivers due local reminders. A reminder is attempted once.
type Dispatcher struct {
	reminders DueReminderStore
	sender    Sender
	interval  time.Duration
	now       func() time.Time
}

func NewDispatcher(reminders DueReminderStore, sender Sender, interval time.Duration) *Dispatcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if sender == nil {
		sender = LogSender{}
	}
	return &Dispatcher{
		reminders: reminders,
		sender:    sender,
		interval:  interval,
		now:       time.Now,
	}
}

func (dispatcher *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(dispatcher.interval)
	go func() {
		defer ticker.Stop()

		dispatcher.RunOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				dispatcher.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce returns the number of reminders delivered in this pass.
func (dispatcher *Dispatcher) RunOnce(ctx context.Context) int {
	now := dispatcher.now()
	due, err := dispatcher.reminders.ListDue(ctx, now, dispatchBatchSize)
	if err != nil {
		log.Printf("reminders: fetch due reminders failed: %v", err)
		return 0
	}

	delivered := 0
	for _, reminder := range due {
		if err := dispatcher.sender.Send(ctx, reminder.Title, reminder.Body); err != nil {
			log.Printf("reminders: deliver %s failed: %v", reminder.Handle, err)
			if markErr := dispatcher.reminders.MarkFailed(ctx, reminder.ID); markErr != nil {
				log.Printf("reminders: mark %s failed: %v", reminder.Handle, markErr)
			}
			continue
		}

		if err := dispatcher.reminders.MarkDelivered(ctx, reminder.ID, now); err != nil {
			log.Printf("reminders: mark %s delivered: %v", reminder.Handle, err)
			continue
		}
		delivered++
	}
	return delivered
}

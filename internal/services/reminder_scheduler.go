package services

import (
	"context"
	"log"
	"time"
)

// NotificationPlatform arranges one-shot local notifications.
type NotificationPlatform interface {
	RequestPermission(ctx context.Context) (bool, error)
	ScheduleOneShot(ctx context.Context, title string, body string, at time.Time) (string, error)
	Cancel(ctx context.Context, handle string) error
}

type ReminderText interface {
	ReminderTitle(subjectName string) string
	ReminderBody(taskName string) string
}

// ReminderScheduler turns a task's due day into best-effort platform reminders.
type ReminderScheduler struct {
	platform NotificationPlatform
	text     ReminderText
	location *time.Location
	now      func() time.Time
}

func NewReminderScheduler(platform NotificationPlatform, text ReminderText, location *time.Location) *ReminderScheduler {
	if text == nil {
		text = spanishReminderText{}
	}
	if location == nil {
		location = time.Local
	}
	return &ReminderScheduler{
		platform: platform,
		text:     text,
		location: location,
		now:      time.Now,
	}
}

// Schedule returns one handle per reminder the platform accepted. Past
// instants are skipped and platform failures are logged, never returned.
func (scheduler *ReminderScheduler) Schedule(ctx context.Context, taskName string, subjectName string, dueDay int) []string {
	instants := ReminderInstants(scheduler.now(), dueDay, scheduler.location)
	handles := make([]string, 0, len(instants))
	if scheduler.platform == nil {
		return handles
	}

	title := scheduler.text.ReminderTitle(subjectName)
	body := scheduler.text.ReminderBody(taskName)
	for _, instant := range instants {
		handle, err := scheduler.platform.ScheduleOneShot(ctx, title, body, instant)
		if err != nil {
			log.Printf("reminders: schedule %q at %s failed: %v", taskName, instant.Format(time.RFC3339), err)
			continue
		}
		handles = append(handles, handle)
	}
	return handles
}

// Cancel never fails; unknown, fired or already cancelled handles are no-ops.
func (scheduler *ReminderScheduler) Cancel(ctx context.Context, handle string) {
	if scheduler.platform == nil || handle == "" {
		return
	}
	if err := scheduler.platform.Cancel(ctx, handle); err != nil {
		log.Printf("reminders: cancel %s failed: %v", handle, err)
	}
}

func (scheduler *ReminderScheduler) RequestPermission(ctx context.Context) bool {
	if scheduler.platform == nil {
		return false
	}
	granted, err := scheduler.platform.RequestPermission(ctx)
	if err != nil {
		log.Printf("reminders: permission request failed: %v", err)
		return false
	}
	return granted
}

type spanishReminderText struct{}

func (spanishReminderText) ReminderTitle(subjectName string) string {
	return "🔔 Tarea pendiente: " + subjectName
}

func (spanishReminderText) ReminderBody(taskName string) string {
	return "Mañana vence: " + taskName
}

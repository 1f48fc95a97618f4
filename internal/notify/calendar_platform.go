package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

const (
	reminderEventDuration = 15 * time.Minute
	reminderPropertyKey   = "taskflow_reminder"
)

// CalendarPlatform turns each one-shot reminder into a short Google Calendar
// event with a popup at its start. The event id is the handle.
type CalendarPlatform struct {
	service    *calendar.Service
	calendarID string
}

func NewCalendarPlatform(service *calendar.Service, calendarID string) *CalendarPlatform {
	return &CalendarPlatform{service: service, calendarID: calendarID}
}

// ResolveCalendarID finds a calendar by its summary. An empty name selects
// the primary calendar.
func ResolveCalendarID(ctx context.Context, service *calendar.Service, calendarName string) (string, error) {
	calendarName = strings.TrimSpace(calendarName)
	if calendarName == "" {
		return "primary", nil
	}

	calendarList, err := service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("list calendars: %w", err)
	}
	for _, item := range calendarList.Items {
		if item.Summary == calendarName {
			return item.Id, nil
		}
	}
	return "", fmt.Errorf("calendar %q not found", calendarName)
}

func (platform *CalendarPlatform) RequestPermission(context.Context) (bool, error) {
	return platform.service != nil && platform.calendarID != "", nil
}

func (platform *CalendarPlatform) ScheduleOneShot(ctx context.Context, title string, body string, at time.Time) (string, error) {
	if platform.service == nil {
		return "", ErrPermissionDenied
	}

	created, err := platform.service.Events.Insert(platform.calendarID, reminderEvent(title, body, at)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert reminder event: %w", err)
	}
	return created.Id, nil
}

// Cancel treats events that are already gone as cancelled.
func (platform *CalendarPlatform) Cancel(ctx context.Context, handle string) error {
	if platform.service == nil {
		return nil
	}

	err := platform.service.Events.Delete(platform.calendarID, handle).Context(ctx).Do()
	if err == nil {
		return nil
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return nil
	}
	return fmt.Errorf("delete reminder event %s: %w", handle, err)
}

func reminderEvent(title string, body string, at time.Time) *calendar.Event {
	return &calendar.Event{
		Summary:     title,
		Description: body,
		Start: &calendar.EventDateTime{
			DateTime: at.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: at.Add(reminderEventDuration).Format(time.RFC3339),
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: 0, ForceSendFields: []string{"Minutes"}},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{reminderPropertyKey: "1"},
		},
	}
}

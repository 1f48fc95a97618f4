package services

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type memoryStoreStub struct {
	values   map[string]string
	writes   map[string]int
	getErr   error
	setErr   error
	getCalls int
}

func newMemoryStoreStub() *memoryStoreStub {
	return &memoryStoreStub{
		values: make(map[string]string),
		writes: make(map[string]int),
	}
}

func (stub *memoryStoreStub) Get(_ context.Context, key string) (string, bool, error) {
	stub.getCalls++
	if stub.getErr != nil {
		return "", false, stub.getErr
	}
	value, ok := stub.values[key]
	return value, ok, nil
}

func (stub *memoryStoreStub) Set(_ context.Context, key string, value string) error {
	if stub.setErr != nil {
		return stub.setErr
	}
	stub.values[key] = value
	stub.writes[key]++
	return nil
}

type scheduledNotification struct {
	Title string
	Body  string
	At    time.Time
}

type notificationPlatformStub struct {
	granted   bool
	scheduled []scheduledNotification
	cancelled []string
	failAt    map[time.Time]error
	cancelErr error
	nextID    int
}

func newNotificationPlatformStub() *notificationPlatformStub {
	return &notificationPlatformStub{
		granted: true,
		failAt:  make(map[time.Time]error),
	}
}

func (stub *notificationPlatformStub) RequestPermission(context.Context) (bool, error) {
	return stub.granted, nil
}

func (stub *notificationPlatformStub) ScheduleOneShot(_ context.Context, title string, body string, at time.Time) (string, error) {
	for failing, err := range stub.failAt {
		if failing.Equal(at) {
			return "", err
		}
	}
	stub.nextID++
	stub.scheduled = append(stub.scheduled, scheduledNotification{Title: title, Body: body, At: at})
	return fmt.Sprintf("handle-%d", stub.nextID), nil
}

func (stub *notificationPlatformStub) Cancel(_ context.Context, handle string) error {
	stub.cancelled = append(stub.cancelled, handle)
	return stub.cancelErr
}

type reminderPlannerStub struct {
	handles   []string
	scheduled int
	cancelled []string
}

func (stub *reminderPlannerStub) Schedule(context.Context, string, string, int) []string {
	stub.scheduled++
	return append([]string(nil), stub.handles...)
}

func (stub *reminderPlannerStub) Cancel(_ context.Context, handle string) {
	stub.cancelled = append(stub.cancelled, handle)
}

var errStoreUnavailable = errors.New("store unavailable")

func fixedClock(value time.Time) func() time.Time {
	return func() time.Time {
		return value
	}
}

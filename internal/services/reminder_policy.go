package services

import "time"

// reminderHours are the local wall-clock hours reminders fire on the day before a task is due.
var reminderHours = []int{9, 19}

// ReminderInstants returns the reminder times for dueDay that are still
// strictly after now. The day before dueDay is taken in now's month and year;
// dueDay 1 rolls back to the last day of the previous month.
func ReminderInstants(now time.Time, dueDay int, location *time.Location) []time.Time {
	if location == nil {
		location = time.Local
	}
	local := now.In(location)

	instants := make([]time.Time, 0, len(reminderHours))
	for _, hour := range reminderHours {
		instant := time.Date(local.Year(), local.Month(), dueDay-1, hour, 0, 0, 0, location)
		if instant.After(now) {
			instants = append(instants, instant)
		}
	}
	return instants
}

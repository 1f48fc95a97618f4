package models

const (
	MinTaskDay = 1
	MaxTaskDay = 31
)

type Task struct {
	ID              int64    `json:"id"`
	Name            string   `json:"nombre"`
	Subject         string   `json:"materia"`
	Time            string   `json:"hora"`
	Done            bool     `json:"completada"`
	Day             int      `json:"dia"`
	ReminderHandles []string `json:"notifIds,omitempty"`
}

type DayStatus string

const (
	DayStatusEmpty      DayStatus = "empty"
	DayStatusAllDone    DayStatus = "all_done"
	DayStatusHasPending DayStatus = "has_pending"
)

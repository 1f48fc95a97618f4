package services

import "github.com/terraincognita07/taskflow/internal/models"

type DayOverview struct {
	Day    int              `json:"day"`
	Status models.DayStatus `json:"status"`
}

// FilterTasksByDay keeps insertion order.
func FilterTasksByDay(tasks []models.Task, day int) []models.Task {
	matched := make([]models.Task, 0)
	for _, task := range tasks {
		if task.Day == day {
			matched = append(matched, cloneTask(task))
		}
	}
	return matched
}

func ComputeDayStatus(tasks []models.Task, day int) models.DayStatus {
	matched := 0
	for _, task := range tasks {
		if task.Day != day {
			continue
		}
		matched++
		if !task.Done {
			return models.DayStatusHasPending
		}
	}
	if matched == 0 {
		return models.DayStatusEmpty
	}
	return models.DayStatusAllDone
}

func BuildMonthOverview(tasks []models.Task) []DayOverview {
	days := make([]DayOverview, 0, models.MaxTaskDay)
	for day := models.MinTaskDay; day <= models.MaxTaskDay; day++ {
		days = append(days, DayOverview{Day: day, Status: ComputeDayStatus(tasks, day)})
	}
	return days
}

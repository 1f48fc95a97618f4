package services

import (
	"math"
	"strings"

	"github.com/terraincognita07/taskflow/internal/models"
)

// NormalizeSubjectName is the join key between subjects and task.subject.
func NormalizeSubjectName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func ProgressPercent(done int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// ComputeSubjectProgress recounts every subject against tasks by normalized
// name. Subjects whose names differ only in case share the same task set.
func ComputeSubjectProgress(subjects []models.Subject, tasks []models.Task) []models.Subject {
	totals := make(map[string]int)
	done := make(map[string]int)
	for _, task := range tasks {
		key := NormalizeSubjectName(task.Subject)
		totals[key]++
		if task.Done {
			done[key]++
		}
	}

	recomputed := make([]models.Subject, 0, len(subjects))
	for _, subject := range subjects {
		key := NormalizeSubjectName(subject.Name)
		subject.TasksTotal = totals[key]
		subject.TasksDone = done[key]
		subject.Progress = ProgressPercent(subject.TasksDone, subject.TasksTotal)
		recomputed = append(recomputed, subject)
	}
	return recomputed
}

func FilterSubjectsByName(subjects []models.Subject, query string) []models.Subject {
	needle := strings.ToLower(query)
	matched := make([]models.Subject, 0, len(subjects))
	for _, subject := range subjects {
		if strings.Contains(strings.ToLower(subject.Name), needle) {
			matched = append(matched, subject)
		}
	}
	return matched
}

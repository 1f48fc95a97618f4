package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/terraincognita07/taskflow/internal/models"
)

type ReminderPlanner interface {
	Schedule(ctx context.Context, taskName string, subjectName string, dueDay int) []string
	Cancel(ctx context.Context, handle string)
}

// TaskService owns the calendar task collection. It loads the snapshot on
// first use and keeps it in memory afterwards. It is not safe for concurrent use.
type TaskService struct {
	store     DurableStore
	reminders ReminderPlanner
	now       func() time.Time

	loaded bool
	tasks  []models.Task
}

func NewTaskService(store DurableStore, reminders ReminderPlanner) *TaskService {
	return &TaskService{
		store:     store,
		reminders: reminders,
		now:       time.Now,
	}
}

func (service *TaskService) ListAll(ctx context.Context) ([]models.Task, error) {
	if err := service.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return cloneTasks(service.tasks), nil
}

// Create schedules reminders for the task, appends it and persists the whole
// collection. On ErrStoreWrite the task stays in memory and is still returned.
func (service *TaskService) Create(ctx context.Context, name string, subject string, timeText string, day int) (models.Task, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(subject) == "" || strings.TrimSpace(timeText) == "" {
		return models.Task{}, ErrRequiredFields
	}
	if day < models.MinTaskDay || day > models.MaxTaskDay {
		return models.Task{}, ErrTaskDayOutOfRange
	}
	if err := service.ensureLoaded(ctx); err != nil {
		return models.Task{}, err
	}

	var handles []string
	if service.reminders != nil {
		handles = service.reminders.Schedule(ctx, name, subject, day)
	}
	if len(handles) == 0 {
		handles = nil
	}

	task := models.Task{
		ID:              service.nextID(),
		Name:            name,
		Subject:         subject,
		Time:            timeText,
		Done:            false,
		Day:             day,
		ReminderHandles: handles,
	}
	service.tasks = append(service.tasks, task)

	if err := saveSnapshot(ctx, service.store, TasksStoreKey, service.tasks); err != nil {
		return cloneTask(task), err
	}
	return cloneTask(task), nil
}

// ToggleDone flips the task's done flag. Completing a task cancels its
// reminders; reopening it does not schedule new ones.
func (service *TaskService) ToggleDone(ctx context.Context, taskID int64) (models.Task, error) {
	if err := service.ensureLoaded(ctx); err != nil {
		return models.Task{}, err
	}

	index := service.indexOf(taskID)
	if index < 0 {
		return models.Task{}, fmt.Errorf("%w: task %d", ErrNotFound, taskID)
	}

	task := &service.tasks[index]
	task.Done = !task.Done
	if task.Done && service.reminders != nil {
		for _, handle := range task.ReminderHandles {
			service.reminders.Cancel(ctx, handle)
		}
	}

	if err := saveSnapshot(ctx, service.store, TasksStoreKey, service.tasks); err != nil {
		return cloneTask(*task), err
	}
	return cloneTask(*task), nil
}

func (service *TaskService) TasksForDay(ctx context.Context, day int) ([]models.Task, error) {
	if err := service.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return FilterTasksByDay(service.tasks, day), nil
}

func (service *TaskService) DayStatus(ctx context.Context, day int) (models.DayStatus, error) {
	if err := service.ensureLoaded(ctx); err != nil {
		return models.DayStatusEmpty, err
	}
	return ComputeDayStatus(service.tasks, day), nil
}

func (service *TaskService) MonthOverview(ctx context.Context) ([]DayOverview, error) {
	if err := service.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return BuildMonthOverview(service.tasks), nil
}

func (service *TaskService) PendingCount(ctx context.Context) (int, error) {
	if err := service.ensureLoaded(ctx); err != nil {
		return 0, err
	}
	pending := 0
	for _, task := range service.tasks {
		if !task.Done {
			pending++
		}
	}
	return pending, nil
}

func (service *TaskService) ensureLoaded(ctx context.Context) error {
	if service.loaded {
		return nil
	}

	tasks := make([]models.Task, 0)
	_, err := loadSnapshot(ctx, service.store, TasksStoreKey, &tasks)
	if errors.Is(err, ErrCorruptData) {
		log.Printf("tasks: %v; continuing with an empty collection", err)
		tasks = make([]models.Task, 0)
	} else if err != nil {
		return err
	}

	service.tasks = tasks
	service.loaded = true
	return nil
}

// nextID uses the creation timestamp, bumped past any existing id.
func (service *TaskService) nextID() int64 {
	id := service.now().UnixMilli()
	for _, task := range service.tasks {
		if task.ID >= id {
			id = task.ID + 1
		}
	}
	return id
}

func (service *TaskService) indexOf(taskID int64) int {
	for index := range service.tasks {
		if service.tasks[index].ID == taskID {
			return index
		}
	}
	return -1
}

func cloneTasks(tasks []models.Task) []models.Task {
	cloned := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		cloned = append(cloned, cloneTask(task))
	}
	return cloned
}

func cloneTask(task models.Task) models.Task {
	if task.ReminderHandles != nil {
		task.ReminderHandles = append([]string(nil), task.ReminderHandles...)
	}
	return task
}

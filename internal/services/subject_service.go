package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/taskflow/internal/models"
)

type TaskReader interface {
	ListAll(ctx context.Context) ([]models.Task, error)
}

// SubjectService owns the subject collection and derives its progress from
// the task collection on demand.
type SubjectService struct {
	store DurableStore
	tasks TaskReader
	now   func() time.Time

	loaded   bool
	subjects []models.Subject
}

func NewSubjectService(store DurableStore, tasks TaskReader) *SubjectService {
	return &SubjectService{
		store: store,
		tasks: tasks,
		now:   time.Now,
	}
}

// Recompute rebuilds every subject's counters from the current tasks and
// persists the collection. Repeated calls without mutations write the same bytes.
func (service *SubjectService) Recompute(ctx context.Context) ([]models.Subject, error) {
	if err := service.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	tasks, err := service.tasks.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks for progress: %w", err)
	}

	service.subjects = ComputeSubjectProgress(service.subjects, tasks)
	if err := saveSnapshot(ctx, service.store, SubjectsStoreKey, service.subjects); err != nil {
		return service.snapshot(), err
	}
	return service.snapshot(), nil
}

// AddSubject stores a subject with zeroed progress. It does not recompute.
func (service *SubjectService) AddSubject(ctx context.Context, name string) (models.Subject, error) {
	if strings.TrimSpace(name) == "" {
		return models.Subject{}, ErrSubjectNameRequired
	}
	if err := service.ensureLoaded(ctx); err != nil {
		return models.Subject{}, err
	}

	subject := models.Subject{
		ID:   service.nextID(),
		Name: name,
	}
	service.subjects = append(service.subjects, subject)

	if err := saveSnapshot(ctx, service.store, SubjectsStoreKey, service.subjects); err != nil {
		return subject, err
	}
	return subject, nil
}

// RemoveSubject deletes the subject only; matching tasks are left as they are.
func (service *SubjectService) RemoveSubject(ctx context.Context, subjectID string) error {
	if err := service.ensureLoaded(ctx); err != nil {
		return err
	}

	index := -1
	for candidate := range service.subjects {
		if service.subjects[candidate].ID == subjectID {
			index = candidate
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("%w: subject %s", ErrNotFound, subjectID)
	}

	service.subjects = append(service.subjects[:index:index], service.subjects[index+1:]...)
	return saveSnapshot(ctx, service.store, SubjectsStoreKey, service.subjects)
}

func (service *SubjectService) List(ctx context.Context) ([]models.Subject, error) {
	if err := service.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return service.snapshot(), nil
}

func (service *SubjectService) Search(ctx context.Context, query string) ([]models.Subject, error) {
	if err := service.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return FilterSubjectsByName(service.subjects, query), nil
}

func (service *SubjectService) ensureLoaded(ctx context.Context) error {
	if service.loaded {
		return nil
	}

	subjects := make([]models.Subject, 0)
	_, err := loadSnapshot(ctx, service.store, SubjectsStoreKey, &subjects)
	if errors.Is(err, ErrCorruptData) {
		log.Printf("subjects: %v; continuing with an empty collection", err)
		subjects = make([]models.Subject, 0)
	} else if err != nil {
		return err
	}

	service.subjects = subjects
	service.loaded = true
	return nil
}

func (service *SubjectService) nextID() string {
	candidate := service.now().UnixMilli()
	for service.hasID(strconv.FormatInt(candidate, 10)) {
		candidate++
	}
	return strconv.FormatInt(candidate, 10)
}

func (service *SubjectService) hasID(subjectID string) bool {
	for _, subject := range service.subjects {
		if subject.ID == subjectID {
			return true
		}
	}
	return false
}

func (service *SubjectService) snapshot() []models.Subject {
	return append(make([]models.Subject, 0, len(service.subjects)), service.subjects...)
}

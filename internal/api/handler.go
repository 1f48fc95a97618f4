package api

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/terraincognita07/taskflow/internal/i18n"
	"github.com/terraincognita07/taskflow/internal/services"
)

type PermissionRequester interface {
	RequestPermission(ctx context.Context) bool
}

type Services struct {
	Accounts  *services.AccountService
	Tasks     *services.TaskService
	Subjects  *services.SubjectService
	Summary   *services.SummaryService
	Reminders PermissionRequester
}

// Handler is the presentation layer over the engine. Service calls are
// serialized through mu because the services are single-threaded.
type Handler struct {
	mu           sync.Mutex
	accounts     *services.AccountService
	tasks        *services.TaskService
	subjects     *services.SubjectService
	summary      *services.SummaryService
	reminders    PermissionRequester
	i18n         *i18n.Manager
	loginLimiter *attemptLimiter
	now          func() time.Time
}

func NewHandler(deps Services, i18nManager *i18n.Manager) (*Handler, error) {
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if deps.Accounts == nil || deps.Tasks == nil || deps.Subjects == nil || deps.Summary == nil {
		return nil, errors.New("account, task, subject and summary services are required")
	}

	return &Handler{
		accounts:     deps.Accounts,
		tasks:        deps.Tasks,
		subjects:     deps.Subjects,
		summary:      deps.Summary,
		reminders:    deps.Reminders,
		i18n:         i18nManager,
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
		now:          time.Now,
	}, nil
}

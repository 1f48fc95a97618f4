package services

import "context"

type HomeSummary struct {
	FirstName    string `json:"first_name"`
	PendingTasks int    `json:"pending_tasks"`
}

type PendingCounter interface {
	PendingCount(ctx context.Context) (int, error)
}

type SummaryService struct {
	accounts *AccountService
	tasks    PendingCounter
}

func NewSummaryService(accounts *AccountService, tasks PendingCounter) *SummaryService {
	return &SummaryService{accounts: accounts, tasks: tasks}
}

func (service *SummaryService) Summary(ctx context.Context) (HomeSummary, error) {
	summary := HomeSummary{}

	account, found, err := service.accounts.Current(ctx)
	if err != nil {
		return summary, err
	}
	if found {
		summary.FirstName = account.FirstName()
	}

	pending, err := service.tasks.PendingCount(ctx)
	if err != nil {
		return summary, err
	}
	summary.PendingTasks = pending
	return summary, nil
}

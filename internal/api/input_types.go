package api

import "github.com/terraincognita07/taskflow/internal/models"

type registerInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Birthdate string `json:"birthdate"`
}

type taskInput struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
	Day     int    `json:"day"`
}

type subjectInput struct {
	Name string `json:"name"`
}

// accountResponse never carries the password.
type accountResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Birthdate string `json:"birthdate,omitempty"`
}

func newAccountResponse(account models.Account) accountResponse {
	return accountResponse{
		Name:      account.Name,
		Email:     account.Email,
		Birthdate: account.Birthdate,
	}
}

type taskResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Subject         string   `json:"subject"`
	Time            string   `json:"time"`
	Done            bool     `json:"done"`
	Day             int      `json:"day"`
	ReminderHandles []string `json:"reminder_handles"`
}

func newTaskResponse(task models.Task) taskResponse {
	handles := task.ReminderHandles
	if handles == nil {
		handles = []string{}
	}
	return taskResponse{
		ID:              task.ID,
		Name:            task.Name,
		Subject:         task.Subject,
		Time:            task.Time,
		Done:            task.Done,
		Day:             task.Day,
		ReminderHandles: handles,
	}
}

func newTaskResponses(tasks []models.Task) []taskResponse {
	responses := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, newTaskResponse(task))
	}
	return responses
}

type subjectResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Progress   int    `json:"progress"`
	TasksTotal int    `json:"tasks_total"`
	TasksDone  int    `json:"tasks_done"`
}

func newSubjectResponse(subject models.Subject) subjectResponse {
	return subjectResponse{
		ID:         subject.ID,
		Name:       subject.Name,
		Progress:   subject.Progress,
		TasksTotal: subject.TasksTotal,
		TasksDone:  subject.TasksDone,
	}
}

func newSubjectResponses(subjects []models.Subject) []subjectResponse {
	responses := make([]subjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, newSubjectResponse(subject))
	}
	return responses
}

package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/taskflow/internal/db"
	"github.com/terraincognita07/taskflow/internal/i18n"
	"github.com/terraincognita07/taskflow/internal/models"
	"github.com/terraincognita07/taskflow/internal/notify"
	"github.com/terraincognita07/taskflow/internal/services"
	"gorm.io/gorm"
)

type testApp struct {
	app          *fiber.App
	handler      *Handler
	repositories *db.Repositories
	database     *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "taskflow-api-test.db"))
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewManager(i18n.LangES)
	require.NoError(t, err)

	repositories := db.NewRepositories(database)
	platform := notify.NewLocalPlatform(repositories.Reminders, 0, true)
	scheduler := services.NewReminderScheduler(platform, i18nManager.Reminders(i18n.LangES), time.UTC)
	accounts := services.NewAccountService(repositories.Store)
	tasks := services.NewTaskService(repositories.Store, scheduler)

	handler, err := NewHandler(Services{
		Accounts:  accounts,
		Tasks:     tasks,
		Subjects:  services.NewSubjectService(repositories.Store, tasks),
		Summary:   services.NewSummaryService(accounts, tasks),
		Reminders: scheduler,
	}, i18nManager)
	require.NoError(t, err)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return &testApp{app: app, handler: handler, repositories: repositories, database: database}
}

func (ta *testApp) reminder(t *testing.T, handle string) models.Reminder {
	t.Helper()

	reminder := models.Reminder{}
	require.NoError(t, ta.database.Where("handle = ?", handle).First(&reminder).Error)
	return reminder
}

// rejectStoreWrites makes every kv_entries insert or update abort.
func (ta *testApp) rejectStoreWrites(t *testing.T) {
	t.Helper()

	require.NoError(t, ta.database.Exec(`CREATE TRIGGER reject_kv_insert BEFORE INSERT ON kv_entries
BEGIN SELECT RAISE(ABORT, 'kv_entries is read-only'); END`).Error)
	require.NoError(t, ta.database.Exec(`CREATE TRIGGER reject_kv_update BEFORE UPDATE ON kv_entries
BEGIN SELECT RAISE(ABORT, 'kv_entries is read-only'); END`).Error)
}

func (ta *testApp) request(t *testing.T, method string, path string, payload any, headers ...string) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for index := 0; index+1 < len(headers); index += 2 {
		request.Header.Set(headers[index], headers[index+1])
	}

	response, err := ta.app.Test(request, -1)
	require.NoError(t, err)
	defer response.Body.Close()

	content, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, content
}

func decodeJSON[T any](t *testing.T, content []byte) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(content, &value), "body: %s", string(content))
	return value
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func registerTestAccount(t *testing.T, ta *testApp) {
	t.Helper()

	status, body := ta.request(t, http.MethodPost, "/api/account/register", registerInput{
		Name:            "Ana María",
		Email:           "Ana@Uni.edu",
		Password:        "Secreta1",
		ConfirmPassword: "Secreta1",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
}

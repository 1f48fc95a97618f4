package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.request(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestRegisterAndLogin(t *testing.T) {
	ta := newTestApp(t)
	registerTestAccount(t, ta)

	status, body := ta.request(t, http.MethodPost, "/api/account/login", loginInput{
		Email:    "  ana@uni.EDU ",
		Password: "Secreta1",
	})
	require.Equal(t, http.StatusOK, status, string(body))

	account := decodeJSON[accountResponse](t, body)
	assert.Equal(t, "Ana María", account.Name)
	assert.NotContains(t, string(body), "Secreta1")
}

func TestRegisterValidationErrors(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.request(t, http.MethodPost, "/api/account/register", registerInput{
		Name:            "Ana",
		Email:           "ana@uni.edu",
		Password:        "a",
		ConfirmPassword: "b",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "password_mismatch", decodeJSON[errorBody](t, body).Error)

	status, body = ta.request(t, http.MethodPost, "/api/account/register", registerInput{Name: "Ana"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "required_fields", decodeJSON[errorBody](t, body).Error)
}

func TestLoginErrors(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.request(t, http.MethodPost, "/api/account/login", loginInput{Email: " ", Password: "x"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "missing_credentials", decodeJSON[errorBody](t, body).Error)

	status, body = ta.request(t, http.MethodPost, "/api/account/login", loginInput{Email: "ana@uni.edu", Password: "x"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "no_account", decodeJSON[errorBody](t, body).Error)

	registerTestAccount(t, ta)
	status, body = ta.request(t, http.MethodPost, "/api/account/login", loginInput{Email: "ana@uni.edu", Password: "secreta1"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid_credentials", decodeJSON[errorBody](t, body).Error)
}

func TestLoginRateLimit(t *testing.T) {
	ta := newTestApp(t)
	registerTestAccount(t, ta)

	for attempt := 0; attempt < loginAttemptLimit; attempt++ {
		status, _ := ta.request(t, http.MethodPost, "/api/account/login", loginInput{Email: "ana@uni.edu", Password: "wrong"})
		require.Equal(t, http.StatusUnauthorized, status)
	}

	status, body := ta.request(t, http.MethodPost, "/api/account/login", loginInput{Email: "ana@uni.edu", Password: "Secreta1"})
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, "too_many_attempts", decodeJSON[errorBody](t, body).Error)
}

func TestErrorMessagesFollowAcceptLanguage(t *testing.T) {
	ta := newTestApp(t)

	_, body := ta.request(t, http.MethodGet, "/api/account", nil)
	assert.Equal(t, "No hay cuenta registrada.", decodeJSON[errorBody](t, body).Message)

	status, body := ta.request(t, http.MethodGet, "/api/account", nil, "Accept-Language", "en-US,en;q=0.9")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No account is registered.", decodeJSON[errorBody](t, body).Message)
}

func TestUpdateProfileOverwritesAccount(t *testing.T) {
	ta := newTestApp(t)
	registerTestAccount(t, ta)

	status, body := ta.request(t, http.MethodPut, "/api/account", profileInput{
		Name:      "Lucía Pérez",
		Email:     "lucia@uni.edu",
		Password:  "Nueva2",
		Birthdate: "2001-04-09",
	})
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = ta.request(t, http.MethodGet, "/api/account", nil)
	require.Equal(t, http.StatusOK, status)
	account := decodeJSON[accountResponse](t, body)
	assert.Equal(t, accountResponse{Name: "Lucía Pérez", Email: "lucia@uni.edu", Birthdate: "2001-04-09"}, account)

	status, _ = ta.request(t, http.MethodPost, "/api/account/login", loginInput{Email: "lucia@uni.edu", Password: "Nueva2"})
	assert.Equal(t, http.StatusOK, status)
}

func TestSummary(t *testing.T) {
	ta := newTestApp(t)
	registerTestAccount(t, ta)

	for _, name := range []string{"Ensayo", "Quiz"} {
		status, body := ta.request(t, http.MethodPost, "/api/tasks", taskInput{Name: name, Subject: "Historia", Time: "10:00", Day: 5})
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body := ta.request(t, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"first_name":"Ana","pending_tasks":2}`, string(body))
}

func TestRequestReminderPermission(t *testing.T) {
	ta := newTestApp(t)

	status, body := ta.request(t, http.MethodPost, "/api/reminders/permission", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, strings.Contains(string(body), `"granted":true`), string(body))
}

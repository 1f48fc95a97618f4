package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/taskflow/internal/notify"
)

const (
	reminderBackendLocal  = "local"
	reminderBackendGoogle = "google"
	reminderBackendOff    = "off"
)

type config struct {
	Location        *time.Location
	DBPath          string
	Port            string
	DefaultLanguage string
	ReminderBackend string
	PollInterval    time.Duration
	ReminderQuota   int
	CalendarName    string
	CredentialsFile string
	TokenFile       string
}

func loadConfig() (config, error) {
	port, err := resolvePort()
	if err != nil {
		return config{}, err
	}
	backend, err := resolveReminderBackend()
	if err != nil {
		return config{}, err
	}
	interval, err := resolvePollInterval()
	if err != nil {
		return config{}, err
	}
	quota, err := resolveReminderQuota()
	if err != nil {
		return config{}, err
	}

	return config{
		Location:        mustLoadLocation(getEnv("TZ", "UTC")),
		DBPath:          getEnv("DB_PATH", defaultDBPath()),
		Port:            port,
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "es"),
		ReminderBackend: backend,
		PollInterval:    interval,
		ReminderQuota:   quota,
		CalendarName:    getEnv("GOOGLE_CALENDAR_NAME", ""),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", filepath.Join("data", "credentials.json")),
		TokenFile:       getEnv("GOOGLE_TOKEN_FILE", filepath.Join("data", "calendar-token.json")),
	}, nil
}

func defaultDBPath() string {
	return filepath.Join("data", "taskflow.db")
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q: must be between 1 and 65535", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveReminderBackend() (string, error) {
	backend := strings.ToLower(getEnv("REMINDER_BACKEND", reminderBackendLocal))
	switch backend {
	case reminderBackendLocal, reminderBackendGoogle, reminderBackendOff:
		return backend, nil
	default:
		return "", fmt.Errorf("invalid REMINDER_BACKEND %q: use local, google or off", backend)
	}
}

func resolvePollInterval() (time.Duration, error) {
	raw := getEnv("REMINDER_POLL_INTERVAL", notify.DefaultPollInterval.String())
	interval, err := time.ParseDuration(raw)
	if err != nil || interval < time.Second {
		return 0, fmt.Errorf("invalid REMINDER_POLL_INTERVAL %q: use a duration of at least 1s", raw)
	}
	return interval, nil
}

func resolveReminderQuota() (int, error) {
	raw := getEnv("REMINDER_QUOTA", strconv.Itoa(notify.DefaultReminderQuota))
	quota, err := strconv.Atoi(raw)
	if err != nil || quota < 1 {
		return 0, fmt.Errorf("invalid REMINDER_QUOTA %q: must be a positive integer", raw)
	}
	return quota, nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

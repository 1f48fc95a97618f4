package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var calendarScopes = []string{
	calendar.CalendarEventsScope,
	calendar.CalendarReadonlyScope,
}

// LoadOAuthConfig reads the installed-app client secrets downloaded from the
// Google Cloud console.
func LoadOAuthConfig(credentialsFile string) (*oauth2.Config, error) {
	content, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read client secret file %s: %w", credentialsFile, err)
	}

	config, err := google.ConfigFromJSON(content, calendarScopes...)
	if err != nil {
		return nil, fmt.Errorf("parse client secret file: %w", err)
	}
	return config, nil
}

// AuthCodeURL asks for offline access so a refresh token is issued.
func AuthCodeURL(config *oauth2.Config) string {
	return config.AuthCodeURL("taskflow", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

func ExchangeCode(ctx context.Context, config *oauth2.Config, code string) (*oauth2.Token, error) {
	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return token, nil
}

func ReadToken(path string) (*oauth2.Token, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(file).Decode(token); err != nil {
		return nil, fmt.Errorf("decode token from file %s: %w", path, err)
	}
	return token, nil
}

func SaveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open token file %s: %w", path, err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(token); err != nil {
		return fmt.Errorf("write token file %s: %w", path, err)
	}
	return nil
}

// NewCalendarService builds an authenticated client from the cached token.
// The token refreshes itself in memory; authorize-calendar rewrites the file.
func NewCalendarService(ctx context.Context, credentialsFile string, tokenFile string) (*calendar.Service, error) {
	config, err := LoadOAuthConfig(credentialsFile)
	if err != nil {
		return nil, err
	}

	token, err := ReadToken(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("read calendar token (run authorize-calendar first): %w", err)
	}

	service, err := calendar.NewService(ctx, option.WithHTTPClient(config.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return service, nil
}

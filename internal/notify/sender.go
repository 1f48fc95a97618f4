package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

type Sender interface {
	Send(ctx context.Context, title string, body string) error
}

// LogSender writes reminders to the process log.
type LogSender struct{}

func (LogSender) Send(_ context.Context, title string, body string) error {
	log.Printf("reminders: %s | %s", title, body)
	return nil
}

type TelegramSender struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
}

func NewTelegramSender(botToken string, chatID string) *TelegramSender {
	return &TelegramSender{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  telegramAPIBase,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

// NewTelegramSenderFromEnv reports false when TELEGRAM_BOT_TOKEN or
// TELEGRAM_CHAT_ID is unset.
func NewTelegramSenderFromEnv() (*TelegramSender, bool) {
	botToken := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	chatID := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))
	if botToken == "" || chatID == "" {
		return nil, false
	}
	return NewTelegramSender(botToken, chatID), true
}

func (sender *TelegramSender) Send(ctx context.Context, title string, body string) error {
	values := url.Values{}
	values.Set("chat_id", sender.chatID)
	values.Set("text", title+"\n"+body)

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", sender.apiBase, sender.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := sender.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(payload))
	}

	return nil
}

package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/taskflow/internal/notify"
)

func TestRunAuthorizeCalendarCommandSavesToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostForm.Get("code") != "code-123" {
			t.Errorf("unexpected code %q", r.PostForm.Get("code"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access","refresh_token":"refresh","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	credentialsFile := filepath.Join(dir, "credentials.json")
	tokenFile := filepath.Join(dir, "tokens", "token.json")
	credentials := fmt.Sprintf(`{"installed":{"client_id":"client-1","client_secret":"secret","redirect_uris":["http://localhost"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":%q}}`, server.URL)
	if err := os.WriteFile(credentialsFile, []byte(credentials), 0o600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}

	var out bytes.Buffer
	err := RunAuthorizeCalendarCommand(context.Background(), credentialsFile, tokenFile, strings.NewReader("code-123\n"), &out)
	if err != nil {
		t.Fatalf("RunAuthorizeCalendarCommand returned error: %v", err)
	}
	if !strings.Contains(out.String(), "client_id=client-1") {
		t.Fatalf("expected auth url in output, got %q", out.String())
	}

	token, err := notify.ReadToken(tokenFile)
	if err != nil {
		t.Fatalf("ReadToken returned error: %v", err)
	}
	if token.AccessToken != "access" || token.RefreshToken != "refresh" {
		t.Fatalf("unexpected saved token %+v", token)
	}
}

func TestRunAuthorizeCalendarCommandRequiresCode(t *testing.T) {
	dir := t.TempDir()
	credentialsFile := filepath.Join(dir, "credentials.json")
	credentials := `{"installed":{"client_id":"c","client_secret":"s","redirect_uris":["http://localhost"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`
	if err := os.WriteFile(credentialsFile, []byte(credentials), 0o600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}

	err := RunAuthorizeCalendarCommand(context.Background(), credentialsFile, filepath.Join(dir, "token.json"), strings.NewReader("\n"), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for empty authorization code")
	}
}

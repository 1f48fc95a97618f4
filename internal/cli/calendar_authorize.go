package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/taskflow/internal/notify"
)

// RunAuthorizeCalendarCommand runs the installed-app OAuth flow and caches
// the token for the google reminder backend.
func RunAuthorizeCalendarCommand(ctx context.Context, credentialsFile string, tokenFile string, in io.Reader, out io.Writer) error {
	config, err := notify.LoadOAuthConfig(credentialsFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Open this URL in your browser and authorize TaskFlow:\n%s\n\n", notify.AuthCodeURL(config))
	fmt.Fprint(out, "Paste the authorization code: ")

	code, err := readLine(bufio.NewReader(in))
	if err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("authorization code is required")
	}

	token, err := notify.ExchangeCode(ctx, config, code)
	if err != nil {
		return err
	}
	if err := notify.SaveToken(tokenFile, token); err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ Calendar token saved to %s\n", tokenFile)
	return nil
}

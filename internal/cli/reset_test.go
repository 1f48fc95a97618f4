package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/taskflow/internal/db"
	"github.com/terraincognita07/taskflow/internal/services"
)

func TestGenerateTemporaryPasswordMinimumLength(t *testing.T) {
	t.Parallel()

	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want 8", len(password))
	}
}

func TestGenerateTemporaryPasswordAlphabet(t *testing.T) {
	t.Parallel()

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	password, err := generateTemporaryPassword(24)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 24 {
		t.Fatalf("generateTemporaryPassword len = %d, want 24", len(password))
	}

	for _, char := range password {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
}

func scriptedPasswords(answers ...string) passwordReader {
	return func(string) (string, error) {
		if len(answers) == 0 {
			return "", errors.New("no more answers")
		}
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
}

func newAccountServiceForTest(t *testing.T) *services.AccountService {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "taskflow-cli.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	accounts := services.NewAccountService(db.NewKVRepository(database))
	if _, err := accounts.UpdateProfile(context.Background(), "Ana María", "ana@uni.edu", "vieja", "2001-04-09"); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return accounts
}

func TestResetPasswordWithChosenPassword(t *testing.T) {
	accounts := newAccountServiceForTest(t)
	ctx := context.Background()
	var out bytes.Buffer

	if err := resetPassword(ctx, accounts, scriptedPasswords("nueva", "nueva"), &out); err != nil {
		t.Fatalf("resetPassword returned error: %v", err)
	}

	account, err := accounts.Login(ctx, "ana@uni.edu", "nueva")
	if err != nil {
		t.Fatalf("expected login with new password, got %v", err)
	}
	if account.Name != "Ana María" || account.Birthdate != "2001-04-09" {
		t.Fatalf("expected profile to be kept, got %+v", account)
	}
	if strings.Contains(out.String(), "Temporary password") {
		t.Fatalf("did not expect a temporary password, output %q", out.String())
	}
}

func TestResetPasswordGeneratesTemporaryPassword(t *testing.T) {
	accounts := newAccountServiceForTest(t)
	ctx := context.Background()
	var out bytes.Buffer

	if err := resetPassword(ctx, accounts, scriptedPasswords(""), &out); err != nil {
		t.Fatalf("resetPassword returned error: %v", err)
	}

	account, _, err := accounts.Current(ctx)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if len(account.Password) != temporaryPasswordLength {
		t.Fatalf("expected %d-char temporary password, got %q", temporaryPasswordLength, account.Password)
	}
	if !strings.Contains(out.String(), "Temporary password: "+account.Password) {
		t.Fatalf("expected temporary password in output, got %q", out.String())
	}
}

func TestResetPasswordRejectsMismatch(t *testing.T) {
	accounts := newAccountServiceForTest(t)
	ctx := context.Background()

	err := resetPassword(ctx, accounts, scriptedPasswords("uno", "dos"), &bytes.Buffer{})
	if !errors.Is(err, errPasswordsDiffer) {
		t.Fatalf("expected errPasswordsDiffer, got %v", err)
	}
	if _, err := accounts.Login(ctx, "ana@uni.edu", "vieja"); err != nil {
		t.Fatalf("expected old password to remain, got %v", err)
	}
}

func TestResetPasswordWithoutAccount(t *testing.T) {
	accounts := services.NewAccountService(&emptyStore{})

	err := resetPassword(context.Background(), accounts, scriptedPasswords("x", "x"), &bytes.Buffer{})
	if !errors.Is(err, services.ErrNoAccount) {
		t.Fatalf("expected ErrNoAccount, got %v", err)
	}
}

type emptyStore struct{}

func (*emptyStore) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (*emptyStore) Set(context.Context, string, string) error { return nil }

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/taskflow/internal/db"
	"github.com/terraincognita07/taskflow/internal/security"
	"github.com/terraincognita07/taskflow/internal/services"
)

const temporaryPasswordLength = 12

var errPasswordsDiffer = errors.New("passwords do not match")

func RunResetPasswordCommand(ctx context.Context, dbPath string) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	accounts := services.NewAccountService(db.NewKVRepository(database))
	return resetPassword(ctx, accounts, newTerminalPasswordReader(os.Stdin, os.Stdout), os.Stdout)
}

// resetPassword rewrites the stored password and keeps the rest of the
// profile. An empty answer generates a temporary password.
func resetPassword(ctx context.Context, accounts *services.AccountService, readPassword passwordReader, out io.Writer) error {
	account, found, err := accounts.Current(ctx)
	if err != nil {
		return fmt.Errorf("load account: %w", err)
	}
	if !found {
		return services.ErrNoAccount
	}

	password, err := readPassword("New password (leave empty to generate one): ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	generated := password == ""
	if generated {
		password, err = generateTemporaryPassword(temporaryPasswordLength)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
	} else {
		confirmation, err := readPassword("Repeat new password: ")
		if err != nil {
			return fmt.Errorf("read password confirmation: %w", err)
		}
		if confirmation != password {
			return errPasswordsDiffer
		}
	}

	if _, err := accounts.UpdateProfile(ctx, account.Name, account.Email, password, account.Birthdate); err != nil {
		return fmt.Errorf("update account password: %w", err)
	}

	fmt.Fprintf(out, "✅ Password reset for %s\n", account.Email)
	if generated {
		fmt.Fprintf(out, "Temporary password: %s\n", password)
	}
	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	return security.TemporaryPassword(length)
}

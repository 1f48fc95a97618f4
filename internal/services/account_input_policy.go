package services

import (
	"strings"

	"github.com/terraincognita07/taskflow/internal/models"
)

func NormalizeAccountEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateRegistrationInput treats a whitespace-only name or email as missing.
// Passwords are compared exactly.
func ValidateRegistrationInput(name string, email string, password string, confirmPassword string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" || confirmPassword == "" {
		return ErrRequiredFields
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// CredentialsMatch compares email ignoring case and surrounding whitespace, and password exactly.
func CredentialsMatch(account models.Account, email string, password string) bool {
	return NormalizeAccountEmail(account.Email) == NormalizeAccountEmail(email) && account.Password == password
}

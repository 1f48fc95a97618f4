package services

import (
	"context"
	"errors"
	"log"

	"github.com/terraincognita07/taskflow/internal/models"
)

// AccountService owns the singleton account snapshot.
type AccountService struct {
	store DurableStore
}

func NewAccountService(store DurableStore) *AccountService {
	return &AccountService{store: store}
}

func (service *AccountService) Register(ctx context.Context, name string, email string, password string, confirmPassword string) (models.Account, error) {
	if err := ValidateRegistrationInput(name, email, password, confirmPassword); err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Name:     name,
		Email:    email,
		Password: password,
	}
	if err := saveSnapshot(ctx, service.store, AccountStoreKey, account); err != nil {
		return account, err
	}
	return account, nil
}

func (service *AccountService) Login(ctx context.Context, email string, password string) (models.Account, error) {
	account, found, err := service.Current(ctx)
	if err != nil {
		return models.Account{}, err
	}
	if !found {
		return models.Account{}, ErrNoAccount
	}
	if !CredentialsMatch(account, email, password) {
		return models.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

// UpdateProfile overwrites the stored account without re-authentication.
func (service *AccountService) UpdateProfile(ctx context.Context, name string, email string, password string, birthdate string) (models.Account, error) {
	account := models.Account{
		Name:      name,
		Email:     email,
		Password:  password,
		Birthdate: birthdate,
	}
	if err := saveSnapshot(ctx, service.store, AccountStoreKey, account); err != nil {
		return account, err
	}
	return account, nil
}

// Current returns the stored account. A corrupt snapshot is reported as no account.
func (service *AccountService) Current(ctx context.Context) (models.Account, bool, error) {
	account := models.Account{}
	found, err := loadSnapshot(ctx, service.store, AccountStoreKey, &account)
	if errors.Is(err, ErrCorruptData) {
		log.Printf("account: %v; treating as no account", err)
		return models.Account{}, false, nil
	}
	if err != nil {
		return models.Account{}, false, err
	}
	return account, found, nil
}

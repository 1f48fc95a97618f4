package services

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrNoAccount          = errors.New("no account registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCorruptData        = errors.New("corrupt stored data")
	ErrStoreWrite         = errors.New("changes not saved")
)

var (
	ErrRequiredFields      = fmt.Errorf("%w: all fields are required", ErrValidation)
	ErrPasswordMismatch    = fmt.Errorf("%w: passwords do not match", ErrValidation)
	ErrTaskDayOutOfRange   = fmt.Errorf("%w: day must be between 1 and 31", ErrValidation)
	ErrSubjectNameRequired = fmt.Errorf("%w: subject name is required", ErrValidation)
)

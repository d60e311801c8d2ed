package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/marcelly-ramos/projeto-backend/internal/hash"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPasswordMismatch = fmt.Errorf("passwords do not match: %w", ErrValidation)
	ErrPasswordTooLong  = fmt.Errorf("password longer than %d bytes: %w", hash.MaxPasswordBytes, ErrValidation)
)

// storeErr folds gorm's lookup and uniqueness errors into the service
// sentinels and leaves everything else as is.
func storeErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

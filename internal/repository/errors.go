package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate indicates a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrUnavailable wraps connection and transaction failures.
	ErrUnavailable = errors.New("persistence unavailable")
)

// translate maps GORM errors onto the repository sentinels so callers
// never match on driver errors directly.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

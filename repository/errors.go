package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches the lookup
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert or update violates a unique index
	ErrDuplicateKey = errors.New("duplicate key")
)

// translate maps driver and gorm errors onto the repository sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isDuplicateKey(err):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}

// isDuplicateKey detects unique violations. gorm translates them when
// TranslateError is enabled; the message check covers connections opened
// without it (works with PostgreSQL, MySQL and SQLite).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}

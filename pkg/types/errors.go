package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed        = errors.New("store is closed")
	ErrStorageUnavailable = errors.New("persistent storage unavailable")
	ErrMigrationFailed    = errors.New("schema migration failed")
)

// Operation errors.
var (
	ErrNotFound          = errors.New("entity not found")
	ErrForbidden         = errors.New("operation not permitted")
	ErrInvalidID         = errors.New("invalid entity ID")
	ErrInvalidName       = errors.New("invalid name")
	ErrDuplicateKey      = errors.New("category key already exists for profile")
	ErrInsufficientFunds = errors.New("insufficient coin balance")
	ErrInvalidBackup     = errors.New("invalid backup document")
	ErrInvalidPIN        = errors.New("invalid PIN")
)

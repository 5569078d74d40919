// This file implements the caregiver PIN gate. The PIN is the one record
// shared across all profiles on a device.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/meumundo/simbolos/pkg/types"
)

// minPINLen is the minimum number of digits a caregiver PIN may have.
const minPINLen = 4

// VerifyPIN reports whether candidate matches the stored caregiver PIN.
func (s *Store) VerifyPIN(candidate string) (bool, error) {
	db, err := s.conn()
	if err != nil {
		return false, err
	}

	var pin string
	if err := db.QueryRow(`SELECT pin FROM security WHERE id = 1`).Scan(&pin); err != nil {
		return false, fmt.Errorf("reading PIN: %w", err)
	}
	return candidate == pin, nil
}

// SetPIN replaces the caregiver PIN. The new PIN must be at least four
// digits, digits only.
func (s *Store) SetPIN(pin string) error {
	if len(pin) < minPINLen {
		return types.ErrInvalidPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return types.ErrInvalidPIN
		}
	}
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`UPDATE security SET pin = ? WHERE id = 1`, pin); err != nil {
			return fmt.Errorf("updating PIN: %w", err)
		}
		return nil
	})
}

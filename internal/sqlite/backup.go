// This file implements backup export and import. Import is a destructive
// replace of the profile's board, never a merge; the caller confirms with
// the user before invoking it.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/meumundo/simbolos/pkg/types"
)

// ExportBackup serializes the profile's name, categories, and symbols to a
// JSON document. Symbol images ride along as base64.
func (s *Store) ExportBackup(profileID string) ([]byte, error) {
	p, err := s.GetProfile(profileID)
	if err != nil {
		return nil, err
	}
	cats, err := s.ListCategories(profileID)
	if err != nil {
		return nil, err
	}

	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(
		`SELECT symbol_id, profile_id, category_key, text, image, position, created_at
		 FROM symbols WHERE profile_id = ?
		 ORDER BY category_key, position, symbol_id`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("reading symbols for export: %w", err)
	}
	defer rows.Close()

	syms, err := scanSymbols(rows)
	if err != nil {
		return nil, err
	}

	doc := types.Backup{
		ProfileName: p.Name,
		Categories:  cats,
		Symbols:     syms,
	}
	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return data, nil
}

// ImportBackup replaces the profile's categories and symbols with the
// document's contents. A malformed document returns ErrInvalidBackup and
// changes nothing. Imported rows are re-stamped with the profile's ID and
// fresh entity ids; any identity in the file is discarded.
func (s *Store) ImportBackup(profileID string, data []byte) error {
	var doc types.Backup
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidBackup, err)
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	if _, err := s.GetProfile(profileID); err != nil {
		return err
	}

	now := time.Now()
	ts := formatTime(now)

	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			`DELETE FROM symbols WHERE profile_id = ?`, profileID,
		); err != nil {
			return fmt.Errorf("clearing symbols: %w", err)
		}
		if _, err := tx.Exec(
			`DELETE FROM categories WHERE profile_id = ?`, profileID,
		); err != nil {
			return fmt.Errorf("clearing categories: %w", err)
		}

		for _, c := range doc.Categories {
			if _, err := tx.Exec(
				`INSERT INTO categories (category_id, profile_id, key, name, color, created_at)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				newID(), profileID, c.Key, c.Name, types.NormalizeColor(c.Color), ts,
			); err != nil {
				return fmt.Errorf("importing category %s: %w", c.Key, err)
			}
		}
		for _, sym := range doc.Symbols {
			if _, err := tx.Exec(
				`INSERT INTO symbols (symbol_id, profile_id, category_key, text, image, position, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				newID(), profileID, sym.CategoryKey, sym.Text, sym.Image, sym.Position, ts,
			); err != nil {
				return fmt.Errorf("importing symbol %q: %w", sym.Text, err)
			}
		}
		return nil
	})
}

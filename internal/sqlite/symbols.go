// This file implements symbol operations: board queries, ad-hoc additions,
// and the atomic reorder that rewrites a category's display sequence.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/meumundo/simbolos/pkg/types"
)

// quickCategoryKey receives symbols added ad hoc while composing a phrase.
const quickCategoryKey = "geral"

// AddSymbol creates a symbol at the end of its category: position is one
// past the highest position in that profile+category. The category must
// exist for the profile.
func (s *Store) AddSymbol(profileID, categoryKey, text string, image []byte) (*types.Symbol, error) {
	if profileID == "" {
		return nil, types.ErrInvalidID
	}
	if text == "" {
		return nil, types.ErrInvalidName
	}

	now := time.Now()
	sym := &types.Symbol{
		SymbolID:    newID(),
		ProfileID:   profileID,
		CategoryKey: categoryKey,
		Text:        text,
		Image:       image,
		CreatedAt:   now,
	}

	err := s.withTx(func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRow(
			`SELECT COUNT(*) FROM categories WHERE profile_id = ? AND key = ?`,
			profileID, categoryKey,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking category: %w", err)
		}
		if exists == 0 {
			return types.ErrNotFound
		}

		if err := tx.QueryRow(
			`SELECT COALESCE(MAX(position) + 1, 0) FROM symbols
			 WHERE profile_id = ? AND category_key = ?`,
			profileID, categoryKey,
		).Scan(&sym.Position); err != nil {
			return fmt.Errorf("computing position: %w", err)
		}

		return insertSymbolTx(tx, sym)
	})
	if err != nil {
		return nil, err
	}
	return sym, nil
}

// AddQuickSymbol creates a symbol in the general category from free-text
// phrase building. Position is timestamp-based so ad-hoc words land after
// the curated board without a max() scan.
func (s *Store) AddQuickSymbol(profileID, text string) (*types.Symbol, error) {
	if profileID == "" {
		return nil, types.ErrInvalidID
	}
	if text == "" {
		return nil, types.ErrInvalidName
	}

	now := time.Now()
	sym := &types.Symbol{
		SymbolID:    newID(),
		ProfileID:   profileID,
		CategoryKey: quickCategoryKey,
		Text:        text,
		Position:    now.UnixMilli(),
		CreatedAt:   now,
	}

	err := s.withTx(func(tx *sql.Tx) error {
		if err := ensureQuickCategoryTx(tx, profileID, now); err != nil {
			return err
		}
		return insertSymbolTx(tx, sym)
	})
	if err != nil {
		return nil, err
	}
	return sym, nil
}

// ensureQuickCategoryTx re-creates the general category if the caregiver
// deleted it, so a quick symbol never dangles without a category.
func ensureQuickCategoryTx(tx *sql.Tx, profileID string, now time.Time) error {
	var exists int
	if err := tx.QueryRow(
		`SELECT COUNT(*) FROM categories WHERE profile_id = ? AND key = ?`,
		profileID, quickCategoryKey,
	).Scan(&exists); err != nil {
		return fmt.Errorf("checking quick category: %w", err)
	}
	if exists > 0 {
		return nil
	}
	if _, err := tx.Exec(
		`INSERT INTO categories (category_id, profile_id, key, name, color, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		newID(), profileID, quickCategoryKey, "Geral", types.DefaultColor, formatTime(now),
	); err != nil {
		return fmt.Errorf("recreating quick category: %w", err)
	}
	return nil
}

func insertSymbolTx(tx *sql.Tx, sym *types.Symbol) error {
	_, err := tx.Exec(
		`INSERT INTO symbols (symbol_id, profile_id, category_key, text, image, position, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sym.SymbolID, sym.ProfileID, sym.CategoryKey, sym.Text, sym.Image,
		sym.Position, formatTime(sym.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting symbol: %w", err)
	}
	return nil
}

// ListSymbols returns the profile's symbols in a category, filtered by a
// case-insensitive contains match on text (empty term matches all), sorted
// by position with ties broken by id. Missing profile or category yields
// an empty slice. The match runs in Go: SQLite's lower() folds only ASCII
// and the board text is Portuguese.
func (s *Store) ListSymbols(profileID, categoryKey, search string) ([]types.Symbol, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT symbol_id, profile_id, category_key, text, image, position, created_at
		 FROM symbols
		 WHERE profile_id = ? AND category_key = ?
		 ORDER BY position, symbol_id`,
		profileID, categoryKey,
	)
	if err != nil {
		return nil, fmt.Errorf("listing symbols: %w", err)
	}
	defer rows.Close()

	syms, err := scanSymbols(rows)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return syms, nil
	}

	term := strings.ToLower(search)
	out := []types.Symbol{}
	for _, sym := range syms {
		if strings.Contains(strings.ToLower(sym.Text), term) {
			out = append(out, sym)
		}
	}
	return out, nil
}

// GetSymbol retrieves one symbol by ID, scoped to the profile.
func (s *Store) GetSymbol(profileID, symbolID string) (*types.Symbol, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		`SELECT symbol_id, profile_id, category_key, text, image, position, created_at
		 FROM symbols WHERE profile_id = ? AND symbol_id = ?`,
		profileID, symbolID,
	)
	sym, err := scanSymbol(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting symbol %s: %w", symbolID, err)
	}
	return sym, nil
}

// UpdateSymbolText renames a symbol.
func (s *Store) UpdateSymbolText(profileID, symbolID, text string) error {
	if text == "" {
		return types.ErrInvalidName
	}
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`UPDATE symbols SET text = ? WHERE profile_id = ? AND symbol_id = ?`,
			text, profileID, symbolID,
		)
		if err != nil {
			return fmt.Errorf("updating symbol: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return types.ErrNotFound
		}
		return nil
	})
}

// DeleteSymbol removes one symbol. Never cascades elsewhere.
func (s *Store) DeleteSymbol(profileID, symbolID string) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`DELETE FROM symbols WHERE profile_id = ? AND symbol_id = ?`,
			profileID, symbolID,
		)
		if err != nil {
			return fmt.Errorf("deleting symbol: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return types.ErrNotFound
		}
		return nil
	})
}

// ReorderSymbols assigns each symbol's position to its index in orderedIDs,
// all in one transaction. An ID that is not a symbol of that profile and
// category aborts the whole reorder with ErrNotFound.
func (s *Store) ReorderSymbols(profileID, categoryKey string, orderedIDs []string) error {
	return s.withTx(func(tx *sql.Tx) error {
		for i, id := range orderedIDs {
			res, err := tx.Exec(
				`UPDATE symbols SET position = ?
				 WHERE symbol_id = ? AND profile_id = ? AND category_key = ?`,
				i, id, profileID, categoryKey,
			)
			if err != nil {
				return fmt.Errorf("reordering symbol %s: %w", id, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				return types.ErrNotFound
			}
		}
		return nil
	})
}

func scanSymbols(rows *sql.Rows) ([]types.Symbol, error) {
	out := []types.Symbol{}
	for rows.Next() {
		var sym types.Symbol
		var created string
		if err := rows.Scan(
			&sym.SymbolID, &sym.ProfileID, &sym.CategoryKey, &sym.Text,
			&sym.Image, &sym.Position, &created,
		); err != nil {
			return nil, err
		}
		sym.CreatedAt = parseTime(created)
		out = append(out, sym)
	}
	return out, rows.Err()
}

func scanSymbol(row *sql.Row) (*types.Symbol, error) {
	var sym types.Symbol
	var created string
	if err := row.Scan(
		&sym.SymbolID, &sym.ProfileID, &sym.CategoryKey, &sym.Text,
		&sym.Image, &sym.Position, &created,
	); err != nil {
		return nil, err
	}
	sym.CreatedAt = parseTime(created)
	return &sym, nil
}

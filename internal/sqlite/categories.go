// This file implements category operations, including the cascade that
// keeps symbols from outliving their category. SQLite enforces per-profile
// key uniqueness; referential integrity is the application's job.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/meumundo/simbolos/pkg/types"
)

// AddCategory creates a category for the profile. The key is derived from
// the name by Slugify and must be unique within the profile; a collision
// returns ErrDuplicateKey. An unrecognized color falls back to the default.
func (s *Store) AddCategory(profileID, name, color string) (*types.Category, error) {
	if profileID == "" {
		return nil, types.ErrInvalidID
	}
	key := types.Slugify(name)
	if key == "" {
		return nil, types.ErrInvalidName
	}

	now := time.Now()
	c := &types.Category{
		CategoryID: newID(),
		ProfileID:  profileID,
		Key:        key,
		Name:       name,
		Color:      types.NormalizeColor(color),
		CreatedAt:  now,
	}

	err := s.withTx(func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRow(
			`SELECT COUNT(*) FROM categories WHERE profile_id = ? AND key = ?`,
			c.ProfileID, c.Key,
		).Scan(&exists); err != nil {
			return fmt.Errorf("checking category key: %w", err)
		}
		if exists > 0 {
			return types.ErrDuplicateKey
		}

		if _, err := tx.Exec(
			`INSERT INTO categories (category_id, profile_id, key, name, color, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			c.CategoryID, c.ProfileID, c.Key, c.Name, c.Color, formatTime(now),
		); err != nil {
			return fmt.Errorf("inserting category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCategories returns the profile's categories in insertion order.
// A profile with no categories yields an empty slice, not an error.
func (s *Store) ListCategories(profileID string) ([]types.Category, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT category_id, profile_id, key, name, color, created_at
		 FROM categories WHERE profile_id = ?
		 ORDER BY created_at, category_id`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	out := []types.Category{}
	for rows.Next() {
		var c types.Category
		var created string
		if err := rows.Scan(&c.CategoryID, &c.ProfileID, &c.Key, &c.Name, &c.Color, &created); err != nil {
			return nil, err
		}
		c.CreatedAt = parseTime(created)
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCategory retrieves one category by profile and key.
func (s *Store) GetCategory(profileID, key string) (*types.Category, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var c types.Category
	var created string
	err = db.QueryRow(
		`SELECT category_id, profile_id, key, name, color, created_at
		 FROM categories WHERE profile_id = ? AND key = ?`,
		profileID, key,
	).Scan(&c.CategoryID, &c.ProfileID, &c.Key, &c.Name, &c.Color, &created)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category %s: %w", key, err)
	}
	c.CreatedAt = parseTime(created)
	return &c, nil
}

// CategoryColor returns the category's color, or the default color when
// the category does not exist. Stale references never crash rendering, so
// this lookup never returns an error for a missing row.
func (s *Store) CategoryColor(profileID, key string) string {
	db, err := s.conn()
	if err != nil {
		return types.DefaultColor
	}

	var color string
	err = db.QueryRow(
		`SELECT color FROM categories WHERE profile_id = ? AND key = ?`,
		profileID, key,
	).Scan(&color)
	if err != nil {
		return types.DefaultColor
	}
	return types.NormalizeColor(color)
}

// DeleteCategory removes the category and, in the same transaction, every
// symbol in the profile carrying its key. A key not owned by the profile
// returns ErrNotFound and mutates nothing.
func (s *Store) DeleteCategory(profileID, key string) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`DELETE FROM categories WHERE profile_id = ? AND key = ?`,
			profileID, key,
		)
		if err != nil {
			return fmt.Errorf("deleting category: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return types.ErrNotFound
		}

		if _, err := tx.Exec(
			`DELETE FROM symbols WHERE profile_id = ? AND category_key = ?`,
			profileID, key,
		); err != nil {
			return fmt.Errorf("cascading symbol delete: %w", err)
		}
		return nil
	})
}

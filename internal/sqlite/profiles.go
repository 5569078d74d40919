// This file implements profile lifecycle. Creating a profile seeds its
// default board, settings, and gamification state in the same transaction;
// deleting one cascades over every partitioned table.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/meumundo/simbolos/pkg/types"
)

// CreateProfile creates a profile and seeds it. The profile row, the
// default board, the settings row, and the gamification defaults commit
// together or not at all.
func (s *Store) CreateProfile(name string) (*types.Profile, error) {
	if name == "" {
		return nil, types.ErrInvalidName
	}

	now := time.Now()
	p := &types.Profile{
		ProfileID: newID(),
		Name:      name,
		CreatedAt: now,
	}

	err := s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			`INSERT INTO profiles (profile_id, name, created_at) VALUES (?, ?, ?)`,
			p.ProfileID, p.Name, formatTime(now),
		); err != nil {
			return fmt.Errorf("inserting profile: %w", err)
		}
		if err := insertDefaultSettingsTx(tx, p.ProfileID); err != nil {
			return err
		}
		return seedProfileTx(tx, p.ProfileID, now)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetProfile retrieves a profile by ID.
func (s *Store) GetProfile(profileID string) (*types.Profile, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var p types.Profile
	var created string
	err = db.QueryRow(
		`SELECT profile_id, name, created_at FROM profiles WHERE profile_id = ?`,
		profileID,
	).Scan(&p.ProfileID, &p.Name, &created)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile %s: %w", profileID, err)
	}
	p.CreatedAt = parseTime(created)
	return &p, nil
}

// ListProfiles returns every profile, oldest first.
func (s *Store) ListProfiles() ([]types.Profile, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT profile_id, name, created_at FROM profiles ORDER BY created_at, profile_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var out []types.Profile
	for rows.Next() {
		var p types.Profile
		var created string
		if err := rows.Scan(&p.ProfileID, &p.Name, &created); err != nil {
			return nil, err
		}
		p.CreatedAt = parseTime(created)
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteProfile removes a profile and everything it owns: categories,
// symbols, phrases, settings, coins, goals, achievements, rewards, usage
// events, and seed marks. One transaction; no orphans survive.
func (s *Store) DeleteProfile(profileID string) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(`DELETE FROM profiles WHERE profile_id = ?`, profileID)
		if err != nil {
			return fmt.Errorf("deleting profile: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return types.ErrNotFound
		}

		for _, table := range []string{
			"categories", "symbols", "phrases", "user_settings", "coins",
			"daily_goals", "achievements", "rewards", "usage_events", "seed_marks",
		} {
			if _, err := tx.Exec(
				`DELETE FROM `+table+` WHERE profile_id = ?`, profileID,
			); err != nil {
				return fmt.Errorf("cascading delete on %s: %w", table, err)
			}
		}
		return nil
	})
}

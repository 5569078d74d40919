// This file implements the coin store. A purchase debits the balance,
// marks the reward, and installs the pack content in one transaction; the
// user is never charged without content nor given content for free.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/meumundo/simbolos/pkg/types"
)

// ListRewards returns the profile's store catalog in seed order.
func (s *Store) ListRewards(profileID string) ([]types.Reward, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT reward_id, profile_id, name, cost, purchased
		 FROM rewards WHERE profile_id = ? ORDER BY reward_id`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing rewards: %w", err)
	}
	defer rows.Close()

	out := []types.Reward{}
	for rows.Next() {
		var r types.Reward
		if err := rows.Scan(&r.RewardID, &r.ProfileID, &r.Name, &r.Cost, &r.Purchased); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// PurchaseReward buys a reward for the profile. A balance below cost
// returns ErrInsufficientFunds with no mutation; a reward already owned
// returns ErrForbidden. On success the balance drops by exactly cost, the
// reward is marked purchased, and the pack's category and symbols exist
// for the profile. Any failure rolls the whole purchase back.
func (s *Store) PurchaseReward(profileID, rewardID string) error {
	return s.withTx(func(tx *sql.Tx) error {
		var (
			cost      int64
			purchased bool
		)
		err := tx.QueryRow(
			`SELECT cost, purchased FROM rewards WHERE profile_id = ? AND reward_id = ?`,
			profileID, rewardID,
		).Scan(&cost, &purchased)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("reading reward %s: %w", rewardID, err)
		}
		if purchased {
			return types.ErrForbidden
		}

		var balance int64
		err = tx.QueryRow(
			`SELECT total FROM coins WHERE profile_id = ?`, profileID,
		).Scan(&balance)
		if err == sql.ErrNoRows {
			balance = 0
		} else if err != nil {
			return fmt.Errorf("reading balance: %w", err)
		}
		if balance < cost {
			return types.ErrInsufficientFunds
		}

		if _, err := tx.Exec(
			`UPDATE coins SET total = total - ? WHERE profile_id = ?`,
			cost, profileID,
		); err != nil {
			return fmt.Errorf("debiting coins: %w", err)
		}
		if _, err := tx.Exec(
			`UPDATE rewards SET purchased = 1 WHERE profile_id = ? AND reward_id = ?`,
			profileID, rewardID,
		); err != nil {
			return fmt.Errorf("marking reward purchased: %w", err)
		}

		pack, ok := rewardPacks[rewardID]
		if !ok {
			return nil
		}
		return installPackTx(tx, profileID, pack, time.Now())
	})
}

// installPackTx inserts the pack's category (if the key is not already
// present for the profile) and its symbols.
func installPackTx(tx *sql.Tx, profileID string, pack symbolPack, now time.Time) error {
	ts := formatTime(now)

	var exists int
	if err := tx.QueryRow(
		`SELECT COUNT(*) FROM categories WHERE profile_id = ? AND key = ?`,
		profileID, pack.category.key,
	).Scan(&exists); err != nil {
		return fmt.Errorf("checking pack category: %w", err)
	}
	if exists == 0 {
		if _, err := tx.Exec(
			`INSERT INTO categories (category_id, profile_id, key, name, color, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			newID(), profileID, pack.category.key, pack.category.name,
			pack.category.color, ts,
		); err != nil {
			return fmt.Errorf("installing pack category: %w", err)
		}
	}

	for i, text := range pack.category.symbols {
		if _, err := tx.Exec(
			`INSERT INTO symbols (symbol_id, profile_id, category_key, text, position, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			newID(), profileID, pack.category.key, text, pack.base+int64(i), ts,
		); err != nil {
			return fmt.Errorf("installing pack symbol %q: %w", text, err)
		}
	}
	return nil
}

// This file implements coins, daily goals, and achievements. Every coin
// credit happens in the same transaction as the state change that earned
// it, so a balance can never drift from the records justifying it.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/meumundo/simbolos/pkg/types"
)

// CoinBalance returns the profile's coin total. A profile without a coins
// row (never seeded) reads as zero.
func (s *Store) CoinBalance(profileID string) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var total int64
	err = db.QueryRow(`SELECT total FROM coins WHERE profile_id = ?`, profileID).Scan(&total)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading coin balance: %w", err)
	}
	return total, nil
}

// creditCoinsTx adds amount to the profile's balance inside the caller's
// transaction, creating the row when absent.
func creditCoinsTx(tx *sql.Tx, profileID string, amount int64) error {
	_, err := tx.Exec(
		`INSERT INTO coins (profile_id, total) VALUES (?, ?)
		 ON CONFLICT(profile_id) DO UPDATE SET total = total + excluded.total`,
		profileID, amount,
	)
	if err != nil {
		return fmt.Errorf("crediting %d coins: %w", amount, err)
	}
	return nil
}

// ListGoals returns the profile's daily goals in seed order.
func (s *Store) ListGoals(profileID string) ([]types.DailyGoal, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT goal_id, profile_id, name, target, current, reward, completed, last_updated
		 FROM daily_goals WHERE profile_id = ? ORDER BY goal_id`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	out := []types.DailyGoal{}
	for rows.Next() {
		var g types.DailyGoal
		if err := rows.Scan(
			&g.GoalID, &g.ProfileID, &g.Name, &g.Target, &g.Current,
			&g.Reward, &g.Completed, &g.LastUpdated,
		); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// IncrementGoal advances a goal by amount. A completed goal is frozen and
// the call is a no-op. Crossing the target clamps current, marks the goal
// completed, and credits its reward, all atomically; the reward is never
// credited twice.
func (s *Store) IncrementGoal(profileID, goalID string, amount int64) error {
	if amount <= 0 {
		return nil
	}
	return s.withTx(func(tx *sql.Tx) error {
		var (
			current, target, reward int64
			completed               bool
		)
		err := tx.QueryRow(
			`SELECT current, target, reward, completed FROM daily_goals
			 WHERE profile_id = ? AND goal_id = ?`,
			profileID, goalID,
		).Scan(&current, &target, &reward, &completed)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("reading goal %s: %w", goalID, err)
		}
		if completed {
			return nil
		}

		current += amount
		done := current >= target
		if done {
			current = target
		}

		if _, err := tx.Exec(
			`UPDATE daily_goals SET current = ?, completed = ?
			 WHERE profile_id = ? AND goal_id = ?`,
			current, done, profileID, goalID,
		); err != nil {
			return fmt.Errorf("updating goal %s: %w", goalID, err)
		}

		if done {
			return creditCoinsTx(tx, profileID, reward)
		}
		return nil
	})
}

// ResetDailyGoals rolls every goal whose last update is not today back to
// zero progress. Called at app start; same-day calls change nothing.
func (s *Store) ResetDailyGoals(profileID, today string) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			`UPDATE daily_goals SET current = 0, completed = 0, last_updated = ?
			 WHERE profile_id = ? AND last_updated <> ?`,
			today, profileID, today,
		); err != nil {
			return fmt.Errorf("resetting daily goals: %w", err)
		}
		return nil
	})
}

// ListAchievements returns the profile's achievements in seed order.
func (s *Store) ListAchievements(profileID string) ([]types.Achievement, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT achievement_id, profile_id, name, description, reward, unlocked
		 FROM achievements WHERE profile_id = ? ORDER BY achievement_id`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	defer rows.Close()

	out := []types.Achievement{}
	for rows.Next() {
		var a types.Achievement
		if err := rows.Scan(
			&a.AchievementID, &a.ProfileID, &a.Name, &a.Description,
			&a.Reward, &a.Unlocked,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UnlockAchievement flips the one-way unlocked flag and credits the
// reward, atomically. An already unlocked achievement is a no-op; the
// coins are credited exactly once.
func (s *Store) UnlockAchievement(profileID, achievementID string) error {
	return s.withTx(func(tx *sql.Tx) error {
		var (
			reward   int64
			unlocked bool
		)
		err := tx.QueryRow(
			`SELECT reward, unlocked FROM achievements
			 WHERE profile_id = ? AND achievement_id = ?`,
			profileID, achievementID,
		).Scan(&reward, &unlocked)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("reading achievement %s: %w", achievementID, err)
		}
		if unlocked {
			return nil
		}

		if _, err := tx.Exec(
			`UPDATE achievements SET unlocked = 1
			 WHERE profile_id = ? AND achievement_id = ?`,
			profileID, achievementID,
		); err != nil {
			return fmt.Errorf("unlocking achievement %s: %w", achievementID, err)
		}
		return creditCoinsTx(tx, profileID, reward)
	})
}

// This file implements the append-only usage telemetry consumed by the
// stats view and by goal-progress triggers.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/meumundo/simbolos/pkg/types"
)

// ItemCount is one row of the usage summary.
type ItemCount struct {
	ItemID string
	Count  int64
}

// RecordUsage appends one usage event.
func (s *Store) RecordUsage(profileID, eventType, itemID string) error {
	if profileID == "" {
		return types.ErrInvalidID
	}
	return s.withTx(func(tx *sql.Tx) error {
		return recordUsageTx(tx, profileID, eventType, itemID, time.Now())
	})
}

func recordUsageTx(tx *sql.Tx, profileID, eventType, itemID string, now time.Time) error {
	_, err := tx.Exec(
		`INSERT INTO usage_events (event_id, profile_id, event_type, item_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		newID(), profileID, eventType, itemID, formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("recording usage event: %w", err)
	}
	return nil
}

// UsageCounts summarizes events of one type for a profile, most used
// first.
func (s *Store) UsageCounts(profileID, eventType string) ([]ItemCount, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT item_id, COUNT(*) AS n FROM usage_events
		 WHERE profile_id = ? AND event_type = ?
		 GROUP BY item_id ORDER BY n DESC, item_id`,
		profileID, eventType,
	)
	if err != nil {
		return nil, fmt.Errorf("summarizing usage: %w", err)
	}
	defer rows.Close()

	out := []ItemCount{}
	for rows.Next() {
		var c ItemCount
		if err := rows.Scan(&c.ItemID, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

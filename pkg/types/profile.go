package types

import "time"

// Profile is one person using the device. Every category, symbol, phrase,
// setting, and gamification record is partitioned by the owning profile.
type Profile struct {
	ProfileID string    // UUID v7, generated on creation.
	Name      string    // Display name (required, non-empty).
	CreatedAt time.Time // Timestamp of creation.
}

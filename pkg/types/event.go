package types

import "time"

// Usage event types.
const (
	EventSymbolClick   = "symbol_click"
	EventPhraseCreated = "phrase_created"
)

// UsageEvent is an append-only telemetry record of symbol and phrase usage,
// consumed by the stats view and by goal-progress triggers.
type UsageEvent struct {
	EventID   string
	ProfileID string
	Type      string
	ItemID    string
	CreatedAt time.Time
}

package types

import "time"

// Symbol is one tappable cell on the board. When Image is nil the symbol
// renders as text.
type Symbol struct {
	SymbolID    string    `json:"-"`
	ProfileID   string    `json:"-"`
	CategoryKey string    `json:"categoryKey"`
	Text        string    `json:"text"`
	Image       []byte    `json:"image,omitempty"` // JSON-encodes as base64.
	Position    int64     `json:"order"`
	CreatedAt   time.Time `json:"-"`
}

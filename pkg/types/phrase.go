package types

import "time"

// Phrase is one composed utterance, logged append-only so it can be
// reloaded later. SymbolIDs are weak references: a symbol deleted after
// the phrase was saved is skipped on reload, never an error.
type Phrase struct {
	PhraseID  string
	ProfileID string
	Text      string
	SymbolIDs []string
	CreatedAt time.Time
}

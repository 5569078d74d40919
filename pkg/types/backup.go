package types

// Backup is the JSON document produced by export and consumed by import.
// Symbol images travel as base64 (Go's encoding/json for []byte). Import
// re-stamps every row with the importing profile's ID; any profile identity
// inside the file is discarded.
type Backup struct {
	ProfileName string     `json:"profileName"`
	Categories  []Category `json:"categories"`
	Symbols     []Symbol   `json:"symbols"`
}

// Validate checks the document shape. Both lists must be present (empty is
// fine, absent is not), every category needs a key and a name, and every
// symbol needs text and a category key that points into the document.
// Import replaces the whole board, so a key outside the document would
// leave a dangling symbol.
func (b *Backup) Validate() error {
	if b.Categories == nil || b.Symbols == nil {
		return ErrInvalidBackup
	}
	keys := make(map[string]bool, len(b.Categories))
	for _, c := range b.Categories {
		if c.Key == "" || c.Name == "" {
			return ErrInvalidBackup
		}
		keys[c.Key] = true
	}
	for _, s := range b.Symbols {
		if s.Text == "" || !keys[s.CategoryKey] {
			return ErrInvalidBackup
		}
	}
	return nil
}

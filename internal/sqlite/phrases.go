// This file implements the append-only phrase history. Symbol references
// inside a phrase are weak: reload filters out ids whose symbols have been
// deleted rather than failing.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/meumundo/simbolos/pkg/types"
)

// SavePhrase appends a composed phrase to the history and records a
// phrase_created usage event in the same transaction.
func (s *Store) SavePhrase(profileID, text string, symbolIDs []string) (*types.Phrase, error) {
	if profileID == "" {
		return nil, types.ErrInvalidID
	}
	if text == "" {
		return nil, types.ErrInvalidName
	}

	now := time.Now()
	p := &types.Phrase{
		PhraseID:  newID(),
		ProfileID: profileID,
		Text:      text,
		SymbolIDs: symbolIDs,
		CreatedAt: now,
	}

	ids, err := json.Marshal(p.SymbolIDs)
	if err != nil {
		return nil, fmt.Errorf("encoding symbol ids: %w", err)
	}

	err = s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			`INSERT INTO phrases (phrase_id, profile_id, text, symbol_ids, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			p.PhraseID, p.ProfileID, p.Text, string(ids), formatTime(now),
		); err != nil {
			return fmt.Errorf("inserting phrase: %w", err)
		}
		return recordUsageTx(tx, profileID, types.EventPhraseCreated, p.PhraseID, now)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// History returns the profile's phrases, most recent first.
func (s *Store) History(profileID string) ([]types.Phrase, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT phrase_id, profile_id, text, symbol_ids, created_at
		 FROM phrases WHERE profile_id = ?
		 ORDER BY created_at DESC, phrase_id DESC`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	out := []types.Phrase{}
	for rows.Next() {
		var p types.Phrase
		var ids, created string
		if err := rows.Scan(&p.PhraseID, &p.ProfileID, &p.Text, &ids, &created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(ids), &p.SymbolIDs); err != nil {
			return nil, fmt.Errorf("decoding symbol ids for phrase %s: %w", p.PhraseID, err)
		}
		p.CreatedAt = parseTime(created)
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeletePhrase removes one history entry.
func (s *Store) DeletePhrase(profileID, phraseID string) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`DELETE FROM phrases WHERE profile_id = ? AND phrase_id = ?`,
			profileID, phraseID,
		)
		if err != nil {
			return fmt.Errorf("deleting phrase: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return types.ErrNotFound
		}
		return nil
	})
}

// ResolvePhraseSymbols loads the symbols a phrase was built from, in
// phrase order, skipping ids whose symbols no longer exist.
func (s *Store) ResolvePhraseSymbols(profileID string, p *types.Phrase) ([]types.Symbol, error) {
	if len(p.SymbolIDs) == 0 {
		return []types.Symbol{}, nil
	}

	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(p.SymbolIDs)), ",")
	args := make([]any, 0, len(p.SymbolIDs)+1)
	args = append(args, profileID)
	for _, id := range p.SymbolIDs {
		args = append(args, id)
	}

	rows, err := db.Query(
		`SELECT symbol_id, profile_id, category_key, text, image, position, created_at
		 FROM symbols WHERE profile_id = ? AND symbol_id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("resolving phrase symbols: %w", err)
	}
	defer rows.Close()

	found, err := scanSymbols(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]types.Symbol, len(found))
	for _, sym := range found {
		byID[sym.SymbolID] = sym
	}

	out := []types.Symbol{}
	for _, id := range p.SymbolIDs {
		if sym, ok := byID[id]; ok {
			out = append(out, sym)
		}
	}
	return out, nil
}

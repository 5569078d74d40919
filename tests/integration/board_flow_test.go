package integration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meumundo/simbolos/pkg/types"
)

// TestBoardCompositionFlow walks a caregiver and child through a session:
// create a profile, grow the board, compose a phrase, then verify every
// piece of state survives a process restart.
func TestBoardCompositionFlow(t *testing.T) {
	s, path := openStore(t)
	p := mustProfile(t, s, "Ana")

	// The seeded board is ready immediately.
	cats, err := s.ListCategories(p.ProfileID)
	require.NoError(t, err)
	require.NotEmpty(t, cats)

	// Caregiver adds a symbol to the food category.
	suco, err := s.AddSymbol(p.ProfileID, "comida", "Suco", nil)
	require.NoError(t, err)

	syms, err := s.ListSymbols(p.ProfileID, "comida", "suco")
	require.NoError(t, err)
	require.Len(t, syms, 1)
	assert.Equal(t, suco.SymbolID, syms[0].SymbolID)

	// Child composes a phrase; each tap records usage and the phrase
	// advances the daily goals.
	today := time.Now().Format("2006-01-02")
	require.NoError(t, s.ResetDailyGoals(p.ProfileID, today))

	ph, err := s.SavePhrase(p.ProfileID, "Eu quero Suco", []string{suco.SymbolID})
	require.NoError(t, err)
	require.NoError(t, s.RecordUsage(p.ProfileID, types.EventSymbolClick, suco.SymbolID))
	require.NoError(t, s.IncrementGoal(p.ProfileID, "goal_phrases", 1))
	require.NoError(t, s.IncrementGoal(p.ProfileID, "goal_symbols", 1))

	// Restart: everything persisted.
	s = reopen(t, s, path)

	history, err := s.History(p.ProfileID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, ph.Text, history[0].Text)

	resolved, err := s.ResolvePhraseSymbols(p.ProfileID, &history[0])
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Suco", resolved[0].Text)

	goals, err := s.ListGoals(p.ProfileID)
	require.NoError(t, err)
	for _, g := range goals {
		if g.GoalID == "goal_phrases" {
			assert.Equal(t, int64(1), g.Current)
		}
	}

	counts, err := s.UsageCounts(p.ProfileID, types.EventSymbolClick)
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, suco.SymbolID, counts[0].ItemID)
}

// TestMultiProfileIsolation verifies that two children on the same device
// never see each other's boards or progress.
func TestMultiProfileIsolation(t *testing.T) {
	s, path := openStore(t)
	ana := mustProfile(t, s, "Ana")
	bia := mustProfile(t, s, "Bia")

	_, err := s.AddCategory(ana.ProfileID, "Esportes", "green")
	require.NoError(t, err)
	_, err = s.SavePhrase(ana.ProfileID, "Eu quero bola", nil)
	require.NoError(t, err)

	s = reopen(t, s, path)

	_, err = s.GetCategory(bia.ProfileID, "esportes")
	assert.ErrorIs(t, err, types.ErrNotFound)

	history, err := s.History(bia.ProfileID)
	require.NoError(t, err)
	assert.Empty(t, history)

	// Deleting Ana takes her data and nothing of Bia's.
	require.NoError(t, s.DeleteProfile(ana.ProfileID))
	_, err = s.GetProfile(ana.ProfileID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	biaCats, err := s.ListCategories(bia.ProfileID)
	require.NoError(t, err)
	assert.NotEmpty(t, biaCats)
}

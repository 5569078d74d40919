package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meumundo/simbolos/pkg/types"
)

func TestUsageCounts(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	for i := 0; i < 3; i++ {
		require.NoError(t, s.RecordUsage(p.ProfileID, types.EventSymbolClick, "sym-a"))
	}
	require.NoError(t, s.RecordUsage(p.ProfileID, types.EventSymbolClick, "sym-b"))
	require.NoError(t, s.RecordUsage(p.ProfileID, types.EventPhraseCreated, "phrase-x"))

	counts, err := s.UsageCounts(p.ProfileID, types.EventSymbolClick)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, ItemCount{ItemID: "sym-a", Count: 3}, counts[0])
	assert.Equal(t, ItemCount{ItemID: "sym-b", Count: 1}, counts[1])

	counts, err = s.UsageCounts(p.ProfileID, "unknown_event")
	require.NoError(t, err)
	assert.Empty(t, counts)

	assert.ErrorIs(t, s.RecordUsage("", types.EventSymbolClick, "x"), types.ErrInvalidID)
}

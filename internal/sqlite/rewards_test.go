package sqlite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meumundo/simbolos/pkg/types"
)

func rewardByID(t *testing.T, s *Store, profileID, rewardID string) types.Reward {
	t.Helper()
	rewards, err := s.ListRewards(profileID)
	require.NoError(t, err)
	for _, r := range rewards {
		if r.RewardID == rewardID {
			return r
		}
	}
	t.Fatalf("reward %s not found", rewardID)
	return types.Reward{}
}

func TestPurchaseReward(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	// Fund the profile past the pack's cost.
	require.NoError(t, s.withTx(func(tx *sql.Tx) error {
		return creditCoinsTx(tx, p.ProfileID, 100)
	}))
	before, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)

	require.NoError(t, s.PurchaseReward(p.ProfileID, "pack_animals"))

	r := rewardByID(t, s, p.ProfileID, "pack_animals")
	assert.True(t, r.Purchased)

	after, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, before-r.Cost, after)

	// The pack's category and symbols are installed.
	_, err = s.GetCategory(p.ProfileID, "animais")
	require.NoError(t, err)
	syms, err := s.ListSymbols(p.ProfileID, "animais", "")
	require.NoError(t, err)
	assert.Len(t, syms, PackSize("pack_animals"))
}

func TestPurchaseRewardInsufficientFunds(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	// Starting coins cannot cover pack_animals.
	err := s.PurchaseReward(p.ProfileID, "pack_animals")
	assert.ErrorIs(t, err, types.ErrInsufficientFunds)

	// Nothing moved.
	total, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, int64(startingCoins), total)
	assert.False(t, rewardByID(t, s, p.ProfileID, "pack_animals").Purchased)
	_, err = s.GetCategory(p.ProfileID, "animais")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPurchaseRewardTwice(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	// pack_weather costs exactly the starting balance.
	require.NoError(t, s.PurchaseReward(p.ProfileID, "pack_weather"))

	err := s.PurchaseReward(p.ProfileID, "pack_weather")
	assert.ErrorIs(t, err, types.ErrForbidden)

	total, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)
	assert.Zero(t, total)

	syms, err := s.ListSymbols(p.ProfileID, "clima", "")
	require.NoError(t, err)
	assert.Len(t, syms, PackSize("pack_weather"))
}

func TestPurchaseRewardUnknown(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	err := s.PurchaseReward(p.ProfileID, "pack_inexistente")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPurchasedPackSortsAfterBoard(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	require.NoError(t, s.PurchaseReward(p.ProfileID, "pack_weather"))

	syms, err := s.ListSymbols(p.ProfileID, "clima", "")
	require.NoError(t, err)
	require.NotEmpty(t, syms)
	for i, sym := range syms {
		assert.Equal(t, rewardPacks["pack_weather"].base+int64(i), sym.Position)
	}
}

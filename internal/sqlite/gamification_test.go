package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meumundo/simbolos/pkg/types"
)

func goalByID(t *testing.T, s *Store, profileID, goalID string) types.DailyGoal {
	t.Helper()
	goals, err := s.ListGoals(profileID)
	require.NoError(t, err)
	for _, g := range goals {
		if g.GoalID == goalID {
			return g
		}
	}
	t.Fatalf("goal %s not found", goalID)
	return types.DailyGoal{}
}

func TestIncrementGoal(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	require.NoError(t, s.IncrementGoal(p.ProfileID, "goal_phrases", 1))
	g := goalByID(t, s, p.ProfileID, "goal_phrases")
	assert.Equal(t, int64(1), g.Current)
	assert.False(t, g.Completed)

	// Crossing the target clamps and pays the reward.
	require.NoError(t, s.IncrementGoal(p.ProfileID, "goal_phrases", 5))
	g = goalByID(t, s, p.ProfileID, "goal_phrases")
	assert.Equal(t, g.Target, g.Current)
	assert.True(t, g.Completed)

	total, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, int64(startingCoins)+g.Reward, total)
}

func TestIncrementGoalCompletedIsFrozen(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	require.NoError(t, s.IncrementGoal(p.ProfileID, "goal_categories", 10))
	before, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)

	// Further progress on a completed goal changes nothing and never
	// pays twice.
	require.NoError(t, s.IncrementGoal(p.ProfileID, "goal_categories", 10))
	after, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	g := goalByID(t, s, p.ProfileID, "goal_categories")
	assert.Equal(t, g.Target, g.Current)
}

func TestIncrementGoalEdgeCases(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	// Non-positive amounts are ignored.
	require.NoError(t, s.IncrementGoal(p.ProfileID, "goal_phrases", 0))
	require.NoError(t, s.IncrementGoal(p.ProfileID, "goal_phrases", -3))
	g := goalByID(t, s, p.ProfileID, "goal_phrases")
	assert.Zero(t, g.Current)

	err := s.IncrementGoal(p.ProfileID, "goal_inexistente", 1)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestResetDailyGoals(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	require.NoError(t, s.IncrementGoal(p.ProfileID, "goal_phrases", 2))

	// Same-day reset changes nothing.
	today := goalByID(t, s, p.ProfileID, "goal_phrases").LastUpdated
	require.NoError(t, s.ResetDailyGoals(p.ProfileID, today))
	assert.Equal(t, int64(2), goalByID(t, s, p.ProfileID, "goal_phrases").Current)

	// A new day rolls progress back but keeps earned coins.
	balance, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)
	require.NoError(t, s.ResetDailyGoals(p.ProfileID, "2099-01-01"))
	g := goalByID(t, s, p.ProfileID, "goal_phrases")
	assert.Zero(t, g.Current)
	assert.False(t, g.Completed)
	assert.Equal(t, "2099-01-01", g.LastUpdated)

	after, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, balance, after)
}

func TestUnlockAchievement(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")

	require.NoError(t, s.UnlockAchievement(p.ProfileID, "achievement_first_phrase"))

	achievements, err := s.ListAchievements(p.ProfileID)
	require.NoError(t, err)
	var unlocked *types.Achievement
	for i := range achievements {
		if achievements[i].AchievementID == "achievement_first_phrase" {
			unlocked = &achievements[i]
		}
	}
	require.NotNil(t, unlocked)
	assert.True(t, unlocked.Unlocked)

	total, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, int64(startingCoins)+unlocked.Reward, total)

	// Unlocking again is a no-op; the reward stays single-paid.
	require.NoError(t, s.UnlockAchievement(p.ProfileID, "achievement_first_phrase"))
	again, err := s.CoinBalance(p.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, total, again)

	err = s.UnlockAchievement(p.ProfileID, "achievement_inexistente")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestCoinBalanceUnseededProfile(t *testing.T) {
	s := newTestStore(t)

	total, err := s.CoinBalance("nobody")
	require.NoError(t, err)
	assert.Zero(t, total)
}

package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meumundo/simbolos/pkg/types"
)

func TestCreateProfile(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreateProfile("Ana")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ProfileID)
	assert.Equal(t, "Ana", p.Name)

	got, err := s.GetProfile(p.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, p.ProfileID, got.ProfileID)

	_, err = s.CreateProfile("")
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestListProfiles(t *testing.T) {
	s := newTestStore(t)

	profiles, err := s.ListProfiles()
	require.NoError(t, err)
	assert.Empty(t, profiles)

	a := newTestProfile(t, s, "Ana")
	b := newTestProfile(t, s, "Bia")

	profiles, err = s.ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, a.ProfileID, profiles[0].ProfileID)
	assert.Equal(t, b.ProfileID, profiles[1].ProfileID)
}

func TestDeleteProfileCascades(t *testing.T) {
	s := newTestStore(t)
	p := newTestProfile(t, s, "Ana")
	q := newTestProfile(t, s, "Bia")

	_, err := s.SavePhrase(p.ProfileID, "Eu quero água", nil)
	require.NoError(t, err)

	require.NoError(t, s.DeleteProfile(p.ProfileID))

	_, err = s.GetProfile(p.ProfileID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Every partitioned table is swept.
	for _, table := range []string{
		"categories", "symbols", "phrases", "user_settings", "coins",
		"daily_goals", "achievements", "rewards", "usage_events", "seed_marks",
	} {
		var n int
		err := s.db.QueryRow(
			`SELECT COUNT(*) FROM `+table+` WHERE profile_id = ?`, p.ProfileID,
		).Scan(&n)
		require.NoError(t, err)
		assert.Zero(t, n, "orphan rows in %s", table)
	}

	// The other profile is untouched.
	cats, err := s.ListCategories(q.ProfileID)
	require.NoError(t, err)
	assert.Len(t, cats, len(defaultBoard))

	assert.ErrorIs(t, s.DeleteProfile(p.ProfileID), types.ErrNotFound)
}

func TestPINValidation(t *testing.T) {
	s := newTestStore(t)

	ok, err := s.VerifyPIN("0000")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, s.SetPIN("123"), types.ErrInvalidPIN)
	assert.ErrorIs(t, s.SetPIN("12a4"), types.ErrInvalidPIN)

	require.NoError(t, s.SetPIN("246810"))
	ok, err = s.VerifyPIN("246810")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.VerifyPIN(defaultPIN)
	require.NoError(t, err)
	assert.False(t, ok)
}

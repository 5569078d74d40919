// Package integration exercises the store end to end against a real
// database file, including close/reopen persistence.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meumundo/simbolos/internal/sqlite"
	"github.com/meumundo/simbolos/pkg/types"
)

// openStore opens a store on a fresh database file in an isolated temp
// directory. Returns the store and the database path so tests can reopen
// the same file.
func openStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simbolos.db")
	s, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

// reopen closes the store and opens the same database file again.
func reopen(t *testing.T, s *sqlite.Store, path string) *sqlite.Store {
	t.Helper()
	require.NoError(t, s.Close())
	s2, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })
	return s2
}

// mustProfile creates a seeded profile.
func mustProfile(t *testing.T, s *sqlite.Store, name string) *types.Profile {
	t.Helper()
	p, err := s.CreateProfile(name)
	require.NoError(t, err)
	return p
}

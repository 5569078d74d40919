// Unit tests for store lifecycle and schema migration.
package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meumundo/simbolos/pkg/types"
)

// newTestStore opens an in-memory store and registers cleanup.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// newTestProfile creates a seeded profile for tests.
func newTestProfile(t *testing.T, s *Store, name string) *types.Profile {
	t.Helper()
	p, err := s.CreateProfile(name)
	require.NoError(t, err)
	return p
}

func TestOpenCreatesSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simbolos.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.currentVersion()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, v)
}

func TestReopenIsNoOp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simbolos.db")

	s, err := Open(path)
	require.NoError(t, err)
	p := newTestProfile(t, s, "Ana")
	require.NoError(t, s.Close())

	// Re-running open against a database already at the target version
	// must not change anything.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, err := s2.currentVersion()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, v)

	got, err := s2.GetProfile(p.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
}

func TestOpenRefusesNewerDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "simbolos.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec(`UPDATE schema_meta SET version = ? WHERE id = 1`, schemaVersion+10)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	assert.ErrorIs(t, err, types.ErrMigrationFailed)
}

func TestOperationsAfterClose(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.ListProfiles()
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	_, err = s.CreateProfile("Ana")
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	// Close is idempotent.
	assert.NoError(t, s.Close())
}

func TestMigrationLadderIsComplete(t *testing.T) {
	for v := 1; v <= schemaVersion; v++ {
		assert.Contains(t, migrations, v, "missing migration for version %d", v)
	}
}

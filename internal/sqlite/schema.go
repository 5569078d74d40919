package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/meumundo/simbolos/pkg/types"
)

// schemaVersion is the version the migration ladder converges to.
const schemaVersion = 3

// createSchemaMeta tracks the on-disk schema version. Created outside the
// ladder so version 0 databases can be detected.
const createSchemaMeta = `CREATE TABLE IF NOT EXISTS schema_meta (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    version INTEGER NOT NULL
);`

// migrations maps version N to the statements taking the schema from N-1
// to N. Each step runs in its own transaction together with the version
// bump, so a failed step leaves the database at the previous version.
var migrations = map[int][]string{
	1: {
		`CREATE TABLE profiles (
    profile_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL
);`,
		`CREATE TABLE categories (
    category_id TEXT PRIMARY KEY,
    profile_id TEXT NOT NULL,
    key TEXT NOT NULL,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL,
    UNIQUE (profile_id, key)
);`,
		`CREATE TABLE symbols (
    symbol_id TEXT PRIMARY KEY,
    profile_id TEXT NOT NULL,
    category_key TEXT NOT NULL,
    text TEXT NOT NULL,
    position INTEGER NOT NULL,
    created_at TEXT NOT NULL
);`,
		`CREATE INDEX idx_symbols_profile_category ON symbols(profile_id, category_key);`,
		`CREATE TABLE user_settings (
    profile_id TEXT PRIMARY KEY,
    voice_type TEXT NOT NULL,
    voice_speed REAL NOT NULL,
    large_icons INTEGER NOT NULL,
    use_audio_feedback INTEGER NOT NULL,
    theme TEXT NOT NULL,
    language TEXT NOT NULL,
    onboarding_completed INTEGER NOT NULL DEFAULT 0
);`,
		`CREATE TABLE phrases (
    phrase_id TEXT PRIMARY KEY,
    profile_id TEXT NOT NULL,
    text TEXT NOT NULL,
    symbol_ids TEXT NOT NULL,
    created_at TEXT NOT NULL
);`,
		`CREATE INDEX idx_phrases_profile_created ON phrases(profile_id, created_at);`,
		`CREATE TABLE coins (
    profile_id TEXT PRIMARY KEY,
    total INTEGER NOT NULL CHECK (total >= 0)
);`,
		`CREATE TABLE daily_goals (
    goal_id TEXT NOT NULL,
    profile_id TEXT NOT NULL,
    name TEXT NOT NULL,
    target INTEGER NOT NULL,
    current INTEGER NOT NULL DEFAULT 0,
    reward INTEGER NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0,
    last_updated TEXT NOT NULL,
    PRIMARY KEY (profile_id, goal_id)
);`,
		`CREATE TABLE achievements (
    achievement_id TEXT NOT NULL,
    profile_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    reward INTEGER NOT NULL,
    unlocked INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (profile_id, achievement_id)
);`,
		`CREATE TABLE rewards (
    reward_id TEXT NOT NULL,
    profile_id TEXT NOT NULL,
    name TEXT NOT NULL,
    cost INTEGER NOT NULL,
    purchased INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (profile_id, reward_id)
);`,
		`CREATE TABLE usage_events (
    event_id TEXT PRIMARY KEY,
    profile_id TEXT NOT NULL,
    event_type TEXT NOT NULL,
    item_id TEXT NOT NULL,
    created_at TEXT NOT NULL
);`,
		`CREATE INDEX idx_events_profile_created ON usage_events(profile_id, created_at);`,
		`CREATE TABLE security (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    pin TEXT NOT NULL
);`,
		`CREATE TABLE seed_marks (
    profile_id TEXT NOT NULL,
    scope TEXT NOT NULL,
    PRIMARY KEY (profile_id, scope)
);`,
	},
	2: {
		`ALTER TABLE categories ADD COLUMN color TEXT NOT NULL DEFAULT 'slate';`,
	},
	3: {
		`ALTER TABLE symbols ADD COLUMN image BLOB;`,
	},
}

// migrate brings the database to schemaVersion, applying each pending step
// in order. Re-running against a database already at the target version is
// a no-op. A failed step returns ErrMigrationFailed; the version on disk
// stays at the last step that committed.
func (s *Store) migrate() error {
	if _, err := s.db.Exec(createSchemaMeta); err != nil {
		return fmt.Errorf("%w: creating schema_meta: %v", types.ErrMigrationFailed, err)
	}

	current, err := s.currentVersion()
	if err != nil {
		return err
	}
	if current > schemaVersion {
		// Never silently downgrade a newer database.
		return fmt.Errorf("%w: database version %d is newer than supported %d",
			types.ErrMigrationFailed, current, schemaVersion)
	}

	for v := current + 1; v <= schemaVersion; v++ {
		steps, ok := migrations[v]
		if !ok {
			return fmt.Errorf("%w: no migration registered for version %d", types.ErrMigrationFailed, v)
		}
		if err := s.applyVersion(v, steps); err != nil {
			return err
		}
	}
	return nil
}

// currentVersion reads the on-disk schema version; 0 for a fresh database.
func (s *Store) currentVersion() (int, error) {
	var v int
	err := s.db.QueryRow(`SELECT version FROM schema_meta WHERE id = 1`).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: reading schema version: %v", types.ErrMigrationFailed, err)
	}
	return v, nil
}

// applyVersion runs one ladder step and the version bump atomically.
func (s *Store) applyVersion(version int, steps []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning migration %d: %v", types.ErrMigrationFailed, version, err)
	}
	defer tx.Rollback()

	for _, stmt := range steps {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("%w: migration %d: %v", types.ErrMigrationFailed, version, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO schema_meta (id, version) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET version = excluded.version`, version,
	); err != nil {
		return fmt.Errorf("%w: recording version %d: %v", types.ErrMigrationFailed, version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing migration %d: %v", types.ErrMigrationFailed, version, err)
	}
	return nil
}

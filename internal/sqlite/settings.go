// This file implements per-profile settings. A missing row resolves to
// defaults rather than an error; OnboardingCompleted only ever moves
// false to true.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/meumundo/simbolos/pkg/types"
)

// Settings returns the profile's settings, or defaults when no row exists
// yet. The read side never errors on absence.
func (s *Store) Settings(profileID string) (types.UserSettings, error) {
	db, err := s.conn()
	if err != nil {
		return types.UserSettings{}, err
	}

	var st types.UserSettings
	err = db.QueryRow(
		`SELECT profile_id, voice_type, voice_speed, large_icons,
		        use_audio_feedback, theme, language, onboarding_completed
		 FROM user_settings WHERE profile_id = ?`,
		profileID,
	).Scan(
		&st.ProfileID, &st.VoiceType, &st.VoiceSpeed, &st.LargeIcons,
		&st.UseAudioFeedback, &st.Theme, &st.Language, &st.OnboardingCompleted,
	)
	if err == sql.ErrNoRows {
		return types.DefaultSettings(profileID), nil
	}
	if err != nil {
		return types.UserSettings{}, fmt.Errorf("getting settings: %w", err)
	}
	return st, nil
}

// SaveSettings upserts the profile's settings. The onboarding flag is
// sticky: once true on disk it stays true regardless of the value passed.
func (s *Store) SaveSettings(st types.UserSettings) error {
	if st.ProfileID == "" {
		return types.ErrInvalidID
	}
	return s.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			`INSERT INTO user_settings
			   (profile_id, voice_type, voice_speed, large_icons,
			    use_audio_feedback, theme, language, onboarding_completed)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(profile_id) DO UPDATE SET
			   voice_type = excluded.voice_type,
			   voice_speed = excluded.voice_speed,
			   large_icons = excluded.large_icons,
			   use_audio_feedback = excluded.use_audio_feedback,
			   theme = excluded.theme,
			   language = excluded.language,
			   onboarding_completed = user_settings.onboarding_completed OR excluded.onboarding_completed`,
			st.ProfileID, st.VoiceType, st.VoiceSpeed, st.LargeIcons,
			st.UseAudioFeedback, st.Theme, st.Language, st.OnboardingCompleted,
		)
		if err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		return nil
	})
}

// CompleteOnboarding flips the one-way onboarding flag. Calling it again
// is a no-op.
func (s *Store) CompleteOnboarding(profileID string) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`UPDATE user_settings SET onboarding_completed = 1 WHERE profile_id = ?`,
			profileID,
		)
		if err != nil {
			return fmt.Errorf("completing onboarding: %w", err)
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

// insertDefaultSettingsTx writes the default settings row for a profile
// being created.
func insertDefaultSettingsTx(tx *sql.Tx, profileID string) error {
	st := types.DefaultSettings(profileID)
	_, err := tx.Exec(
		`INSERT INTO user_settings
		   (profile_id, voice_type, voice_speed, large_icons,
		    use_audio_feedback, theme, language, onboarding_completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 0)`,
		st.ProfileID, st.VoiceType, st.VoiceSpeed, st.LargeIcons,
		st.UseAudioFeedback, st.Theme, st.Language,
	)
	if err != nil {
		return fmt.Errorf("inserting default settings: %w", err)
	}
	return nil
}

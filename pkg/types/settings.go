package types

// Voice types accepted by the speech collaborator.
const (
	VoiceFeminine  = "feminina"
	VoiceMasculine = "masculina"
	VoiceChild     = "infantil"
)

// UserSettings holds per-profile preferences. One row per profile, created
// with defaults when the profile is seeded. OnboardingCompleted flips to
// true exactly once and never reverts.
type UserSettings struct {
	ProfileID           string
	VoiceType           string
	VoiceSpeed          float64
	LargeIcons          bool
	UseAudioFeedback    bool
	Theme               string
	Language            string
	OnboardingCompleted bool
}

// DefaultSettings returns the settings a freshly seeded profile starts with.
func DefaultSettings(profileID string) UserSettings {
	return UserSettings{
		ProfileID:        profileID,
		VoiceType:        VoiceFeminine,
		VoiceSpeed:       1.0,
		LargeIcons:       false,
		UseAudioFeedback: true,
		Theme:            "padrao",
		Language:         "pt-BR",
	}
}

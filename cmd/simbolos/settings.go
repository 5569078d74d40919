// Settings commands: show, set, onboard.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/meumundo/simbolos/pkg/types"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the active profile's settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		st, err := store.Settings(profileID)
		if err != nil {
			fail(err)
		}
		fmt.Printf("voice:      %s (%.1fx)\n", st.VoiceType, st.VoiceSpeed)
		fmt.Printf("language:   %s\n", st.Language)
		fmt.Printf("theme:      %s\n", st.Theme)
		fmt.Printf("large icons: %v\n", st.LargeIcons)
		fmt.Printf("audio feedback: %v\n", st.UseAudioFeedback)
		fmt.Printf("onboarded:  %v\n", st.OnboardingCompleted)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one setting",
	Long: `Set one setting. Keys: voice (feminina|masculina|infantil),
speed (0.5-2.0), language, theme, large-icons (true|false),
audio-feedback (true|false).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		st, err := store.Settings(profileID)
		if err != nil {
			fail(err)
		}

		key, value := args[0], args[1]
		switch key {
		case "voice":
			switch value {
			case types.VoiceFeminine, types.VoiceMasculine, types.VoiceChild:
				st.VoiceType = value
			default:
				return fmt.Errorf("invalid voice %q", value)
			}
		case "speed":
			speed, err := strconv.ParseFloat(value, 64)
			if err != nil || speed < 0.5 || speed > 2.0 {
				return fmt.Errorf("invalid speed %q (0.5-2.0)", value)
			}
			st.VoiceSpeed = speed
		case "language":
			st.Language = value
		case "theme":
			st.Theme = value
		case "large-icons":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean %q", value)
			}
			st.LargeIcons = b
		case "audio-feedback":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean %q", value)
			}
			st.UseAudioFeedback = b
		default:
			return fmt.Errorf("unknown setting %q", key)
		}

		if err := store.SaveSettings(st); err != nil {
			fail(err)
		}
		fmt.Printf("set %s = %s\n", key, value)
		return nil
	},
}

var settingsOnboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Mark onboarding as completed (one-way)",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		if err := store.CompleteOnboarding(profileID); err != nil {
			fail(err)
		}
		fmt.Println("onboarding completed")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsOnboardCmd)
}

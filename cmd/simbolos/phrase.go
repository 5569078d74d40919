// Phrase commands: speak and history. Speaking a phrase appends it to the
// history, records symbol usage, and advances the daily goals that usage
// satisfies. Audio output itself belongs to the platform TTS engine; the
// CLI prints what would be spoken, parameterized by the profile's voice
// settings.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/meumundo/simbolos/pkg/types"
)

var flagSpeakSymbols []string

var speakCmd = &cobra.Command{
	Use:   "speak <word>...",
	Short: "Compose a phrase, save it to history, and speak it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}

		text := strings.Join(args, " ")
		phrase, err := store.SavePhrase(profileID, text, flagSpeakSymbols)
		if err != nil {
			fail(err)
		}

		for _, id := range flagSpeakSymbols {
			if err := store.RecordUsage(profileID, types.EventSymbolClick, id); err != nil {
				fail(err)
			}
		}

		// Advance daily goals earned by this phrase.
		today := time.Now().Format("2006-01-02")
		if err := store.ResetDailyGoals(profileID, today); err != nil {
			fail(err)
		}
		if err := store.IncrementGoal(profileID, "goal_phrases", 1); err != nil && err != types.ErrNotFound {
			fail(err)
		}
		if n := int64(len(flagSpeakSymbols)); n > 0 {
			if err := store.IncrementGoal(profileID, "goal_symbols", n); err != nil && err != types.ErrNotFound {
				fail(err)
			}
		}

		st, err := store.Settings(profileID)
		if err != nil {
			fail(err)
		}
		fmt.Printf("[%s %s %.1fx] %s\n", st.Language, st.VoiceType, st.VoiceSpeed, phrase.Text)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the phrase history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List phrases, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		phrases, err := store.History(profileID)
		if err != nil {
			fail(err)
		}
		for _, p := range phrases {
			fmt.Printf("%s  %s  %s\n", p.PhraseID, p.CreatedAt.Local().Format("2006-01-02 15:04"), p.Text)
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <phrase-id>",
	Short: "Delete one phrase from the history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		if err := store.DeletePhrase(profileID, args[0]); err != nil {
			fail(err)
		}
		fmt.Println("deleted phrase", args[0])
		return nil
	},
}

func init() {
	speakCmd.Flags().StringSliceVar(&flagSpeakSymbols, "symbols", nil, "symbol IDs the phrase was built from")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}

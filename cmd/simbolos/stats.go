// Stats command: usage summary from the telemetry log.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meumundo/simbolos/pkg/types"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show symbol and phrase usage for the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}

		clicks, err := store.UsageCounts(profileID, types.EventSymbolClick)
		if err != nil {
			fail(err)
		}
		phrases, err := store.UsageCounts(profileID, types.EventPhraseCreated)
		if err != nil {
			fail(err)
		}

		var phraseTotal int64
		for _, c := range phrases {
			phraseTotal += c.Count
		}
		fmt.Printf("phrases created: %d\n", phraseTotal)

		fmt.Println("symbol clicks:")
		for _, c := range clicks {
			fmt.Printf("  %-40s %d\n", c.ItemID, c.Count)
		}
		return nil
	},
}

// Init and version commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meumundo/simbolos/internal/sqlite"
)

// Version is the CLI version, overridable at build time with -ldflags.
var Version = "0.1.0"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the store and create the first profile",
	Long: `Init opens (creating if needed) the database and, with --name,
creates a first profile seeded with the default board:
` + strings.Join(sqlite.DefaultCategoryKeys(), ", ") + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("store ready at", store.Path())

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return nil
		}
		p, err := store.CreateProfile(name)
		if err != nil {
			fail(err)
		}
		if err := saveConfigValue(cfgKeyActiveProfile, p.ProfileID); err != nil {
			fail(err)
		}
		fmt.Printf("created profile %s (%s) and set it active\n", p.Name, p.ProfileID)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("simbolos", Version)
	},
}

func init() {
	initCmd.Flags().String("name", "", "create a first profile with this name")
}

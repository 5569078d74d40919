// Backup commands: export and import of a profile's board.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagImportYes bool

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import a profile's board",
}

var backupExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the profile's categories and symbols to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		data, err := store.ExportBackup(profileID)
		if err != nil {
			fail(err)
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			fail(fmt.Errorf("writing backup file: %w", err))
		}
		fmt.Println("exported backup to", args[0])
		return nil
	},
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the profile's board with a backup file",
	Long: `Import replaces the profile's categories and symbols with the file's
contents. This is destructive, not a merge: everything on the board that
is not in the file is deleted. Requires --yes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagImportYes {
			return fmt.Errorf("import replaces the whole board; confirm with --yes")
		}
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			fail(fmt.Errorf("reading backup file: %w", err))
		}
		if err := store.ImportBackup(profileID, data); err != nil {
			fail(err)
		}
		fmt.Println("imported backup from", args[0])
		return nil
	},
}

func init() {
	backupImportCmd.Flags().BoolVar(&flagImportYes, "yes", false, "confirm the destructive replace")
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)
}

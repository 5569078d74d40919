// Root command for the simbolos CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meumundo/simbolos/internal/paths"
	"github.com/meumundo/simbolos/internal/sqlite"
)

// Exit codes: 1 for user errors, 2 for system failures such as an
// unavailable store.
const (
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagProfile   string
)

// store is opened by PersistentPreRunE for every command that needs it.
var store *sqlite.Store

// configDataDir and configProfile hold values loaded from config.yaml.
var (
	configDataDir string
	configProfile string
)

var rootCmd = &cobra.Command{
	Use:          "simbolos",
	Short:        "Simbolos is a local-first AAC symbol board",
	Long:         "Simbolos manages communication profiles, symbol boards, phrase\nhistory, and rewards in an embedded local database. Nothing leaves\nthe device.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configProfile = cfg.GetString(cfgKeyActiveProfile)

		dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
		if err != nil {
			return err
		}
		s, err := sqlite.Open(paths.DatabasePath(dataDir))
		if err != nil {
			// Startup without persistent storage is fatal, never silent.
			fmt.Fprintln(os.Stderr, "cannot open store:", err)
			os.Exit(exitSysError)
		}
		store = s
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "profile ID (default: active profile from config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(symbolCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(statsCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the configuration directory from flag, env, or
// platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

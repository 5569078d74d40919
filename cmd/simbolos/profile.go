// Profile commands: create, list, use, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage communication profiles",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a profile and seed its default board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.CreateProfile(args[0])
		if err != nil {
			fail(err)
		}
		fmt.Printf("created profile %s (%s)\n", p.Name, p.ProfileID)
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := store.ListProfiles()
		if err != nil {
			fail(err)
		}
		active, _ := activeProfileID()
		for _, p := range profiles {
			marker := " "
			if p.ProfileID == active {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, p.ProfileID, p.Name)
		}
		return nil
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <profile-id>",
	Short: "Set the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := store.GetProfile(args[0]); err != nil {
			fail(err)
		}
		if err := saveConfigValue(cfgKeyActiveProfile, args[0]); err != nil {
			fail(err)
		}
		fmt.Println("active profile set to", args[0])
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <profile-id>",
	Short: "Delete a profile and everything it owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteProfile(args[0]); err != nil {
			fail(err)
		}
		fmt.Println("deleted profile", args[0])
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

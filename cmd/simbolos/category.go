// Category commands: list, add, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagCategoryColor string

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage board categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active profile's categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		cats, err := store.ListCategories(profileID)
		if err != nil {
			fail(err)
		}
		for _, c := range cats {
			fmt.Printf("%-16s %-24s %s\n", c.Key, c.Name, c.Color)
		}
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category (key derived from the name)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		c, err := store.AddCategory(profileID, args[0], flagCategoryColor)
		if err != nil {
			fail(err)
		}
		fmt.Printf("added category %s (key %s, color %s)\n", c.Name, c.Key, c.Color)
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a category and all of its symbols",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		if err := store.DeleteCategory(profileID, args[0]); err != nil {
			fail(err)
		}
		fmt.Println("deleted category", args[0])
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVar(&flagCategoryColor, "color", "", "category color (default slate)")
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}

// Symbol commands: list, add, reorder, rename, delete.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSymbolSearch string
	flagSymbolImage  string
	flagSymbolQuick  bool
)

var symbolCmd = &cobra.Command{
	Use:   "symbol",
	Short: "Manage board symbols",
}

var symbolListCmd = &cobra.Command{
	Use:   "list <category-key>",
	Short: "List symbols in a category, in board order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		syms, err := store.ListSymbols(profileID, args[0], flagSymbolSearch)
		if err != nil {
			fail(err)
		}
		for _, sym := range syms {
			kind := "text"
			if len(sym.Image) > 0 {
				kind = "image"
			}
			fmt.Printf("%s  %-24s %6d  %s\n", sym.SymbolID, sym.Text, sym.Position, kind)
		}
		return nil
	},
}

var symbolAddCmd = &cobra.Command{
	Use:   "add <category-key> <text>",
	Short: "Add a symbol at the end of a category",
	Long: `Add a symbol at the end of a category. With --image the file's
bytes are stored and the symbol renders as a picture. With --quick the
category argument is ignored and the symbol lands in the general
category with a timestamp position, the way ad-hoc words from phrase
building do.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}

		if flagSymbolQuick {
			sym, err := store.AddQuickSymbol(profileID, args[1])
			if err != nil {
				fail(err)
			}
			fmt.Printf("added quick symbol %s (%s)\n", sym.Text, sym.SymbolID)
			return nil
		}

		var image []byte
		if flagSymbolImage != "" {
			image, err = os.ReadFile(flagSymbolImage)
			if err != nil {
				fail(fmt.Errorf("reading image: %w", err))
			}
		}

		sym, err := store.AddSymbol(profileID, args[0], args[1], image)
		if err != nil {
			fail(err)
		}
		fmt.Printf("added symbol %s (%s)\n", sym.Text, sym.SymbolID)
		return nil
	},
}

var symbolReorderCmd = &cobra.Command{
	Use:   "reorder <category-key> <symbol-id>...",
	Short: "Reorder a category's symbols to the given sequence",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		if err := store.ReorderSymbols(profileID, args[0], args[1:]); err != nil {
			fail(err)
		}
		fmt.Println("reordered", len(args)-1, "symbols")
		return nil
	},
}

var symbolRenameCmd = &cobra.Command{
	Use:   "rename <symbol-id> <text>",
	Short: "Rename a symbol",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		if err := store.UpdateSymbolText(profileID, args[0], args[1]); err != nil {
			fail(err)
		}
		fmt.Println("renamed symbol", args[0])
		return nil
	},
}

var symbolDeleteCmd = &cobra.Command{
	Use:   "delete <symbol-id>",
	Short: "Delete one symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		if err := store.DeleteSymbol(profileID, args[0]); err != nil {
			fail(err)
		}
		fmt.Println("deleted symbol", args[0])
		return nil
	},
}

func init() {
	symbolListCmd.Flags().StringVar(&flagSymbolSearch, "search", "", "filter by case-insensitive substring")
	symbolAddCmd.Flags().StringVar(&flagSymbolImage, "image", "", "path to an image file for the symbol")
	symbolAddCmd.Flags().BoolVar(&flagSymbolQuick, "quick", false, "add to the general category with a timestamp position")

	symbolCmd.AddCommand(symbolListCmd)
	symbolCmd.AddCommand(symbolAddCmd)
	symbolCmd.AddCommand(symbolReorderCmd)
	symbolCmd.AddCommand(symbolRenameCmd)
	symbolCmd.AddCommand(symbolDeleteCmd)
}

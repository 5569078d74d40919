// PIN commands for the caregiver gate.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Manage the caregiver PIN",
}

var pinSetCmd = &cobra.Command{
	Use:   "set <new-pin>",
	Short: "Change the caregiver PIN (digits, 4 or more)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.SetPIN(args[0]); err != nil {
			fail(err)
		}
		fmt.Println("PIN updated")
		return nil
	},
}

var pinCheckCmd = &cobra.Command{
	Use:   "check <pin>",
	Short: "Verify a PIN against the stored one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok, err := store.VerifyPIN(args[0])
		if err != nil {
			fail(err)
		}
		if !ok {
			return fmt.Errorf("PIN does not match")
		}
		fmt.Println("PIN ok")
		return nil
	},
}

func init() {
	pinCmd.AddCommand(pinSetCmd)
	pinCmd.AddCommand(pinCheckCmd)
}

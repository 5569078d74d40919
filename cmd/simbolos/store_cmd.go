// Store commands: the coin shop for symbol packs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Browse and buy symbol packs",
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rewards and the coin balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		rewards, err := store.ListRewards(profileID)
		if err != nil {
			fail(err)
		}
		for _, r := range rewards {
			fmt.Printf("[%s] %-16s %-16s %d moedas\n",
				boolMark(r.Purchased), r.RewardID, r.Name, r.Cost)
		}
		balance, err := store.CoinBalance(profileID)
		if err != nil {
			fail(err)
		}
		fmt.Printf("saldo: %d moedas\n", balance)
		return nil
	},
}

var storeBuyCmd = &cobra.Command{
	Use:   "buy <reward-id>",
	Short: "Buy a reward pack with coins",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		if err := store.PurchaseReward(profileID, args[0]); err != nil {
			fail(err)
		}
		balance, err := store.CoinBalance(profileID)
		if err != nil {
			fail(err)
		}
		fmt.Printf("purchased %s; saldo %d moedas\n", args[0], balance)
		return nil
	},
}

func init() {
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeBuyCmd)
}

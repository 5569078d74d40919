// Gamification commands: goals, achievements, and the coin balance.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage daily goals",
}

var goalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active profile's daily goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		goals, err := store.ListGoals(profileID)
		if err != nil {
			fail(err)
		}
		for _, g := range goals {
			fmt.Printf("[%s] %-24s %d/%d (+%d moedas)\n",
				boolMark(g.Completed), g.Name, g.Current, g.Target, g.Reward)
		}
		balance, err := store.CoinBalance(profileID)
		if err != nil {
			fail(err)
		}
		fmt.Printf("saldo: %d moedas\n", balance)
		return nil
	},
}

var goalsBumpCmd = &cobra.Command{
	Use:   "bump <goal-id> [amount]",
	Short: "Advance a goal; completing it credits its reward",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		amount := int64(1)
		if len(args) == 2 {
			amount, err = strconv.ParseInt(args[1], 10, 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("invalid amount %q", args[1])
			}
		}
		if err := store.IncrementGoal(profileID, args[0], amount); err != nil {
			fail(err)
		}
		fmt.Println("advanced goal", args[0])
		return nil
	},
}

var goalsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Roll goals over to a new day",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		today := time.Now().Format("2006-01-02")
		if err := store.ResetDailyGoals(profileID, today); err != nil {
			fail(err)
		}
		fmt.Println("daily goals reset for", today)
		return nil
	},
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Manage achievements",
}

var achievementsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active profile's achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		achievements, err := store.ListAchievements(profileID)
		if err != nil {
			fail(err)
		}
		for _, a := range achievements {
			fmt.Printf("[%s] %-24s %s (+%d moedas)\n",
				boolMark(a.Unlocked), a.Name, a.Description, a.Reward)
		}
		return nil
	},
}

var achievementsUnlockCmd = &cobra.Command{
	Use:   "unlock <achievement-id>",
	Short: "Unlock an achievement and credit its reward",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileID, err := activeProfileID()
		if err != nil {
			fail(err)
		}
		if err := store.UnlockAchievement(profileID, args[0]); err != nil {
			fail(err)
		}
		fmt.Println("unlocked", args[0])
		return nil
	},
}

func init() {
	goalsCmd.AddCommand(goalsListCmd)
	goalsCmd.AddCommand(goalsBumpCmd)
	goalsCmd.AddCommand(goalsResetCmd)
	achievementsCmd.AddCommand(achievementsListCmd)
	achievementsCmd.AddCommand(achievementsUnlockCmd)
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-spellbook/internal/orchestrators/dice"
)

var (
	rollEntityID    string
	rollContext     string
	rollDescription string
)

var diceCmd = &cobra.Command{
	Use:   "dice",
	Short: "Roll numbered dice without the server",
}

var rollCmd = &cobra.Command{
	Use:   "roll [notation]",
	Short: "Roll dice such as 8d6 or 1d20+5",
	Long: `Roll dice and append the result to the roll session of an entity and
context. Examples:

  dice roll 8d6 --entity fireball --context damage
  dice roll 1d20+7 --entity fire-bolt --context attack`,
	Args: cobra.ExactArgs(1),
	RunE: rollDice,
}

func init() {
	rollCmd.Flags().StringVar(&rollEntityID, "entity", "spellbook", "Entity that owns the roll session")
	rollCmd.Flags().StringVar(&rollContext, "context", "roll", "Roll session context")
	rollCmd.Flags().StringVar(&rollDescription, "description", "", "Description stored with the roll")

	diceCmd.AddCommand(rollCmd)
}

func rollDice(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newDiceService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.RollDice(context.Background(), &dice.RollDiceInput{
		EntityID:    rollEntityID,
		Context:     rollContext,
		Notation:    args[0],
		Description: rollDescription,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	roll := out.Roll
	dieStrs := make([]string, len(roll.Dice))
	for i, d := range roll.Dice {
		dieStrs[i] = fmt.Sprintf("%d", d)
	}

	fmt.Fprintf(w, "%s: [%s]", roll.Notation, strings.Join(dieStrs, ", "))
	if roll.Modifier != 0 {
		fmt.Fprintf(w, " %+d", roll.Modifier)
	}
	fmt.Fprintf(w, " = %d\n", roll.Total)
	fmt.Fprintf(w, "Session %s/%s holds %d rolls, expires %s\n",
		out.Session.EntityID, out.Session.Context, len(out.Session.Rolls), out.Session.ExpiresAt.Format("15:04:05"))
	return nil
}

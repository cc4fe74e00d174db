package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"

	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
)

var rollDescription string

var rollDiceCmd = &cobra.Command{
	Use:   "roll-dice [notation] [entity-id] [context]",
	Short: "Roll dice using dice notation",
	Long: `Roll dice and see individual results. Examples:

  roll-dice 8d6 fireball damage
  roll-dice 1d20+7 fire-bolt attack
  roll-dice 3d4+3 magic-missile damage --description "three darts"`,
	Args: cobra.ExactArgs(3),
	RunE: rollDice,
}

func init() {
	rollDiceCmd.Flags().StringVar(&rollDescription, "description", "", "Description stored with the roll")
}

func rollDice(cmd *cobra.Command, args []string) error {
	notation := args[0]
	entityID := args[1]
	rollContext := args[2]

	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Fprintf(cmd.OutOrStdout(), "Rolling %s for %s (context: %s)...\n", notation, entityID, rollContext)

	resp, err := client.RollDice(ctx, &apiv1alpha1.RollDiceRequest{
		EntityId:            entityID,
		Context:             rollContext,
		Notation:            notation,
		ModifierDescription: rollDescription,
	})
	if err != nil {
		return errors.Wrap(errors.FromGRPCError(err), "failed to roll dice")
	}

	printRolls(cmd, resp.GetRolls())

	fmt.Fprintf(cmd.OutOrStdout(), "\nSession expires at: %s\n", time.Unix(resp.GetExpiresAt(), 0).Format(time.DateTime))
	fmt.Fprintf(cmd.OutOrStdout(), "Total rolls in session: %d\n", len(resp.GetRolls()))

	return nil
}

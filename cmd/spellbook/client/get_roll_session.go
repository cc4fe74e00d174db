package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"

	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
)

var getRollSessionCmd = &cobra.Command{
	Use:   "get-roll-session [entity-id] [context]",
	Short: "Get an existing dice roll session",
	Long: `Retrieve all dice rolls for an entity and context. Example:

  get-roll-session fireball damage`,
	Args: cobra.ExactArgs(2),
	RunE: getRollSession,
}

var clearRollSessionCmd = &cobra.Command{
	Use:   "clear-roll-session [entity-id] [context]",
	Short: "Clear a dice roll session",
	Args:  cobra.ExactArgs(2),
	RunE:  clearRollSession,
}

func getRollSession(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetRollSession(ctx, &apiv1alpha1.GetRollSessionRequest{
		EntityId: args[0],
		Context:  args[1],
	})
	if err != nil {
		return errors.Wrap(errors.FromGRPCError(err), "failed to get roll session")
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Roll session %s/%s\n", args[0], args[1])
	fmt.Fprintf(w, "Created: %s\n", time.Unix(resp.GetCreatedAt(), 0).Format(time.DateTime))
	fmt.Fprintf(w, "Expires: %s\n", time.Unix(resp.GetExpiresAt(), 0).Format(time.DateTime))
	fmt.Fprintf(w, "Total Rolls: %d\n", len(resp.GetRolls()))

	printRolls(cmd, resp.GetRolls())
	return nil
}

func clearRollSession(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createDiceClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ClearRollSession(ctx, &apiv1alpha1.ClearRollSessionRequest{
		EntityId: args[0],
		Context:  args[1],
	})
	if err != nil {
		return errors.Wrap(errors.FromGRPCError(err), "failed to clear roll session")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d rolls)\n", resp.GetMessage(), resp.GetRollsCleared())
	return nil
}

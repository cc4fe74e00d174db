// Package client provides commands that call a running spellbook gRPC server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call the spellbook gRPC server",
	Long:  `Client commands make real gRPC requests against a running spellbook server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(rollDiceCmd)
	ClientCmd.AddCommand(getRollSessionCmd)
	ClientCmd.AddCommand(clearRollSessionCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createDiceClient creates a dice service client
func createDiceClient() (apiv1alpha1.DiceServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := apiv1alpha1.NewDiceServiceClient(conn)
	return client, cleanup, nil
}

func printRolls(cmd *cobra.Command, rolls []*apiv1alpha1.DiceRoll) {
	w := cmd.OutOrStdout()
	for i, roll := range rolls {
		fmt.Fprintf(w, "\nRoll %d:\n", i+1)
		fmt.Fprintf(w, "  Roll ID: %s\n", roll.GetRollId())
		fmt.Fprintf(w, "  Notation: %s\n", roll.GetNotation())
		fmt.Fprintf(w, "  Individual Dice: %v\n", roll.GetDice())
		if roll.GetModifier() != 0 {
			fmt.Fprintf(w, "  Modifier: %+d\n", roll.GetModifier())
		}
		fmt.Fprintf(w, "  Total: %d\n", roll.GetTotal())
		if len(roll.GetDropped()) > 0 {
			fmt.Fprintf(w, "  Dropped: %v\n", roll.GetDropped())
		}
		if roll.GetDescription() != "" {
			fmt.Fprintf(w, "  Description: %s\n", roll.GetDescription())
		}
	}
}

// Package main is the entry point for the spellbook CLI and gRPC server
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-spellbook/cmd/spellbook/client"
	"github.com/KirkDiggler/rpg-spellbook/internal/config"
)

var (
	configFile string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "spellbook",
	Short: "Spell reference grid and dice roller",
	Long: `Spellbook browses D&D 5e spells in a filterable, sortable grid, saves
filter views, and rolls numbered dice locally or over gRPC.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(spellsCmd)
	rootCmd.AddCommand(viewsCmd)
	rootCmd.AddCommand(diceCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// flagBindings maps command line flags to the config keys they override
var flagBindings = map[string]string{
	"log-level": "log.level",
	"port":      "server.port",
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	for name, key := range flagBindings {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
	}

	loaded, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	level, err := loaded.Log.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg = loaded
	return nil
}

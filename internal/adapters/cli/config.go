package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/zodiakos-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage Zodiakos configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (ZK_* prefix)
2. Config file (config.yaml)
3. Default values

Example:
  zodiakos config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			fmt.Println("Simulation:")
			fmt.Printf("  Tick rate:           %.1f/s\n", cfg.Simulation.TickRate)
			fmt.Printf("  Collection interval: %.1fs\n", cfg.Simulation.CollectionInterval)
			fmt.Printf("  Galaxy size:         %d stars\n", cfg.Simulation.GalaxySize)
			fmt.Printf("  Seed:                %d\n", cfg.Simulation.Seed)

			fmt.Println("Database:")
			fmt.Printf("  Type: %s\n", cfg.Database.Type)
			if cfg.Database.Type == "sqlite" {
				fmt.Printf("  Path: %s\n", cfg.Database.Path)
			} else {
				fmt.Printf("  Host: %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Printf("  Name: %s\n", cfg.Database.Name)
			}

			fmt.Println("Metrics:")
			fmt.Printf("  Enabled: %v\n", cfg.Metrics.Enabled)
			if cfg.Metrics.Enabled {
				fmt.Printf("  Endpoint: http://%s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
			}

			fmt.Println("Logging:")
			fmt.Printf("  Level:  %s\n", cfg.Logging.Level)
			fmt.Printf("  Format: %s\n", cfg.Logging.Format)
			fmt.Printf("  Output: %s\n", cfg.Logging.Output)

			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/application/setup"
	"github.com/andrescamacho/zodiakos-go/internal/application/simulation/queries"
	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/economy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
)

// NewGalaxyCommand creates the galaxy command with subcommands
func NewGalaxyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "galaxy",
		Short: "Inspect galaxy generation",
	}

	cmd.AddCommand(newGalaxyPreviewCommand())

	return cmd
}

// newGalaxyPreviewCommand creates the galaxy preview subcommand
func newGalaxyPreviewCommand() *cobra.Command {
	var (
		stars int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Generate a galaxy and print it without running the simulation",
		Long: `Generate a galaxy and print every star without running the simulation.

Useful for checking what a seed produces before starting a run.

Example:
  zodiakos galaxy preview --stars 30 --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			store := galaxy.NewStore()
			generator := galaxy.NewGenerator(seed)
			homeID := generator.Generate(store, stars)

			med := common.NewMediator()
			registry := setup.NewHandlerRegistry(store, economy.NewStartingPool(), constellation.NewTracker())
			if err := registry.RegisterAll(med); err != nil {
				return err
			}

			response, err := med.Send(context.Background(), &queries.ListStarsQuery{})
			if err != nil {
				return err
			}
			listing := response.(*queries.ListStarsResponse)

			fmt.Printf("Galaxy seed %d (%d stars, home #%d)\n\n", seed, len(listing.Stars), homeID)
			for _, star := range listing.Stars {
				marker := " "
				if star.Home {
					marker = "*"
				}
				fmt.Printf("%s #%-3d %-28s (%7.1f, %7.1f) rate %.2f  %s\n",
					marker, star.ID, star.Name, star.X, star.Y, star.ProductionRate,
					formatAmounts(star.Capacities))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&stars, "stars", 30, "Number of stars to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Generation seed (0 = random)")

	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/zodiakos-go/internal/adapters/metrics"
	"github.com/andrescamacho/zodiakos-go/internal/adapters/persistence"
	"github.com/andrescamacho/zodiakos-go/internal/application/common"
	"github.com/andrescamacho/zodiakos-go/internal/application/setup"
	"github.com/andrescamacho/zodiakos-go/internal/application/simulation"
	"github.com/andrescamacho/zodiakos-go/internal/application/simulation/commands"
	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/economy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
	"github.com/andrescamacho/zodiakos-go/internal/infrastructure/config"
	"github.com/andrescamacho/zodiakos-go/internal/infrastructure/database"
	"github.com/andrescamacho/zodiakos-go/internal/infrastructure/pidfile"
)

const statusInterval = 10 * time.Second

// NewRunCommand creates the run command that starts the simulation daemon
func NewRunCommand() *cobra.Command {
	var (
		stars     int
		seed      int64
		tickRate  float64
		bootstrap int
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a galaxy and run the simulation until interrupted",
		Long: `Generate a galaxy and run the simulation loop until interrupted.

Each tick advances build timers, fires collection routes, and registers
newly formed constellations. Events are written to the configured database
and, when enabled, exposed as Prometheus metrics.

Examples:
  zodiakos run
  zodiakos run --stars 80 --seed 42 --tick-rate 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			// Flag overrides
			if stars > 0 {
				cfg.Simulation.GalaxySize = stars
			}
			if seed != 0 {
				cfg.Simulation.Seed = seed
			}
			if tickRate > 0 {
				cfg.Simulation.TickRate = tickRate
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}

			// Single-instance enforcement
			pf := pidfile.New(cfg.Simulation.PIDFile)
			if err := pf.Acquire(); err != nil {
				if !force {
					return fmt.Errorf("%w\nUse --force to kill the existing daemon", err)
				}
				if killErr := pf.KillExisting(); killErr != nil {
					return fmt.Errorf("failed to kill existing daemon: %w", killErr)
				}
				if err := pf.Acquire(); err != nil {
					return err
				}
			}
			defer pf.Release()

			return runSimulation(cfg, bootstrap)
		},
	}

	cmd.Flags().IntVar(&stars, "stars", 0, "Number of stars to generate (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Galaxy generation seed (overrides config)")
	cmd.Flags().Float64Var(&tickRate, "tick-rate", 0, "Ticks per second (overrides config)")
	cmd.Flags().IntVar(&bootstrap, "bootstrap", 3, "Connect the home star to its N nearest stars at startup")
	cmd.Flags().BoolVar(&force, "force", false, "Kill any existing daemon and start a new one")

	return cmd
}

func runSimulation(cfg *config.Config, bootstrap int) error {
	logger, err := NewConsoleLogger(&cfg.Logging)
	if err != nil {
		return err
	}

	// Database and event ledger
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	ledger := persistence.NewGormEventLedger(db, nil) // nil = use RealClock in production

	// Galaxy generation
	genSeed := cfg.Simulation.Seed
	if genSeed == 0 {
		genSeed = time.Now().UnixNano()
	}
	store := galaxy.NewStoreWithInterval(cfg.Simulation.CollectionInterval)
	generator := galaxy.NewGenerator(genSeed)
	homeID := generator.Generate(store, cfg.Simulation.GalaxySize)

	pool := economy.NewStartingPool()
	tracker := constellation.NewTracker()

	logger.Log("info", "Galaxy generated", map[string]interface{}{
		"stars":   store.StarCount(),
		"home_id": homeID,
		"seed":    genSeed,
	})

	// Metrics
	recorder := economy.MultiRecorder{ledger}
	var observer simulation.Observer
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		simCollector := metrics.NewSimulationMetricsCollector(func() metrics.GraphStats {
			colonized := 0
			for _, star := range store.Stars() {
				if star.IsColonized() {
					colonized++
				}
			}
			return metrics.GraphStats{
				Stars:          store.StarCount(),
				Colonized:      colonized,
				Connections:    len(store.Connections()),
				Constellations: tracker.Count(),
			}
		})
		if err := simCollector.Register(); err != nil {
			return fmt.Errorf("failed to register simulation metrics: %w", err)
		}
		recorder = append(recorder, simCollector)
		observer = simCollector

		addr := fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port)
		go serveMetrics(addr, cfg.Metrics.Path, logger)
		logger.Log("info", "Metrics server listening", map[string]interface{}{
			"addr": addr,
			"path": cfg.Metrics.Path,
		})
	}

	sim := simulation.NewSimulator(store, pool, tracker, recorder, observer)

	// Mediator and handlers
	med := common.NewMediator()
	registry := setup.NewHandlerRegistry(store, pool, tracker)
	if err := registry.RegisterAll(med); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	if cfg.Metrics.Enabled {
		commandCollector := metrics.NewCommandMetricsCollector()
		if err := commandCollector.Register(); err != nil {
			return fmt.Errorf("failed to register command metrics: %w", err)
		}
		med.Use(metrics.PrometheusMiddleware(commandCollector))
	}

	ctx, stop := signal.NotifyContext(common.WithLogger(context.Background(), logger), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if bootstrap > 0 {
		if err := bootstrapConnections(ctx, med, store, homeID, bootstrap); err != nil {
			return err
		}
	}

	// Tick loop paced at the configured rate; each tick gets the measured
	// wall-clock delta rather than the nominal interval.
	limiter := rate.NewLimiter(rate.Limit(cfg.Simulation.TickRate), 1)
	last := time.Now()
	nextStatus := last.Add(statusInterval)

	logger.Log("info", "Simulation running", map[string]interface{}{
		"tick_rate": cfg.Simulation.TickRate,
	})

	for {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		now := time.Now()
		sim.Tick(now.Sub(last).Seconds())
		last = now

		if now.After(nextStatus) {
			nextStatus = now.Add(statusInterval)
			logger.Log("info", "Status", map[string]interface{}{
				"ticks":          sim.TickCount(),
				"elapsed":        fmt.Sprintf("%.1fs", sim.Elapsed()),
				"pool":           formatAmounts(pool.Snapshot()),
				"constellations": tracker.Count(),
			})
		}
	}

	logger.Log("info", "Simulation stopped", map[string]interface{}{
		"ticks":   sim.TickCount(),
		"elapsed": fmt.Sprintf("%.1fs", sim.Elapsed()),
	})
	return nil
}

// bootstrapConnections links the home star to its nearest neighbors so a
// fresh galaxy starts collecting immediately.
func bootstrapConnections(ctx context.Context, med common.Mediator, store *galaxy.Store, homeID, count int) error {
	home, err := store.Star(homeID)
	if err != nil {
		return err
	}
	hx, hy := home.Position()

	type candidate struct {
		id       int
		distance float64
	}
	candidates := make([]candidate, 0, store.StarCount())
	for _, star := range store.Stars() {
		if star.ID() == homeID {
			continue
		}
		x, y := star.Position()
		candidates = append(candidates, candidate{
			id:       star.ID(),
			distance: math.Hypot(x-hx, y-hy),
		})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].distance < candidates[j].distance })

	if count > len(candidates) {
		count = len(candidates)
	}
	for _, c := range candidates[:count] {
		_, err := med.Send(ctx, &commands.RequestConnectionCommand{From: homeID, To: c.id})
		if err != nil {
			var limitErr *shared.ConnectionLimitError
			if errors.As(err, &limitErr) {
				// Home star is at its connection limit; stop early.
				break
			}
			return fmt.Errorf("failed to bootstrap connection to star %d: %w", c.id, err)
		}
	}
	return nil
}

func serveMetrics(addr, path string, logger common.SimulationLogger) {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Log("error", "Metrics server failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

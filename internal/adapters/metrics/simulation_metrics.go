package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/zodiakos-go/internal/domain/constellation"
	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
	"github.com/andrescamacho/zodiakos-go/internal/domain/shared"
)

// GraphStats is a point-in-time summary of the simulation graph, supplied
// by the host so the collector never reaches into live state itself.
type GraphStats struct {
	Stars          int
	Colonized      int
	Connections    int
	Constellations int
}

// SimulationMetricsCollector handles all simulation metrics. It implements
// economy.EventRecorder for event counters and updates graph gauges after
// every tick.
type SimulationMetricsCollector struct {
	getStats func() GraphStats

	// Event counters
	resourcesCollected  *prometheus.CounterVec
	unitsProduced       *prometheus.CounterVec
	constellationsTotal prometheus.Counter

	// Tick metrics
	ticksTotal prometheus.Counter
	tickDelta  prometheus.Histogram

	// Graph gauges
	starsTotal          prometheus.Gauge
	starsColonized      prometheus.Gauge
	connectionsActive   prometheus.Gauge
	constellationsGauge prometheus.Gauge
}

// NewSimulationMetricsCollector creates a new simulation metrics collector
func NewSimulationMetricsCollector(getStats func() GraphStats) *SimulationMetricsCollector {
	return &SimulationMetricsCollector{
		getStats: getStats,

		resourcesCollected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "resources_collected_total",
				Help:      "Total resources deposited into the player pool by kind",
			},
			[]string{"resource"},
		),

		unitsProduced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "units_produced_total",
				Help:      "Total specialized units produced by kind",
			},
			[]string{"unit", "star_id"},
		),

		constellationsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "constellations_formed_total",
				Help:      "Total constellations formed since startup",
			},
		),

		ticksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ticks_total",
				Help:      "Total simulation ticks processed",
			},
		),

		tickDelta: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tick_delta_seconds",
				Help:      "Wall-clock delta fed into each tick",
				Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
			},
		),

		starsTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "stars_total",
				Help:      "Number of stars in the galaxy",
			},
		),

		starsColonized: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "stars_colonized",
				Help:      "Number of colonized stars",
			},
		),

		connectionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "connections_active",
				Help:      "Number of active connections",
			},
		),

		constellationsGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "constellations_active",
				Help:      "Number of registered constellations",
			},
		),
	}
}

// Register registers all simulation metrics with the Prometheus registry
func (c *SimulationMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	collectors := []prometheus.Collector{
		c.resourcesCollected,
		c.unitsProduced,
		c.constellationsTotal,
		c.ticksTotal,
		c.tickDelta,
		c.starsTotal,
		c.starsColonized,
		c.connectionsActive,
		c.constellationsGauge,
	}

	for _, collector := range collectors {
		if err := Registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// RecordCollection increments the collected counter for a resource kind
func (c *SimulationMetricsCollector) RecordCollection(starID int, kind shared.ResourceKind, amount float64) {
	c.resourcesCollected.WithLabelValues(string(kind)).Add(amount)
}

// RecordProduction increments the produced counter for a unit kind
func (c *SimulationMetricsCollector) RecordProduction(starID int, unit galaxy.Unit) {
	c.unitsProduced.WithLabelValues(string(unit.Kind), strconv.Itoa(starID)).Add(float64(unit.Count))
}

// RecordConstellation increments the constellation formation counter
func (c *SimulationMetricsCollector) RecordConstellation(constellationID int, members []int) {
	c.constellationsTotal.Inc()
}

// TickCompleted records tick metrics and refreshes graph gauges
func (c *SimulationMetricsCollector) TickCompleted(delta float64) {
	c.ticksTotal.Inc()
	c.tickDelta.Observe(delta)

	if c.getStats == nil {
		return
	}
	stats := c.getStats()
	c.starsTotal.Set(float64(stats.Stars))
	c.starsColonized.Set(float64(stats.Colonized))
	c.connectionsActive.Set(float64(stats.Connections))
	c.constellationsGauge.Set(float64(stats.Constellations))
}

// ConstellationFormed satisfies the simulation observer interface; the
// counter is already driven through RecordConstellation.
func (c *SimulationMetricsCollector) ConstellationFormed(constellation.Constellation) {}

package config

// SimulationConfig holds simulation engine configuration
type SimulationConfig struct {
	// Ticks per second. The daemon paces the tick loop at this rate;
	// each tick receives the measured wall-clock delta.
	TickRate float64 `mapstructure:"tick_rate" validate:"required,gt=0,max=240"`

	// Seconds between resource collections on each connection
	CollectionInterval float64 `mapstructure:"collection_interval" validate:"required,gt=0"`

	// Number of stars to generate (home star included)
	GalaxySize int `mapstructure:"galaxy_size" validate:"required,min=1,max=500"`

	// Seed for deterministic galaxy generation (0 = time-based)
	Seed int64 `mapstructure:"seed"`

	// PID file location for single-instance enforcement
	PIDFile string `mapstructure:"pid_file"`
}

package config

// MetricsConfig controls the Prometheus endpoint. When Enabled the daemon
// registers the simulation collectors and serves them over HTTP at
// Host:Port Path; when disabled no registry is created at all.
type MetricsConfig struct {
	// Enabled turns metrics collection and the HTTP endpoint on
	Enabled bool `mapstructure:"enabled"`

	// Port for the metrics HTTP server
	Port int `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Host to bind the metrics HTTP server; localhost by default
	Host string `mapstructure:"host"`

	// Path of the scrape endpoint, /metrics by default
	Path string `mapstructure:"path"`
}

package config

// LoggingConfig holds console logger configuration. Output "file" appends
// to FilePath; the daemon writes to exactly one destination, so there is no
// rotation or multi-sink support here.
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Log format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// Output destination: stdout, stderr, file
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	// Destination path when Output is "file"
	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`
}

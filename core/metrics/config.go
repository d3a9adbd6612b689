package metrics

// Config holds configuration for in-process metrics.
type Config struct {
	// Enabled turns instrumentation on.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Namespace prefixes every metric name.
	Namespace string `mapstructure:"namespace" default:"inventory"`
}

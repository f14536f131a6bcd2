package configs

// Metrics toggles Prometheus instrumentation.
type Metrics struct {
	// Enabled mounts /metrics and records API client metrics.
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

package configs

import "time"

// HTTP configures the console's own web server.
type HTTP struct {
	// Port is the TCP port to listen on.
	Port uint16 `env:"PORT" envDefault:"8081"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

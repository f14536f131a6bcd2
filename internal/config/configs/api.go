package configs

import (
	"net/url"
	"time"
)

// API configures the client of the remote marketplace API.
type API struct {
	// BaseURL is prefixed to every endpoint path. A trailing slash is
	// ignored.
	BaseURL url.URL `env:"BASE_URL" envDefault:"http://localhost:8080"`
	// Timeout bounds each request. Zero disables the limit.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

package configs

import "time"

// Console tunes per-browser sessions and interactive behaviour.
type Console struct {
	// KeywordDebounce is how long the keyword query must stay unchanged
	// before the dictionary is searched.
	KeywordDebounce time.Duration `env:"KEYWORD_DEBOUNCE" envDefault:"300ms"`
	// SessionTTL expires idle browser sessions.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	// CookieName names the session cookie.
	CookieName string `env:"COOKIE_NAME" envDefault:"emerald_session"`
	// CookieSecure marks the session cookie Secure; enable behind TLS.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`
	// SeedDemo creates demo data through the API on startup when the remote
	// has no sellers.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}

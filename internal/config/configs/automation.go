package configs

import "time"

// Automation configures the process-wide scheduler and the click-limit
// cache. Thresholds live in the settings table so operators can change them
// at runtime.
type Automation struct {
	// TickInterval is the period of the scheduler.
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1m"`
	// Concurrency caps the campaigns evaluated in parallel on a tick.
	Concurrency int `env:"CONCURRENCY" envDefault:"8"`
	// EvaluationTimeout bounds a single campaign evaluation.
	EvaluationTimeout time.Duration `env:"EVALUATION_TIMEOUT" envDefault:"2m"`
	// CacheTTL bounds the staleness of the click-limit cache. A negative
	// value disables caching.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s"`
}

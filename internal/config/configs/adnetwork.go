package configs

import "time"

// AdNetwork configures the client of the external ad network API.
type AdNetwork struct {
	BaseURL      string `env:"BASE_URL" envDefault:"https://api.adnetwork.example/v1"`
	TokenURL     string `env:"TOKEN_URL" envDefault:"https://api.adnetwork.example/oauth/token"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RefreshToken string `env:"REFRESH_TOKEN"`

	// Timeout bounds every single attempt. A timed out attempt is retried.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries uint64 `env:"MAX_RETRIES" envDefault:"3"`
	// InitialBackoff is the first retry delay; later delays grow
	// exponentially.
	InitialBackoff time.Duration `env:"INITIAL_BACKOFF" envDefault:"500ms"`
	// RateLimit is the sustained number of calls per second and RateBurst
	// the bucket size.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"5"`
	RateBurst int     `env:"RATE_BURST" envDefault:"5"`
}

package module

import (
	"time"

	"commitkings/internal/platform/config"
)

// Options captures deck tuning and the GitHub client settings
type Options struct {
	QueueSize     int
	LowWater      int
	Staleness     time.Duration
	Cooldown      time.Duration
	PrefetchDelay time.Duration

	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	TokensCSV  string
	MaxRetries int
	RetryBase  time.Duration
	MaxRPS     int
}

// FromConfig reads with DECK_ and GITHUB_ prefixes
func FromConfig(cfg config.Conf) Options {
	d := cfg.Prefix("DECK_")
	g := cfg.Prefix("GITHUB_")
	return Options{
		QueueSize:     d.MayInt("QUEUE_SIZE", 3),
		LowWater:      d.MayInt("PREFETCH_LOW_WATER", 5),
		Staleness:     d.MayDuration("CACHE_STALENESS", time.Hour),
		Cooldown:      d.MayDuration("RATE_LIMIT_COOLDOWN", 15*time.Minute),
		PrefetchDelay: d.MayDuration("PREFETCH_DELAY", 2*time.Second),

		BaseURL:    g.MayString("BASE_URL", "https://api.github.com"),
		UserAgent:  g.MayString("USER_AGENT", "CommitKings"),
		Timeout:    g.MayDuration("TIMEOUT", 30*time.Second),
		TokensCSV:  g.MayString("TOKENS", ""),
		MaxRetries: g.MayInt("MAX_RETRIES", 3),
		RetryBase:  g.MayDuration("RETRY_BASE", 500*time.Millisecond),
		MaxRPS:     g.MayInt("MAX_RPS", 5),
	}
}

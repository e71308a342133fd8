package config

import "time"

// RetryConfig holds default knobs for asyncx retry helpers.
type RetryConfig struct {
	// Attempts is the default number of tries.
	Attempts int `yaml:"attempts"`

	// InitialDelay seeds the exponential backoff.
	InitialDelay Duration `yaml:"initial_delay"`

	// Backoff toggles exponential backoff; when false, retries are immediate.
	Backoff bool `yaml:"backoff"`
}

func defaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts:     3,
		InitialDelay: Duration(100 * time.Millisecond),
		Backoff:      true,
	}
}

func (c *RetryConfig) applyEnv() {
	c.Attempts = getEnvInt("RETRY_ATTEMPTS", c.Attempts)
	c.InitialDelay = Duration(getEnvDuration("RETRY_INITIAL_DELAY", c.InitialDelay.Std()))
	c.Backoff = getEnvBool("RETRY_BACKOFF", c.Backoff)
}

package config

import "time"

// CachexConfig configures the loading TTL cache.
type CachexConfig struct {
	// TTL is how long a loaded entry stays live.
	TTL Duration `yaml:"ttl"`

	// Capacity caps the number of live entries; 0 means unbounded.
	Capacity uint64 `yaml:"capacity"`
}

func defaultCachexConfig() CachexConfig {
	return CachexConfig{
		TTL:      Duration(5 * time.Minute),
		Capacity: 0,
	}
}

func (c *CachexConfig) applyEnv() {
	c.TTL = Duration(getEnvDuration("CACHEX_TTL", c.TTL.Std()))
	c.Capacity = getEnvUint64("CACHEX_CAPACITY", c.Capacity)
}

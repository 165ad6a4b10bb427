package redis

import (
	"fmt"
	"time"
)

// Pool holds the connection pool settings. Zero durations keep the go-redis defaults.
type Pool struct {
	MinIdleConns int
	MaxIdleConns int
	MaxActive    int
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

// Config represents Redis configuration options
type Config struct {
	Host     string
	Port     int
	Password string
	Database int
	Pool
	// CacheTTLs overrides the TTL of named caches
	CacheTTLs map[string]time.Duration
}

// NewRedisConfig creates a configuration for a local server with default pool settings
func NewRedisConfig() *Config {
	return &Config{
		Host: "localhost",
		Port: 6379,
		Pool: Pool{
			MinIdleConns: 5,
			MaxIdleConns: 10,
			MaxActive:    100,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolTimeout:  4 * time.Second,
		},
		CacheTTLs: make(map[string]time.Duration),
	}
}

func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

// WithPool replaces the pool settings
func (c *Config) WithPool(pool Pool) *Config {
	c.Pool = pool
	return c
}

// WithCacheTTL sets the TTL for a specific cache name
func (c *Config) WithCacheTTL(cacheName string, ttl time.Duration) *Config {
	if c.CacheTTLs == nil {
		c.CacheTTLs = make(map[string]time.Duration)
	}
	c.CacheTTLs[cacheName] = ttl
	return c
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d, must be between 1 and 65535", c.Port)
	}
	if c.Database < 0 || c.Database > 15 {
		return fmt.Errorf("invalid database: %d, must be between 0 and 15", c.Database)
	}

	counts := []struct {
		name  string
		value int
	}{
		{"min idle connections", c.MinIdleConns},
		{"max idle connections", c.MaxIdleConns},
		{"max active connections", c.MaxActive},
		{"max retries", c.MaxRetries},
	}
	for _, count := range counts {
		if count.value < 0 {
			return fmt.Errorf("invalid %s: %d, must be non-negative", count.name, count.value)
		}
	}

	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"dial timeout", c.DialTimeout},
		{"read timeout", c.ReadTimeout},
		{"write timeout", c.WriteTimeout},
		{"pool timeout", c.PoolTimeout},
	}
	for _, timeout := range timeouts {
		if timeout.value < 0 {
			return fmt.Errorf("invalid %s: %v, must be non-negative", timeout.name, timeout.value)
		}
	}

	for name, ttl := range c.CacheTTLs {
		if ttl < 0 {
			return fmt.Errorf("invalid ttl for cache %s: %v, must be non-negative", name, ttl)
		}
	}
	return nil
}

package redis

import "errors"

// HealthStatus represents the health status
type HealthStatus string

const (
	// StatusUp indicates the service is healthy and running
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the service is not healthy or not running
	StatusDown HealthStatus = "DOWN"
)

// ErrCacheMiss is returned by Cache.Get when the key does not exist
var ErrCacheMiss = errors.New("cache miss")

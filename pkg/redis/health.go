package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings Redis and reports connection pool details
func (c *Client) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := StatusUp
	lastError := ""
	start := time.Now()
	if err := c.Ping(ctx); err != nil {
		status = StatusDown
		lastError = fmt.Sprintf("ping failed: %v", err)
	}

	stats := c.Stats()
	details := map[string]string{
		"host":          c.config.Host,
		"port":          strconv.Itoa(c.config.Port),
		"database":      strconv.Itoa(c.config.Database),
		"ping_latency":  time.Since(start).String(),
		"total_conns":   strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":    strconv.FormatUint(uint64(stats.IdleConns), 10),
		"pool_timeouts": strconv.FormatUint(uint64(stats.Timeouts), 10),
	}
	if lastError != "" {
		details["last_error"] = lastError
	}

	return RedisHealthCheck{Status: status, Details: details}
}

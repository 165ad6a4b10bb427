package queue

import (
	"context"

	"weather-widget/internal/domain/model"
)

// Sender delivers a JSON serializable body to a named queue
type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any) error
	Health(ctx context.Context, queueName string) model.ComponentHealthStatus
}

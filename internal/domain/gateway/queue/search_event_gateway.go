package queue

import (
	"context"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/model"
)

// SearchEventGateway publishes successful searches for downstream consumers
type SearchEventGateway interface {
	Publish(ctx context.Context, event entity.SearchEvent) error
	Health(ctx context.Context) model.ComponentHealthStatus
}

type queueSearchEventGateway struct {
	sender    Sender
	queueName string
}

// NewSearchEventGateway sends every event to queueName
func NewSearchEventGateway(sender Sender, queueName string) SearchEventGateway {
	return &queueSearchEventGateway{sender: sender, queueName: queueName}
}

func (g *queueSearchEventGateway) Publish(ctx context.Context, event entity.SearchEvent) error {
	return g.sender.SendMessage(ctx, g.queueName, event)
}

func (g *queueSearchEventGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	return g.sender.Health(ctx, g.queueName)
}

type disabledSearchEventGateway struct{}

// NewDisabledSearchEventGateway drops every event, used when app.events.enabled is false
func NewDisabledSearchEventGateway() SearchEventGateway {
	return disabledSearchEventGateway{}
}

func (disabledSearchEventGateway) Publish(context.Context, entity.SearchEvent) error {
	return nil
}

func (disabledSearchEventGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "Search events disabled"},
	}
}

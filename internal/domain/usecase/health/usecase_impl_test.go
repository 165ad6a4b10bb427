package health

import (
	"context"
	"testing"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/queue"
	"weather-widget/internal/domain/gateway/session"
	"weather-widget/internal/domain/model"
)

type downEvents struct{}

func (downEvents) Publish(context.Context, entity.SearchEvent) error { return nil }

func (downEvents) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusDown}
}

func TestCheckHealthIgnoresDisabledEvents(t *testing.T) {
	uc := NewHealthUseCase(session.NewMemoryHistoryGateway(0), queue.NewDisabledSearchEventGateway())

	resp := uc.CheckHealth(context.Background())
	if resp.Status != model.StatusUp {
		t.Fatalf("expected UP, got %s", resp.Status)
	}
	if resp.SessionStore.Details["backend"] != "memory" {
		t.Fatalf("unexpected store details %v", resp.SessionStore.Details)
	}
	if resp.Events.Status != model.StatusUnknown {
		t.Fatalf("expected UNKNOWN events, got %s", resp.Events.Status)
	}
}

func TestCheckHealthDownWhenEventsDown(t *testing.T) {
	uc := NewHealthUseCase(session.NewMemoryHistoryGateway(0), downEvents{})
	if resp := uc.CheckHealth(context.Background()); resp.Status != model.StatusDown {
		t.Fatalf("expected DOWN, got %s", resp.Status)
	}
}

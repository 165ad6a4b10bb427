package health

import (
	"context"

	"weather-widget/internal/domain/gateway/queue"
	"weather-widget/internal/domain/gateway/session"
	"weather-widget/internal/domain/model"
)

type healthUseCase struct {
	historyGateway session.HistoryGateway
	eventGateway   queue.SearchEventGateway
}

func NewHealthUseCase(historyGateway session.HistoryGateway, eventGateway queue.SearchEventGateway) UseCase {
	return &healthUseCase{
		historyGateway: historyGateway,
		eventGateway:   eventGateway,
	}
}

// CheckHealth is DOWN when any component is DOWN. Disabled events report UNKNOWN and do not count.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	storeHealth := useCase.historyGateway.Health(ctx)
	eventsHealth := useCase.eventGateway.Health(ctx)

	overallStatus := model.StatusUp
	if storeHealth.Status == model.StatusDown || eventsHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:       overallStatus,
		SessionStore: storeHealth,
		Events:       eventsHealth,
	}
}

package weather

import (
	"context"

	"weather-widget/internal/domain/entity"
)

type UseCase interface {
	// FindCurrent returns the current conditions for a city without touching any widget state
	FindCurrent(ctx context.Context, city string) (*entity.CurrentWeather, error)
}

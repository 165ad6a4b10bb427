package weather

import (
	"context"
	"fmt"
	"strings"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/api"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/model/external"
	"weather-widget/pkg/msg"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{apiGateway: apiGateway}
}

func (uc *weatherUseCase) FindCurrent(ctx context.Context, city string) (*entity.CurrentWeather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, &model.ValidationError{Field: "city", Message: msg.GetMessage("widget.search.invalid")}
	}

	resp, err := uc.apiGateway.FetchCurrent(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current weather for %s: %w", city, err)
	}
	return external.ToCurrentWeather(resp), nil
}

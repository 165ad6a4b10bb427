package api

import (
	"context"

	"weather-widget/internal/domain/model/external"
)

// WeatherGateway defines the interface for WeatherAPI calls
type WeatherGateway interface {
	// FetchForecast gets current conditions plus the configured number of forecast days for a city.
	// Failures are returned as *model.NetworkError.
	FetchForecast(ctx context.Context, cityName string) (*external.ForecastResponse, error)

	// FetchSuggestions returns at most five autocomplete matches for the query.
	// Queries shorter than two characters never reach the network and failures yield an empty slice.
	FetchSuggestions(ctx context.Context, query string) []external.SearchResult

	// FetchCurrent gets the current conditions only
	FetchCurrent(ctx context.Context, cityName string) (*external.CurrentResponse, error)
}

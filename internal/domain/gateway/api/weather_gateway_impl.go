package api

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/model/external"
	"weather-widget/pkg/http"
	"weather-widget/pkg/log"

	"go.uber.org/zap"
)

const (
	// MinSuggestionQueryLength is the shortest query that triggers an autocomplete lookup
	MinSuggestionQueryLength = 2
	// MaxSuggestions caps the autocomplete list
	MaxSuggestions = 5
	// DefaultForecastDays is the number of days requested from the forecast endpoint
	DefaultForecastDays = 7
)

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient   *http.Client
	forecastDays int
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// The API key is sent as the "key" query parameter on every call.
func NewWeatherGateway(baseUrl string, apiKey string, forecastDays int, clientOptions http.ClientOptions) WeatherGateway {
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}
	params := make(map[string]string, len(clientOptions.DefaultQueryParams)+1)
	for k, v := range clientOptions.DefaultQueryParams {
		params[k] = v
	}
	params["key"] = apiKey
	clientOptions.DefaultQueryParams = params

	headers := make(map[string]string, len(clientOptions.DefaultHeaders)+1)
	for k, v := range clientOptions.DefaultHeaders {
		headers[k] = v
	}
	headers["Accept"] = "application/json"
	clientOptions.DefaultHeaders = headers
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.NewZapLogger("weatherapi", "key")
	}

	return &weatherGatewayImpl{
		httpClient:   http.NewHttpClient(baseUrl, clientOptions),
		forecastDays: forecastDays,
	}
}

// FetchForecast gets current conditions and daily forecast for a city
func (w *weatherGatewayImpl) FetchForecast(ctx context.Context, cityName string) (*external.ForecastResponse, error) {
	const op = "fetch forecast"

	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast.json").
		WithQueryParams(map[string]string{
			"q":      cityName,
			"days":   strconv.Itoa(w.forecastDays),
			"aqi":    "no",
			"alerts": "no",
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toNetworkError(op, status, errResp, err)
	}

	response, ok := successResp.(*external.ForecastResponse)
	if !ok || response == nil || response.Current == nil || response.Forecast == nil {
		return nil, &model.NetworkError{Op: op, StatusCode: status, Message: "invalid weather data received"}
	}
	return response, nil
}

// FetchCurrent gets current conditions for a city
func (w *weatherGatewayImpl) FetchCurrent(ctx context.Context, cityName string) (*external.CurrentResponse, error) {
	const op = "fetch current"

	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/current.json").
		WithQueryParams(map[string]string{
			"q":   cityName,
			"aqi": "no",
		}).
		WithSuccessResp(&external.CurrentResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toNetworkError(op, status, errResp, err)
	}

	response, ok := successResp.(*external.CurrentResponse)
	if !ok || response == nil || response.Current == nil {
		return nil, &model.NetworkError{Op: op, StatusCode: status, Message: "invalid weather data received"}
	}
	return response, nil
}

// FetchSuggestions searches cities matching the query
func (w *weatherGatewayImpl) FetchSuggestions(ctx context.Context, query string) []external.SearchResult {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSuggestionQueryLength {
		return []external.SearchResult{}
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/search.json").
		WithQueryParams(map[string]string{"q": query}).
		WithSuccessResp(&[]external.SearchResult{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		log.Warn("Error fetching city suggestions",
			zap.String("query", query),
			zap.Error(toNetworkError("fetch suggestions", status, errResp, err)))
		return []external.SearchResult{}
	}

	results, ok := successResp.(*[]external.SearchResult)
	if !ok || results == nil || *results == nil {
		return []external.SearchResult{}
	}

	matches := *results
	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	return matches
}

func toNetworkError(op string, status int, errResp any, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &model.NetworkError{Op: op, Err: err}
	}

	networkErr := &model.NetworkError{Op: op, StatusCode: status, Err: err}
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil {
		networkErr.Message = apiErr.Error.Message
	}
	return networkErr
}

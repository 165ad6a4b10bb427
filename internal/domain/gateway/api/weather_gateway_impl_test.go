package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"weather-widget/internal/domain/model"
	pkghttp "weather-widget/pkg/http"
)

const forecastBody = `{
  "location": {"name": "London", "region": "City of London, Greater London", "country": "United Kingdom", "lat": 51.52, "lon": -0.11, "tz_id": "Europe/London", "localtime": "2024-01-15 14:05"},
  "current": {"temp_c": 7.2, "feelslike_c": 4.1, "humidity": 81, "wind_kph": 14.4, "uv": 2, "is_day": 1, "condition": {"text": "Partly cloudy", "icon": "//cdn.weatherapi.com/weather/64x64/day/116.png", "code": 1003}},
  "forecast": {"forecastday": [
    {"date": "2024-01-15", "day": {"maxtemp_c": 8.1, "mintemp_c": 2.3, "condition": {"text": "Sunny", "icon": "//cdn/113.png", "code": 1000}}},
    {"date": "2024-01-16", "day": {"maxtemp_c": 6.0, "mintemp_c": 1.0, "condition": {"text": "Rain", "icon": "//cdn/296.png", "code": 1183}}}
  ]}
}`

func newTestGateway(t *testing.T, handler http.HandlerFunc) (WeatherGateway, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewWeatherGateway(srv.URL+"/v1", "test-key", 7, pkghttp.ClientOptions{}), &calls
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprint(w, body)
}

func TestFetchForecastSendsExpectedQuery(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("key") != "test-key" || q.Get("q") != "New York" || q.Get("days") != "7" || q.Get("aqi") != "no" {
			t.Errorf("unexpected query %v", q)
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("unexpected Accept header %q", accept)
		}
		writeJSON(w, http.StatusOK, forecastBody)
	})

	resp, err := gw.FetchForecast(context.Background(), "New York")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Location.Name != "London" {
		t.Fatalf("unexpected location %q", resp.Location.Name)
	}
	if resp.Current.Humidity != 81 {
		t.Fatalf("unexpected humidity %d", resp.Current.Humidity)
	}
	if len(resp.Forecast.ForecastDay) != 2 {
		t.Fatalf("expected 2 forecast days, got %d", len(resp.Forecast.ForecastDay))
	}
}

func TestFetchForecastNonSuccessIsNetworkError(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":{"code":1006,"message":"No matching location found."}}`)
	})

	_, err := gw.FetchForecast(context.Background(), "Nowhere")
	var networkErr *model.NetworkError
	if !errors.As(err, &networkErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if networkErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", networkErr.StatusCode)
	}
	if networkErr.Message != "No matching location found." {
		t.Fatalf("unexpected message %q", networkErr.Message)
	}
}

func TestFetchForecastTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	gw := NewWeatherGateway(url, "k", 7, pkghttp.ClientOptions{})
	_, err := gw.FetchForecast(context.Background(), "London")
	if !model.IsNetworkError(err) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestFetchForecastIncompletePayloadIsNetworkError(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"location":{"name":"London"}}`)
	})

	if _, err := gw.FetchForecast(context.Background(), "London"); !model.IsNetworkError(err) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestFetchSuggestionsShortQueryMakesNoCall(t *testing.T) {
	gw, calls := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[]`)
	})

	got := gw.FetchSuggestions(context.Background(), "a")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
	if n := atomic.LoadInt32(calls); n != 0 {
		t.Fatalf("expected no network call, got %d", n)
	}
}

func TestFetchSuggestionsTruncatesToFive(t *testing.T) {
	gw, calls := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search.json" || r.URL.Query().Get("q") != "ab" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		writeJSON(w, http.StatusOK, `[
			{"name":"A1","country":"X"},{"name":"A2","country":"X"},{"name":"A3","country":"X"},
			{"name":"A4","country":"X"},{"name":"A5","country":"X"},{"name":"A6","country":"X"},{"name":"A7","country":"X"}]`)
	})

	got := gw.FetchSuggestions(context.Background(), "ab")
	if n := atomic.LoadInt32(calls); n != 1 {
		t.Fatalf("expected exactly one call, got %d", n)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(got))
	}
	for i, s := range got {
		if want := fmt.Sprintf("A%d", i+1); s.Name != want {
			t.Fatalf("order not preserved: position %d is %s", i, s.Name)
		}
	}
}

func TestFetchSuggestionsSwallowsFailures(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"error":{"code":9999,"message":"Internal application error."}}`)
	})

	got := gw.FetchSuggestions(context.Background(), "Lon")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestFetchCurrent(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/current.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{"location":{"name":"Paris"},"current":{"temp_c":12.5,"condition":{"text":"Clear"}}}`)
	})

	resp, err := gw.FetchCurrent(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Current.TempC != 12.5 || resp.Location.Name != "Paris" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

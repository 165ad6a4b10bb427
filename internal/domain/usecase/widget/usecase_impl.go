package widget

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/api"
	"weather-widget/internal/domain/gateway/queue"
	"weather-widget/internal/domain/gateway/session"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/model/external"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"
	"weather-widget/pkg/util/weatherutils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCity is searched by Init when no other city is configured
const DefaultCity = "London"

// Config holds the per-session settings of a widget
type Config struct {
	SessionID   string
	DefaultCity string
	Unit        weatherutils.Unit
}

type widgetUseCase struct {
	sessionID   string
	defaultCity string

	weatherGateway api.WeatherGateway
	historyGateway session.HistoryGateway
	eventGateway   queue.SearchEventGateway
	view           View

	// mu guards state and the request counters; it is never held across a gateway call
	mu         sync.Mutex
	state      entity.WidgetState
	searchSeq  uint64
	suggestSeq uint64

	// saveMu orders history writes so the store always ends with the latest list
	saveMu sync.Mutex
}

func NewWidgetUseCase(config Config, weatherGateway api.WeatherGateway, historyGateway session.HistoryGateway, eventGateway queue.SearchEventGateway, view View) UseCase {
	if config.DefaultCity == "" {
		config.DefaultCity = DefaultCity
	}
	unit, ok := weatherutils.ParseUnit(string(config.Unit))
	if !ok {
		unit = weatherutils.Celsius
	}

	return &widgetUseCase{
		sessionID:      config.SessionID,
		defaultCity:    config.DefaultCity,
		weatherGateway: weatherGateway,
		historyGateway: historyGateway,
		eventGateway:   eventGateway,
		view:           view,
		state: entity.WidgetState{
			RecentSearches: []string{},
			Suggestions:    []entity.Suggestion{},
			Unit:           string(unit),
		},
	}
}

// Init restores the session's recent searches, renders them and searches the default city.
// The default search is skipped when the user already searched while the history was loading.
func (uc *widgetUseCase) Init(ctx context.Context) error {
	log.Info(msg.GetMessage("widget.init", uc.sessionID))

	recent, err := uc.historyGateway.Load(ctx, uc.sessionID)
	if err != nil {
		log.Warn(msg.GetMessage("widget.history.load-failed", uc.sessionID), zap.Error(err))
		recent = []string{}
	}

	uc.mu.Lock()
	// searches finished while the history was loading stay in front of it
	uc.state.RecentSearches = mergeRecent(uc.state.RecentSearches, recent, session.MaxRecentSearches)
	uc.view.RenderRecentSearches(copyStrings(uc.state.RecentSearches), uc.state.CurrentCity)
	searched := uc.searchSeq > 0
	uc.mu.Unlock()

	if searched {
		uc.persistHistory(ctx)
		return nil
	}
	return uc.Search(ctx, uc.defaultCity)
}

// Search fetches the forecast for city and, on success, makes it the active view
func (uc *widgetUseCase) Search(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return &model.ValidationError{Field: "city", Message: msg.GetMessage("widget.search.invalid")}
	}

	uc.mu.Lock()
	uc.searchSeq++
	token := uc.searchSeq
	uc.state.Loading = true
	uc.view.ShowLoading(true)
	uc.mu.Unlock()

	log.Info(msg.GetMessage("widget.search.start", city), zap.String("session_id", uc.sessionID))
	resp, err := uc.weatherGateway.FetchForecast(ctx, city)

	uc.mu.Lock()
	if token != uc.searchSeq {
		uc.mu.Unlock()
		log.Debug(msg.GetMessage("widget.search.stale", city), zap.String("session_id", uc.sessionID))
		return model.ErrStaleResponse
	}

	uc.state.Loading = false
	if err != nil {
		message := msg.GetMessage("widget.search.failed", city)
		uc.state.LastError = message
		uc.view.ShowLoading(false)
		uc.view.ShowError(message)
		uc.mu.Unlock()

		log.Error(message, zap.String("session_id", uc.sessionID), zap.Error(err))
		return fmt.Errorf("failed to search %s: %w", city, err)
	}

	weatherView := external.ToWeatherView(resp)
	uc.state.CurrentCity = city
	uc.state.RecentSearches = pushRecent(uc.state.RecentSearches, city, session.MaxRecentSearches)
	uc.state.ActiveView = weatherView
	uc.state.LastError = ""

	unit := weatherutils.Unit(uc.state.Unit)
	uc.view.ShowError("")
	uc.renderWeatherPanels(weatherView, unit)
	uc.view.RenderRecentSearches(copyStrings(uc.state.RecentSearches), city)
	uc.view.ShowLoading(false)
	uc.mu.Unlock()

	log.Info(msg.GetMessage("widget.search.done", city), zap.String("session_id", uc.sessionID))
	uc.persistHistory(ctx)
	uc.publishSearch(ctx, city, weatherView.Location)
	return nil
}

// UpdateSuggestions refreshes the autocomplete dropdown for the typed query
func (uc *widgetUseCase) UpdateSuggestions(ctx context.Context, query string) ([]entity.Suggestion, error) {
	query = strings.TrimSpace(query)

	uc.mu.Lock()
	uc.suggestSeq++
	token := uc.suggestSeq
	if utf8.RuneCountInString(query) < api.MinSuggestionQueryLength {
		uc.state.Suggestions = []entity.Suggestion{}
		uc.state.SuggestionsVisible = false
		uc.view.HideSuggestions()
		uc.mu.Unlock()
		return []entity.Suggestion{}, nil
	}
	uc.mu.Unlock()

	suggestions := external.ToSuggestions(uc.weatherGateway.FetchSuggestions(ctx, query))

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if token != uc.suggestSeq {
		log.Debug(msg.GetMessage("widget.suggestions.stale", query), zap.String("session_id", uc.sessionID))
		return nil, model.ErrStaleResponse
	}

	uc.state.Suggestions = suggestions
	uc.state.SuggestionsVisible = true
	uc.view.RenderSuggestions(suggestions, msg.GetMessage("widget.suggestions.empty"))
	return append([]entity.Suggestion(nil), suggestions...), nil
}

// SelectSuggestion hides the dropdown and searches the chosen city
func (uc *widgetUseCase) SelectSuggestion(ctx context.Context, name string) error {
	uc.HideSuggestions()
	return uc.Search(ctx, name)
}

// SelectRecentSearch searches a city from the recent list
func (uc *widgetUseCase) SelectRecentSearch(ctx context.Context, name string) error {
	return uc.Search(ctx, name)
}

// HideSuggestions closes the dropdown. Lookups still in flight can no longer reopen it.
func (uc *widgetUseCase) HideSuggestions() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.suggestSeq++
	uc.state.SuggestionsVisible = false
	uc.view.HideSuggestions()
}

// SetUnit switches the temperature unit and re-renders every panel
func (uc *widgetUseCase) SetUnit(value string) error {
	unit, ok := weatherutils.ParseUnit(value)
	if !ok {
		return &model.ValidationError{Field: "unit", Message: msg.GetMessage("widget.unit.invalid", value)}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Unit = string(unit)
	uc.renderAll()
	return nil
}

// Snapshot returns a copy of the current state
func (uc *widgetUseCase) Snapshot() entity.WidgetState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state.Clone()
}

// renderAll repaints every panel from state. Callers hold mu.
func (uc *widgetUseCase) renderAll() {
	unit := weatherutils.Unit(uc.state.Unit)
	if uc.state.ActiveView != nil {
		uc.renderWeatherPanels(uc.state.ActiveView, unit)
	}
	if uc.state.SuggestionsVisible {
		uc.view.RenderSuggestions(append([]entity.Suggestion(nil), uc.state.Suggestions...), msg.GetMessage("widget.suggestions.empty"))
	} else {
		uc.view.HideSuggestions()
	}
	uc.view.RenderRecentSearches(copyStrings(uc.state.RecentSearches), uc.state.CurrentCity)
	uc.view.ShowLoading(uc.state.Loading)
	uc.view.ShowError(uc.state.LastError)
}

func (uc *widgetUseCase) renderWeatherPanels(weatherView *entity.WeatherView, unit weatherutils.Unit) {
	uc.view.RenderWeather(weatherView.Location, weatherView.Current, unit)
	uc.view.RenderForecast(append([]entity.ForecastDay(nil), weatherView.Days...), unit)
	uc.view.RenderMetrics(weatherView.Current, unit)
}

func (uc *widgetUseCase) persistHistory(ctx context.Context) {
	uc.saveMu.Lock()
	defer uc.saveMu.Unlock()

	uc.mu.Lock()
	recent := copyStrings(uc.state.RecentSearches)
	uc.mu.Unlock()

	if err := uc.historyGateway.Save(ctx, uc.sessionID, recent); err != nil {
		log.Error(msg.GetMessage("widget.history.save-failed", uc.sessionID), zap.Error(err))
	}
}

func (uc *widgetUseCase) publishSearch(ctx context.Context, city string, location entity.Location) {
	event := entity.SearchEvent{
		ID:         uuid.NewString(),
		SessionID:  uc.sessionID,
		City:       city,
		Country:    location.Country,
		SearchedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.eventGateway.Publish(ctx, event); err != nil {
		log.Warn(msg.GetMessage("widget.event.failed", city), zap.String("session_id", uc.sessionID), zap.Error(err))
	}
}

func copyStrings(values []string) []string {
	return append([]string{}, values...)
}

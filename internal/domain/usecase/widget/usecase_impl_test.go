package widget

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"
	"testing"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/session"
	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/model/external"
	"weather-widget/pkg/msg"
	"weather-widget/pkg/util/weatherutils"
)

func TestMain(m *testing.M) {
	if err := msg.Init("../../../../configs/messages.yml"); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type fakeWeatherGateway struct {
	mu              sync.Mutex
	forecastFn      func(ctx context.Context, city string) (*external.ForecastResponse, error)
	suggestionsFn   func(ctx context.Context, query string) []external.SearchResult
	forecastCalls   []string
	suggestionCalls []string
}

func (f *fakeWeatherGateway) FetchForecast(ctx context.Context, city string) (*external.ForecastResponse, error) {
	f.mu.Lock()
	f.forecastCalls = append(f.forecastCalls, city)
	fn := f.forecastFn
	f.mu.Unlock()
	if fn == nil {
		return forecastFor(city, 7, 10), nil
	}
	return fn(ctx, city)
}

func (f *fakeWeatherGateway) FetchSuggestions(ctx context.Context, query string) []external.SearchResult {
	f.mu.Lock()
	f.suggestionCalls = append(f.suggestionCalls, query)
	fn := f.suggestionsFn
	f.mu.Unlock()
	if fn == nil {
		return []external.SearchResult{}
	}
	return fn(ctx, query)
}

func (f *fakeWeatherGateway) FetchCurrent(context.Context, string) (*external.CurrentResponse, error) {
	return nil, errors.New("not used")
}

type recordingView struct {
	city        string
	temperature string
	feelsLike   string
	forecast    []string
	suggestions []entity.Suggestion
	placeholder string
	visible     bool
	recent      []string
	active      string
	loading     bool
	errorText   string
}

func (v *recordingView) RenderWeather(location entity.Location, current entity.CurrentConditions, unit weatherutils.Unit) {
	v.city = location.Name
	v.temperature = weatherutils.FormatTemperature(current.TemperatureC, unit)
}

func (v *recordingView) RenderForecast(days []entity.ForecastDay, unit weatherutils.Unit) {
	v.forecast = v.forecast[:0]
	for _, d := range days {
		v.forecast = append(v.forecast, weatherutils.FormatTemperature(d.MaxTempC, unit))
	}
}

func (v *recordingView) RenderMetrics(current entity.CurrentConditions, unit weatherutils.Unit) {
	v.feelsLike = weatherutils.FormatTemperature(current.FeelsLikeC, unit)
}

func (v *recordingView) RenderSuggestions(suggestions []entity.Suggestion, placeholder string) {
	v.suggestions = suggestions
	v.placeholder = placeholder
	v.visible = true
}

func (v *recordingView) HideSuggestions() { v.visible = false }

func (v *recordingView) RenderRecentSearches(recent []string, active string) {
	v.recent = recent
	v.active = active
}

func (v *recordingView) ShowLoading(loading bool) { v.loading = loading }

func (v *recordingView) ShowError(message string) { v.errorText = message }

type recordingEvents struct {
	events []entity.SearchEvent
	err    error
}

func (r *recordingEvents) Publish(_ context.Context, event entity.SearchEvent) error {
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingEvents) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

func forecastFor(city string, days int, tempC float64) *external.ForecastResponse {
	resp := &external.ForecastResponse{
		Location: external.LocationDTO{Name: city, Country: "Testland", LocalTime: "2024-01-15 14:05"},
		Current: &external.CurrentDTO{
			TempC:      tempC,
			FeelsLikeC: tempC - 2,
			Humidity:   60,
			IsDay:      1,
			Condition:  external.ConditionDTO{Text: "Sunny", Icon: "//cdn.weatherapi.com/weather/64x64/day/113.png", Code: 1000},
		},
		Forecast: &external.ForecastDTO{},
	}
	for i := 0; i < days; i++ {
		resp.Forecast.ForecastDay = append(resp.Forecast.ForecastDay, external.ForecastDayDTO{
			Date: fmt.Sprintf("2024-01-%02d", 15+i),
			Day:  external.DayDTO{MaxTempC: tempC + 1, MinTempC: tempC - 1, Condition: external.ConditionDTO{Text: "Sunny", Code: 1000}},
		})
	}
	return resp
}

type fixture struct {
	uc      UseCase
	weather *fakeWeatherGateway
	history *session.MemoryHistoryGateway
	events  *recordingEvents
	view    *recordingView
}

func newFixture() *fixture {
	f := &fixture{
		weather: &fakeWeatherGateway{},
		history: session.NewMemoryHistoryGateway(0),
		events:  &recordingEvents{},
		view:    &recordingView{},
	}
	f.uc = NewWidgetUseCase(Config{SessionID: "s1"}, f.weather, f.history, f.events, f.view)
	return f
}

func TestInitWithEmptySessionSearchesDefaultCity(t *testing.T) {
	f := newFixture()

	if err := f.uc.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}

	if f.view.city != "London" {
		t.Fatalf("expected London in the weather panel, got %q", f.view.city)
	}
	if len(f.view.forecast) != 7 {
		t.Fatalf("expected 7 forecast entries, got %d", len(f.view.forecast))
	}
	if !reflect.DeepEqual(f.view.recent, []string{"London"}) || f.view.active != "London" {
		t.Fatalf("unexpected recent list %v active=%q", f.view.recent, f.view.active)
	}
	if f.view.loading {
		t.Fatal("loading indicator left on")
	}
}

func TestInitRestoresStoredHistory(t *testing.T) {
	f := newFixture()
	if err := f.history.Save(context.Background(), "s1", []string{"Paris", "Rome"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := f.uc.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}

	want := []string{"London", "Paris", "Rome"}
	if got := f.uc.Snapshot().RecentSearches; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	stored, _ := f.history.Load(context.Background(), "s1")
	if !reflect.DeepEqual(stored, want) {
		t.Fatalf("expected store to hold %v, got %v", want, stored)
	}
}

func TestInitWithCorruptHistoryStartsEmpty(t *testing.T) {
	f := newFixture()
	f.history.SaveRaw("s1", []byte("{oops"))

	if err := f.uc.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := f.uc.Snapshot().RecentSearches; !reflect.DeepEqual(got, []string{"London"}) {
		t.Fatalf("unexpected recent list %v", got)
	}
}

func TestSearchSameCityTwiceKeepsSingleEntry(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, city := range []string{"London", "Paris", "London"} {
		if err := f.uc.Search(ctx, city); err != nil {
			t.Fatalf("search %s: %v", city, err)
		}
	}

	if got := f.uc.Snapshot().RecentSearches; !reflect.DeepEqual(got, []string{"London", "Paris"}) {
		t.Fatalf("unexpected recent list %v", got)
	}
}

func TestRecentSearchesStayCappedAndDistinct(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	cities := []string{"A", "B", "C", "A", "D", "E", "F", "G", "C"}
	for _, city := range cities {
		if err := f.uc.Search(ctx, city); err != nil {
			t.Fatalf("search %s: %v", city, err)
		}
		recent := f.uc.Snapshot().RecentSearches
		if len(recent) > session.MaxRecentSearches {
			t.Fatalf("recent list grew to %d", len(recent))
		}
		seen := map[string]bool{}
		for _, name := range recent {
			if seen[name] {
				t.Fatalf("duplicate %q in %v", name, recent)
			}
			seen[name] = true
		}
		if recent[0] != city {
			t.Fatalf("expected %s at the front, got %v", city, recent)
		}
	}

	if got := f.uc.Snapshot().RecentSearches; !reflect.DeepEqual(got, []string{"C", "G", "F", "E", "D"}) {
		t.Fatalf("unexpected final list %v", got)
	}
}

func TestFailedSearchLeavesStateUntouched(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	if err := f.uc.Search(ctx, "London"); err != nil {
		t.Fatalf("search: %v", err)
	}
	before := f.uc.Snapshot()

	f.weather.forecastFn = func(context.Context, string) (*external.ForecastResponse, error) {
		return nil, &model.NetworkError{Op: "fetch forecast", StatusCode: 400, Message: "No matching location found."}
	}
	err := f.uc.Search(ctx, "Atlantis")
	if !model.IsNetworkError(err) {
		t.Fatalf("expected NetworkError, got %v", err)
	}

	after := f.uc.Snapshot()
	if after.CurrentCity != "London" || after.ActiveView.Location.Name != "London" {
		t.Fatalf("active view changed after failure: %+v", after)
	}
	if !reflect.DeepEqual(after.RecentSearches, before.RecentSearches) {
		t.Fatalf("recent list changed after failure: %v", after.RecentSearches)
	}
	if after.LastError != "Error fetching weather for Atlantis" || f.view.errorText != after.LastError {
		t.Fatalf("unexpected error text %q / %q", after.LastError, f.view.errorText)
	}
	if f.view.city != "London" || f.view.loading {
		t.Fatalf("unexpected view after failure: city=%q loading=%v", f.view.city, f.view.loading)
	}
	if len(f.events.events) != 1 {
		t.Fatalf("failed search must not publish, got %d events", len(f.events.events))
	}
}

func TestSuccessfulSearchClearsPreviousError(t *testing.T) {
	f := newFixture()
	f.weather.forecastFn = func(context.Context, string) (*external.ForecastResponse, error) {
		return nil, &model.NetworkError{Op: "fetch forecast", StatusCode: 500}
	}
	_ = f.uc.Search(context.Background(), "Nowhere")

	f.weather.forecastFn = nil
	if err := f.uc.Search(context.Background(), "Oslo"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if f.uc.Snapshot().LastError != "" || f.view.errorText != "" {
		t.Fatal("error panel not cleared")
	}
}

func TestSearchBlankCityIsValidationError(t *testing.T) {
	f := newFixture()
	err := f.uc.Search(context.Background(), "   ")
	if !model.IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(f.weather.forecastCalls) != 0 {
		t.Fatal("blank search reached the gateway")
	}
}

func TestSearchPublishesEventAndIgnoresPublishFailure(t *testing.T) {
	f := newFixture()
	f.events.err = errors.New("queue unavailable")

	if err := f.uc.Search(context.Background(), "Lisbon"); err != nil {
		t.Fatalf("publish failure must not fail the search: %v", err)
	}
	if len(f.events.events) != 1 {
		t.Fatalf("expected one event, got %d", len(f.events.events))
	}
	event := f.events.events[0]
	if event.City != "Lisbon" || event.SessionID != "s1" || event.Country != "Testland" || event.ID == "" {
		t.Fatalf("unexpected event %+v", event)
	}
}

func TestStaleSearchResponseIsDiscarded(t *testing.T) {
	f := newFixture()
	release := make(chan struct{})
	started := make(chan struct{})
	f.weather.forecastFn = func(_ context.Context, city string) (*external.ForecastResponse, error) {
		if city == "Slow" {
			close(started)
			<-release
		}
		return forecastFor(city, 7, 10), nil
	}

	slowErr := make(chan error, 1)
	go func() { slowErr <- f.uc.Search(context.Background(), "Slow") }()
	<-started

	if err := f.uc.Search(context.Background(), "Fast"); err != nil {
		t.Fatalf("search: %v", err)
	}
	close(release)

	if err := <-slowErr; !errors.Is(err, model.ErrStaleResponse) {
		t.Fatalf("expected stale response, got %v", err)
	}
	state := f.uc.Snapshot()
	if state.CurrentCity != "Fast" || f.view.city != "Fast" {
		t.Fatalf("stale response overwrote newer one: state=%q view=%q", state.CurrentCity, f.view.city)
	}
	if !reflect.DeepEqual(state.RecentSearches, []string{"Fast"}) {
		t.Fatalf("stale city entered recent list: %v", state.RecentSearches)
	}
}

func TestStaleSuggestionsAreDiscarded(t *testing.T) {
	f := newFixture()
	release := make(chan struct{})
	started := make(chan struct{})
	f.weather.suggestionsFn = func(_ context.Context, query string) []external.SearchResult {
		if query == "Lo" {
			close(started)
			<-release
			return []external.SearchResult{{Name: "Lodz"}}
		}
		return []external.SearchResult{{Name: "London", Country: "United Kingdom"}}
	}

	slow := make(chan error, 1)
	go func() {
		_, err := f.uc.UpdateSuggestions(context.Background(), "Lo")
		slow <- err
	}()
	<-started

	got, err := f.uc.UpdateSuggestions(context.Background(), "Lon")
	if err != nil || len(got) != 1 || got[0].Name != "London" {
		t.Fatalf("unexpected suggestions %v %v", got, err)
	}
	close(release)

	if err := <-slow; !errors.Is(err, model.ErrStaleResponse) {
		t.Fatalf("expected stale response, got %v", err)
	}
	if state := f.uc.Snapshot(); state.Suggestions[0].Name != "London" || f.view.suggestions[0].Name != "London" {
		t.Fatalf("stale suggestions rendered: %v", f.view.suggestions)
	}
}

func TestHiddenDropdownIsNotReopenedByInflightLookup(t *testing.T) {
	f := newFixture()
	release := make(chan struct{})
	started := make(chan struct{})
	f.weather.suggestionsFn = func(context.Context, string) []external.SearchResult {
		close(started)
		<-release
		return []external.SearchResult{{Name: "Berlin"}}
	}

	done := make(chan error, 1)
	go func() {
		_, err := f.uc.UpdateSuggestions(context.Background(), "Be")
		done <- err
	}()
	<-started
	f.uc.HideSuggestions()
	close(release)

	if err := <-done; !errors.Is(err, model.ErrStaleResponse) {
		t.Fatalf("expected stale response, got %v", err)
	}
	if f.uc.Snapshot().SuggestionsVisible || f.view.visible {
		t.Fatal("dropdown reopened after hide")
	}
}

func TestUpdateSuggestionsLengthGate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	got, err := f.uc.UpdateSuggestions(ctx, "L")
	if err != nil || len(got) != 0 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
	if len(f.weather.suggestionCalls) != 0 {
		t.Fatal("short query reached the gateway")
	}
	if f.uc.Snapshot().SuggestionsVisible {
		t.Fatal("dropdown visible for short query")
	}

	got, err = f.uc.UpdateSuggestions(ctx, "Lx")
	if err != nil || len(got) != 0 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
	if len(f.weather.suggestionCalls) != 1 {
		t.Fatalf("expected one lookup, got %d", len(f.weather.suggestionCalls))
	}
	if !f.view.visible || f.view.placeholder != "No cities found" {
		t.Fatalf("expected visible placeholder, got visible=%v placeholder=%q", f.view.visible, f.view.placeholder)
	}
}

func TestSelectSuggestionHidesAndSearches(t *testing.T) {
	f := newFixture()
	f.weather.suggestionsFn = func(context.Context, string) []external.SearchResult {
		return []external.SearchResult{{Name: "Madrid", Country: "Spain"}}
	}
	if _, err := f.uc.UpdateSuggestions(context.Background(), "Mad"); err != nil {
		t.Fatalf("suggestions: %v", err)
	}

	if err := f.uc.SelectSuggestion(context.Background(), "Madrid"); err != nil {
		t.Fatalf("select: %v", err)
	}
	state := f.uc.Snapshot()
	if state.SuggestionsVisible || f.view.visible {
		t.Fatal("dropdown still visible")
	}
	if state.CurrentCity != "Madrid" {
		t.Fatalf("unexpected city %q", state.CurrentCity)
	}
}

func TestSelectRecentSearchMarksSingleActiveEntry(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for _, city := range []string{"Paris", "Rome", "Oslo"} {
		if err := f.uc.Search(ctx, city); err != nil {
			t.Fatalf("search: %v", err)
		}
	}

	if err := f.uc.SelectRecentSearch(ctx, "Paris"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if f.view.active != "Paris" || f.view.recent[0] != "Paris" {
		t.Fatalf("unexpected recent view %v active=%q", f.view.recent, f.view.active)
	}
}

func TestSetUnitRerendersPanels(t *testing.T) {
	f := newFixture()
	if err := f.uc.Search(context.Background(), "London"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if f.view.temperature != "10°C" {
		t.Fatalf("unexpected temperature %q", f.view.temperature)
	}

	if err := f.uc.SetUnit("F"); err != nil {
		t.Fatalf("set unit: %v", err)
	}
	if f.view.temperature != "50°F" || f.view.feelsLike != "46°F" || f.view.forecast[0] != "52°F" {
		t.Fatalf("panels not re-rendered in F: %q %q %v", f.view.temperature, f.view.feelsLike, f.view.forecast)
	}
	if f.uc.Snapshot().Unit != "F" {
		t.Fatal("unit not stored")
	}

	if err := f.uc.SetUnit("K"); !model.IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

type slowHistory struct {
	*session.MemoryHistoryGateway
	loaded  []string
	loading chan struct{}
	release chan struct{}
}

func (h *slowHistory) Load(context.Context, string) ([]string, error) {
	close(h.loading)
	<-h.release
	return append([]string{}, h.loaded...), nil
}

func TestSearchDuringInitSurvivesHistoryLoad(t *testing.T) {
	f := newFixture()
	history := &slowHistory{
		MemoryHistoryGateway: f.history,
		loaded:               []string{"Tokyo"},
		loading:              make(chan struct{}),
		release:              make(chan struct{}),
	}
	f.uc = NewWidgetUseCase(Config{SessionID: "s1"}, f.weather, history, f.events, f.view)

	initErr := make(chan error, 1)
	go func() { initErr <- f.uc.Init(context.Background()) }()
	<-history.loading

	if err := f.uc.Search(context.Background(), "Paris"); err != nil {
		t.Fatalf("search: %v", err)
	}
	close(history.release)
	if err := <-initErr; err != nil {
		t.Fatalf("init: %v", err)
	}

	state := f.uc.Snapshot()
	want := []string{"Paris", "Tokyo"}
	if !reflect.DeepEqual(state.RecentSearches, want) || state.CurrentCity != "Paris" {
		t.Fatalf("expected %v with Paris current, got %v current=%q", want, state.RecentSearches, state.CurrentCity)
	}
	stored, _ := f.history.Load(context.Background(), "s1")
	if !reflect.DeepEqual(stored, want) {
		t.Fatalf("expected store to hold %v, got %v", want, stored)
	}
	if !reflect.DeepEqual(f.weather.forecastCalls, []string{"Paris"}) {
		t.Fatalf("default city searched over the user's search: %v", f.weather.forecastCalls)
	}
}

func TestMergeRecent(t *testing.T) {
	got := mergeRecent([]string{"Paris", "Rome"}, []string{"Rome", "Oslo", "Lima", "Kyiv", "Bern"}, 5)
	want := []string{"Paris", "Rome", "Oslo", "Lima", "Kyiv"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

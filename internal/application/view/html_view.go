package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"sync"

	"weather-widget/internal/domain/entity"
	"weather-widget/pkg/log"
	"weather-widget/pkg/util/weatherutils"

	"go.uber.org/zap"
)

// Panel is the rendered content of one page element
type Panel struct {
	HTML    template.HTML `json:"html"`
	Visible bool          `json:"visible"`
}

type forecastItem struct {
	Name string
	Icon string
	Text string
	Max  string
	Min  string
}

type historyItem struct {
	Name   string
	Active bool
}

// HTMLView keeps the latest fragment of every panel of one session's page
type HTMLView struct {
	mu     sync.RWMutex
	panels map[string]Panel
}

func NewHTMLView() *HTMLView {
	panels := make(map[string]Panel, len(PanelIDs))
	for _, id := range PanelIDs {
		panels[id] = Panel{Visible: true}
	}
	panels[CitySuggestionsID] = Panel{}
	panels[LoadingID] = Panel{}
	panels[ErrorID] = Panel{}
	return &HTMLView{panels: panels}
}

func (v *HTMLView) RenderWeather(location entity.Location, current entity.CurrentConditions, unit weatherutils.Unit) {
	condition := v.execute("condition", current.Condition)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.set(CityNameID, text(location.Name), true)
	v.set(TimeID, text(weatherutils.FormatTime(location.LocalTime)), true)
	v.set(TemperatureID, text(weatherutils.FormatTemperature(current.TemperatureC, unit)), true)
	v.set(ConditionID, condition, true)
}

func (v *HTMLView) RenderForecast(days []entity.ForecastDay, unit weatherutils.Unit) {
	items := make([]forecastItem, 0, len(days))
	for _, day := range days {
		items = append(items, forecastItem{
			Name: weatherutils.DayName(day.Date),
			Icon: day.Condition.Icon,
			Text: day.Condition.Text,
			Max:  weatherutils.FormatTemperature(day.MaxTempC, unit),
			Min:  weatherutils.FormatTemperature(day.MinTempC, unit),
		})
	}
	html := v.execute("forecast", items)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.set(ForecastWrapperID, html, true)
}

func (v *HTMLView) RenderMetrics(current entity.CurrentConditions, unit weatherutils.Unit) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.set(HumidityID, text(strconv.Itoa(current.Humidity)+"%"), true)
	v.set(WindSpeedID, text(formatNumber(current.WindKph)+" km/h"), true)
	v.set(UVIndexID, text(formatNumber(current.UltraViolet)), true)
	v.set(FeelsLikeID, text(weatherutils.FormatTemperature(current.FeelsLikeC, unit)), true)
}

func (v *HTMLView) RenderSuggestions(suggestions []entity.Suggestion, placeholder string) {
	html := v.execute("suggestions", struct {
		Items       []entity.Suggestion
		Placeholder string
	}{suggestions, placeholder})

	v.mu.Lock()
	defer v.mu.Unlock()
	v.set(CitySuggestionsID, html, true)
}

// HideSuggestions keeps the last list so a re-show does not need a new lookup
func (v *HTMLView) HideSuggestions() {
	v.mu.Lock()
	defer v.mu.Unlock()
	panel := v.panels[CitySuggestionsID]
	panel.Visible = false
	v.panels[CitySuggestionsID] = panel
}

func (v *HTMLView) RenderRecentSearches(recent []string, active string) {
	items := make([]historyItem, 0, len(recent))
	for _, name := range recent {
		items = append(items, historyItem{Name: name, Active: name == active})
	}
	html := v.execute("history", struct{ Items []historyItem }{items})

	v.mu.Lock()
	defer v.mu.Unlock()
	v.set(LocationHistoryID, html, true)
}

func (v *HTMLView) ShowLoading(loading bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.set(LoadingID, text("Loading weather data..."), loading)
}

func (v *HTMLView) ShowError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.set(ErrorID, text(message), message != "")
}

// Panels returns a copy of every panel keyed by element id
func (v *HTMLView) Panels() map[string]Panel {
	v.mu.RLock()
	defer v.mu.RUnlock()
	panels := make(map[string]Panel, len(v.panels))
	for id, panel := range v.panels {
		panels[id] = panel
	}
	return panels
}

// WritePage renders the full page with the current panels
func (v *HTMLView) WritePage(w io.Writer, basePath string) error {
	data := struct {
		BasePath string
		Panels   map[string]Panel
	}{basePath, v.Panels()}

	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

func (v *HTMLView) set(id string, html template.HTML, visible bool) {
	v.panels[id] = Panel{HTML: html, Visible: visible}
}

func (v *HTMLView) execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error("Failed to render panel", zap.String("template", name), zap.Error(err))
		return ""
	}
	return template.HTML(buf.String())
}

func text(value string) template.HTML {
	return template.HTML(template.HTMLEscapeString(value))
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

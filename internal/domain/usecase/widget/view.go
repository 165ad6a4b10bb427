package widget

import (
	"weather-widget/internal/domain/entity"
	"weather-widget/pkg/util/weatherutils"
)

// View receives every render pass of a widget. Each call replaces the panel it targets.
type View interface {
	RenderWeather(location entity.Location, current entity.CurrentConditions, unit weatherutils.Unit)
	RenderForecast(days []entity.ForecastDay, unit weatherutils.Unit)
	RenderMetrics(current entity.CurrentConditions, unit weatherutils.Unit)
	// RenderSuggestions shows the dropdown; placeholder is displayed when suggestions is empty
	RenderSuggestions(suggestions []entity.Suggestion, placeholder string)
	HideSuggestions()
	// RenderRecentSearches marks the entry equal to active, if any
	RenderRecentSearches(recent []string, active string)
	ShowLoading(loading bool)
	// ShowError displays message, an empty message clears the error panel
	ShowError(message string)
}

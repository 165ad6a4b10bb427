package entity

// WidgetState is everything one session's widget shows
type WidgetState struct {
	CurrentCity        string       `json:"currentCity"`
	RecentSearches     []string     `json:"recentSearches"`
	ActiveView         *WeatherView `json:"activeView,omitempty"`
	Suggestions        []Suggestion `json:"suggestions"`
	SuggestionsVisible bool         `json:"suggestionsVisible"`
	Loading            bool         `json:"loading"`
	LastError          string       `json:"lastError,omitempty"`
	Unit               string       `json:"unit"`
}

// Clone returns a deep copy so callers never share slices with the live state
func (s WidgetState) Clone() WidgetState {
	c := s
	c.RecentSearches = append([]string(nil), s.RecentSearches...)
	c.Suggestions = append([]Suggestion(nil), s.Suggestions...)
	if s.ActiveView != nil {
		view := *s.ActiveView
		view.Days = append([]ForecastDay(nil), s.ActiveView.Days...)
		c.ActiveView = &view
	}
	return c
}

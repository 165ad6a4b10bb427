package widget

import (
	"context"

	"weather-widget/internal/domain/entity"
)

type UseCase interface {
	// Init restores the session's recent searches, renders them and searches the default city
	Init(ctx context.Context) error

	// Search fetches the forecast for city and, on success, makes it the active view
	Search(ctx context.Context, city string) error

	// UpdateSuggestions refreshes the autocomplete dropdown for the typed query
	UpdateSuggestions(ctx context.Context, query string) ([]entity.Suggestion, error)

	// SelectSuggestion hides the dropdown and searches the chosen city
	SelectSuggestion(ctx context.Context, name string) error

	// SelectRecentSearch searches a city from the recent list
	SelectRecentSearch(ctx context.Context, name string) error

	// HideSuggestions closes the dropdown without touching its contents
	HideSuggestions()

	// SetUnit switches the temperature unit and re-renders every panel
	SetUnit(unit string) error

	// Snapshot returns a copy of the current state
	Snapshot() entity.WidgetState
}

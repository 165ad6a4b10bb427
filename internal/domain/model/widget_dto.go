package model

import "weather-widget/internal/domain/entity"

type SelectCityDTO struct {
	Name string `json:"name" validate:"required"`
}

type UnitDTO struct {
	Unit string `json:"unit" validate:"required"`
}

type RecentSearchDTO struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type SuggestionsDTO struct {
	Query       string              `json:"query"`
	Suggestions []entity.Suggestion `json:"suggestions"`
	Visible     bool                `json:"visible"`
}

// ErrorStateDTO is returned when a search fails so the page can keep showing the previous state
type ErrorStateDTO struct {
	Error string             `json:"error"`
	State entity.WidgetState `json:"state"`
}

package controller

import (
	"bytes"
	"errors"
	"net/http"

	"weather-widget/internal/application/middleware"
	"weather-widget/internal/application/registry"
	"weather-widget/internal/domain/model"
	"weather-widget/pkg/log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type WidgetController struct {
	api      *echo.Group
	registry *registry.Registry
	basePath string
}

func NewWidgetController(api *echo.Group, registry *registry.Registry, basePath string) *WidgetController {
	return &WidgetController{api: api, registry: registry, basePath: basePath}
}

// InitWidgetRoutes initializes the page and widget API routes
func (controller *WidgetController) InitWidgetRoutes() {
	controller.api.GET("", controller.Page)
	controller.api.GET("/", controller.Page)
	controller.api.GET("/api/state", controller.State)
	controller.api.GET("/api/panels", controller.Panels)
	controller.api.GET("/api/weather", controller.Search)
	controller.api.GET("/api/suggestions", controller.UpdateSuggestions)
	controller.api.DELETE("/api/suggestions", controller.HideSuggestions)
	controller.api.POST("/api/suggestions/select", controller.SelectSuggestion)
	controller.api.GET("/api/recent", controller.RecentSearches)
	controller.api.POST("/api/recent/select", controller.SelectRecentSearch)
	controller.api.PUT("/api/unit", controller.SetUnit)
}

// widget returns the session's widget once its Init has finished
func (controller *WidgetController) widget(c echo.Context) *registry.Widget {
	w, _ := controller.registry.GetOrCreate(middleware.SessionID(c))
	if err := w.Init(c.Request().Context()); err != nil && !errors.Is(err, model.ErrStaleResponse) {
		log.Warn("Widget initialized without weather", zap.String("session_id", w.SessionID), zap.Error(err))
	}
	return w
}

// Page godoc
// @Summary Widget page
// @Description Full HTML page of the session's widget. A city parameter searches it first, like pressing Enter in the search box.
// @Tags widget
// @Produce html
// @Param city query string false "City to search"
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (controller *WidgetController) Page(c echo.Context) error {
	w := controller.widget(c)

	if city := c.QueryParam("city"); city != "" {
		w.App.HideSuggestions()
		// failures are already rendered into the error panel
		_ = w.App.Search(c.Request().Context(), city)
	}

	var buf bytes.Buffer
	if err := w.View.WritePage(&buf, controller.basePath); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// State godoc
// @Summary Widget state
// @Description Snapshot of the session's widget state
// @Tags widget
// @Produce json
// @Success 200 {object} entity.WidgetState "Current state"
// @Router /api/state [get]
func (controller *WidgetController) State(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.widget(c).App.Snapshot())
}

// Panels godoc
// @Summary Rendered panels
// @Description HTML fragments of every page element keyed by element id
// @Tags widget
// @Produce json
// @Success 200 {object} map[string]object "Panels by element id"
// @Router /api/panels [get]
func (controller *WidgetController) Panels(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.widget(c).View.Panels())
}

// Search godoc
// @Summary Search a city
// @Description Fetches the forecast for a city and makes it the active view
// @Tags widget
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} entity.WidgetState "Updated state"
// @Failure 400 {object} map[string]string "City missing"
// @Failure 409 {object} model.ErrorStateDTO "Superseded by a newer search"
// @Failure 502 {object} model.ErrorStateDTO "Weather API failure"
// @Router /api/weather [get]
func (controller *WidgetController) Search(c echo.Context) error {
	w := controller.widget(c)
	err := w.App.Search(c.Request().Context(), c.QueryParam("city"))
	return controller.searchResponse(c, w, err)
}

// UpdateSuggestions godoc
// @Summary City suggestions
// @Description Autocomplete for the typed query. Queries shorter than two characters hide the list.
// @Tags widget
// @Produce json
// @Param q query string false "Typed query"
// @Success 200 {object} model.SuggestionsDTO "Suggestions"
// @Failure 409 {object} map[string]string "Superseded by a newer query"
// @Router /api/suggestions [get]
func (controller *WidgetController) UpdateSuggestions(c echo.Context) error {
	w := controller.widget(c)
	query := c.QueryParam("q")

	suggestions, err := w.App.UpdateSuggestions(c.Request().Context(), query)
	if errors.Is(err, model.ErrStaleResponse) {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, model.SuggestionsDTO{
		Query:       query,
		Suggestions: suggestions,
		Visible:     w.App.Snapshot().SuggestionsVisible,
	})
}

// HideSuggestions godoc
// @Summary Hide suggestions
// @Description Closes the suggestion dropdown (blur, click outside)
// @Tags widget
// @Success 204 "Hidden"
// @Router /api/suggestions [delete]
func (controller *WidgetController) HideSuggestions(c echo.Context) error {
	controller.widget(c).App.HideSuggestions()
	return c.NoContent(http.StatusNoContent)
}

// SelectSuggestion godoc
// @Summary Select a suggestion
// @Description Hides the dropdown and searches the chosen city
// @Tags widget
// @Accept json
// @Produce json
// @Param request body model.SelectCityDTO true "Chosen city"
// @Success 200 {object} entity.WidgetState "Updated state"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 502 {object} model.ErrorStateDTO "Weather API failure"
// @Router /api/suggestions/select [post]
func (controller *WidgetController) SelectSuggestion(c echo.Context) error {
	var request model.SelectCityDTO
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	w := controller.widget(c)
	err := w.App.SelectSuggestion(c.Request().Context(), request.Name)
	return controller.searchResponse(c, w, err)
}

// RecentSearches godoc
// @Summary Recent searches
// @Description Most recent first; the entry equal to the current city is active
// @Tags widget
// @Produce json
// @Success 200 {array} model.RecentSearchDTO "Recent searches"
// @Router /api/recent [get]
func (controller *WidgetController) RecentSearches(c echo.Context) error {
	state := controller.widget(c).App.Snapshot()

	recent := make([]model.RecentSearchDTO, 0, len(state.RecentSearches))
	for _, name := range state.RecentSearches {
		recent = append(recent, model.RecentSearchDTO{Name: name, Active: name == state.CurrentCity})
	}
	return c.JSON(http.StatusOK, recent)
}

// SelectRecentSearch godoc
// @Summary Select a recent search
// @Description Searches a city from the recent list
// @Tags widget
// @Accept json
// @Produce json
// @Param request body model.SelectCityDTO true "Chosen city"
// @Success 200 {object} entity.WidgetState "Updated state"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 502 {object} model.ErrorStateDTO "Weather API failure"
// @Router /api/recent/select [post]
func (controller *WidgetController) SelectRecentSearch(c echo.Context) error {
	var request model.SelectCityDTO
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	w := controller.widget(c)
	err := w.App.SelectRecentSearch(c.Request().Context(), request.Name)
	return controller.searchResponse(c, w, err)
}

// SetUnit godoc
// @Summary Set temperature unit
// @Description Switches between C and F and re-renders every panel
// @Tags widget
// @Accept json
// @Produce json
// @Param request body model.UnitDTO true "Unit"
// @Success 200 {object} entity.WidgetState "Updated state"
// @Failure 400 {object} map[string]string "Unknown unit"
// @Router /api/unit [put]
func (controller *WidgetController) SetUnit(c echo.Context) error {
	var request model.UnitDTO
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	w := controller.widget(c)
	if err := w.App.SetUnit(request.Unit); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, w.App.Snapshot())
}

func (controller *WidgetController) searchResponse(c echo.Context, w *registry.Widget, err error) error {
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, w.App.Snapshot())
	case model.IsValidationError(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, model.ErrStaleResponse):
		return c.JSON(http.StatusConflict, model.ErrorStateDTO{Error: err.Error(), State: w.App.Snapshot()})
	case model.IsNetworkError(err):
		state := w.App.Snapshot()
		return c.JSON(http.StatusBadGateway, model.ErrorStateDTO{Error: state.LastError, State: state})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

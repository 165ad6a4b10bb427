package controller

import (
	"net/http"

	"weather-widget/internal/domain/model"
	"weather-widget/internal/domain/usecase/weather"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/api/weather/current", controller.FindCurrent)
}

// FindCurrent godoc
// @Summary Get current conditions
// @Description Current conditions for a city. Does not change the widget state.
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} entity.CurrentWeather "Current conditions"
// @Failure 400 {object} map[string]string "City missing"
// @Failure 502 {object} map[string]string "Weather API failure"
// @Router /api/weather/current [get]
func (controller *WeatherController) FindCurrent(c echo.Context) error {
	current, err := controller.useCase.FindCurrent(c.Request().Context(), c.QueryParam("city"))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, current)
	case model.IsValidationError(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case model.IsNetworkError(err):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

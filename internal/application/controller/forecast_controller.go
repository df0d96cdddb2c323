package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-finder/internal/application/widget"
	"weather-finder/internal/domain/usecase/forecast"
	"weather-finder/pkg/msg"
	"weather-finder/pkg/util/stringutils"
)

type ForecastController struct {
	api     *echo.Group
	useCase forecast.UseCase
}

func NewForecastController(api *echo.Group, useCase forecast.UseCase) *ForecastController {
	return &ForecastController{api: api, useCase: useCase}
}

// InitForecastRoutes initializes the forecast JSON routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/api/forecast", controller.GetForecast)
}

// GetForecast godoc
// @Summary Get the five day forecast of a city
// @Description Look the city up on OpenWeatherMap and return one entry per day, temperatures in Celsius
// @Tags forecast
// @Produce json
// @Param city query string true "City name, optionally with a country code (e.g. London,GB)"
// @Success 200 {object} entity.Forecast "City, country and one entry per day"
// @Failure 400 {object} map[string]string "City is missing or blank"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 429 {object} map[string]string "Too many searches"
// @Router /api/forecast [get]
func (controller *ForecastController) GetForecast(c echo.Context) error {
	city := c.QueryParam("city")
	if stringutils.IsBlank(city) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("forecast.city-required")})
	}

	var state widget.SearchState
	state.SetInput(city)
	state.Commit()

	found, err := controller.useCase.Lookup(c.Request().Context(), state.ActiveCity)
	if err != nil {
		if errors.Is(err, forecast.ErrCityNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("forecast.city-not-found")})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, found)
}

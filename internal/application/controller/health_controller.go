package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-finder/internal/domain/model"
	"weather-finder/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth)
}

// CheckHealth godoc
// @Summary Health check
// @Description Report whether the weather provider and the search rate limiter are reachable
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "Every component is up"
// @Failure 503 {object} model.HealthResponse "At least one component is down"
// @Router /health [get]
func (controller *HealthController) CheckHealth(c echo.Context) error {
	healthResponse := controller.useCase.CheckHealth(c.Request().Context())

	if healthResponse.Status != model.StatusUp {
		return c.JSON(http.StatusServiceUnavailable, healthResponse)
	}
	return c.JSON(http.StatusOK, healthResponse)
}

package controller

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-finder/internal/application/widget"
	"weather-finder/internal/domain/usecase/forecast"
)

//go:embed templates/widget.html
var templates embed.FS

var widgetTemplate = template.Must(template.ParseFS(templates, "templates/widget.html"))

type WidgetController struct {
	api     *echo.Group
	useCase forecast.UseCase
}

func NewWidgetController(api *echo.Group, useCase forecast.UseCase) *WidgetController {
	return &WidgetController{api: api, useCase: useCase}
}

// InitWidgetRoutes initializes the web widget page
func (controller *WidgetController) InitWidgetRoutes() {
	controller.api.GET("/", controller.RenderWidget)
}

// RenderWidget serves the widget page. A non-blank city query parameter is
// searched before rendering. Every request starts from a fresh state.
func (controller *WidgetController) RenderWidget(c echo.Context) error {
	var state widget.SearchState
	state.SetInput(c.QueryParam("city"))
	state.Search(c.Request().Context(), controller.useCase)

	var page bytes.Buffer
	if err := widgetTemplate.Execute(&page, widget.NewView(state)); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, page.Bytes())
}

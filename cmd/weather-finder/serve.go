package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-finder/docs"
	"weather-finder/internal/application/controller"
	"weather-finder/internal/application/middleware"
	"weather-finder/pkg/log"
	"weather-finder/pkg/msg"
	"weather-finder/pkg/resource"
	"weather-finder/pkg/util/numberutils"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web widget and the JSON forecast API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(os.Stdout)
			defer log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	app, err := newApplication()
	if err != nil {
		return err
	}

	limiter, closeLimiter, err := newLimiter()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLimiter(); err != nil {
			log.Warn(msg.GetMessage("app.stop-fail", err))
		}
	}()
	log.Info(msg.GetMessage("ratelimit.ready", limiter.Name(), resource.GetInt("ratelimit.requests-per-minute")))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupRequestLogger(e)

	contextPath := strings.TrimRight(resource.GetStringOrDefault("app.server.context-path", "/"), "/")
	docs.SwaggerInfo.BasePath = contextPath + "/"

	root := e.Group(contextPath)
	search := e.Group(contextPath, middleware.RateLimit(limiter))

	// Init Controller
	healthController := controller.NewHealthController(root, app.healthUseCase(limiter))
	widgetController := controller.NewWidgetController(search, app.forecastUseCase)
	forecastController := controller.NewForecastController(search, app.forecastUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	widgetController.InitWidgetRoutes()
	forecastController.InitForecastRoutes()
	root.GET("/swagger/*", echoSwagger.WrapHandler)

	port := numberutils.ToIntWithDefault(resource.GetString("app.server.port"), 8080)
	errCh := make(chan error, 1)
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + strconv.Itoa(port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), durationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.stop-fail", err))
		return err
	}

	log.Info(msg.GetMessage("app.stopped"))
	return nil
}

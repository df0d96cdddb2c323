package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-finder/pkg/log"
	"weather-finder/pkg/msg"
	"weather-finder/pkg/ratelimit"
)

// RateLimit rejects searches above the limiter's allowance per client IP.
// Requests without a city are not searches and pass through.
// A failing limiter backend lets the request through.
func RateLimit(limiter ratelimit.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.QueryParam("city") == "" {
				return next(c)
			}

			key := c.RealIP()
			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn(msg.GetMessage("ratelimit.unavailable", limiter.Name(), err),
					zap.String("remote_ip", key),
					zap.Error(err))
				return next(c)
			}

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": msg.GetMessage("ratelimit.exceeded")})
			}

			return next(c)
		}
	}
}

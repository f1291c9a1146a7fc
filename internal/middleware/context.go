package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/accounting-sync/pkg/logger"
	"github.com/labstack/echo/v4"
)

const HeaderTraceID = "X-Trace-ID"

// TraceID puts the caller's X-Trace-ID, or a fresh one, on the request context and echoes
// it back so a queued job can be correlated with the request that created it.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(HeaderTraceID)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(HeaderTraceID, traceID)

			return next(c)
		}
	}
}

// TeamContext copies the :team_id path parameter into the request context for logging.
func TeamContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if teamID := c.Param("team_id"); teamID != "" {
				ctx := logger.WithTeamID(c.Request().Context(), teamID)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}

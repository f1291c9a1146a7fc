package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	if checks == nil {
		checks = map[string]Pinger{}
	}
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "ok"
	code := http.StatusOK
	deps := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			deps[name] = err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	return c.JSON(code, map[string]interface{}{
		"status":       status,
		"dependencies": deps,
		"timestamp":    time.Now().Format(time.RFC3339),
	})
}

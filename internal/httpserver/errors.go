package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marcelly-ramos/projeto-backend/internal/query"
	"github.com/marcelly-ramos/projeto-backend/internal/service"
)

// failure logs err under event and turns it into the HTTP error the client
// sees. Internal errors get the generic message only.
func failure(l *slog.Logger, event string, err error, internalMsg string) error {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, query.ErrInvalidParameter):
		l.Warn(event, "status", 400, "reason", "invalid request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		l.Warn(event, "status", 404, "reason", "not found", "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrConflict):
		l.Warn(event, "status", 409, "reason", "duplicate", "error", err)
		return echo.NewHTTPError(http.StatusConflict, "already exists")
	default:
		l.Error(event, "status", 500, "reason", internalMsg, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, internalMsg)
	}
}

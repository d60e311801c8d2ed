package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marcelly-ramos/projeto-backend/internal/logging"
	"github.com/marcelly-ramos/projeto-backend/internal/service"
	"github.com/marcelly-ramos/projeto-backend/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_user_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	user, err := h.Svc.Get(ctx, id)
	if err != nil {
		return failure(l, "get_user_error", err, "cannot get user")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create")

	var req transport.UserSignupRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("create_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "all fields are required")
	}

	token, err := h.Svc.Register(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordMismatch) {
			l.Warn("create_user_error", "status", 400, "reason", "passwords do not match")
			return echo.NewHTTPError(http.StatusBadRequest, "passwords do not match")
		}
		return failure(l, "create_user_error", err, "cannot create user")
	}

	l.Info("create_user_success")
	return c.JSON(http.StatusCreated, transport.TokenResponse{Token: token})
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_user_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	var req transport.UserUpdateRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("update_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "all fields are required")
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return failure(l, "update_user_error", err, "cannot update user")
	}

	l.Info("update_user_success", "user_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_user_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return failure(l, "delete_user_error", err, "cannot delete user")
	}

	l.Info("delete_user_success", "user_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHTTP) CreateToken(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.token")

	var req transport.TokenRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("token_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	token, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("token_error", "status", 400, "reason", "invalid credentials")
			return echo.NewHTTPError(http.StatusBadRequest, "invalid email or password")
		}
		l.Error("token_error", "status", 500, "reason", "cannot issue token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot issue token")
	}

	l.Info("token_success")
	return c.JSON(http.StatusOK, transport.TokenResponse{Token: token})
}

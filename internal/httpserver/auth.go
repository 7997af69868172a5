package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopdeck/storefront/internal/events"
	"github.com/shopdeck/storefront/internal/logging"
	"github.com/shopdeck/storefront/internal/middleware/auth"
	"github.com/shopdeck/storefront/internal/service"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *events.Producer
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "All fields required")
		case errors.Is(err, service.ErrConflict):
			return echo.NewHTTPError(http.StatusBadRequest, "Email already exists")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Server error: "+err.Error())
		}
	}

	h.publish(c, events.TopicUserEvents, fmt.Sprint(res.User.ID), echo.Map{
		"type":    "user_registered",
		"user_id": res.User.ID,
		"email":   res.User.Email,
		"role":    res.User.Role,
	})

	l.Info("registered", "user_id", res.User.ID)
	return c.JSON(http.StatusCreated, res)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	h.publish(c, events.TopicUserEvents, fmt.Sprint(res.User.ID), echo.Map{
		"type":    "user_logged_in",
		"user_id": res.User.ID,
	})

	l.Info("logged_in", "user_id", res.User.ID)
	return c.JSON(http.StatusOK, res)
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	user, err := h.Svc.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) publish(c echo.Context, topic, key string, event any) {
	ctx := c.Request().Context()
	if err := h.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", topic, "error", err)
	}
}

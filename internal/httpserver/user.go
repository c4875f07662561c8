package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_service/internal/logging"
	"github.com/Skotchmaster/catalog_service/internal/mykafka"
	"github.com/Skotchmaster/catalog_service/internal/service"
)

type UserHTTP struct {
	Svc      *service.UserService
	Producer *mykafka.Producer
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	items, err := h.Svc.GetUsers(ctx)
	if err != nil {
		l.Error("get_users_failed", "status", 400, "reason", "cannot read users", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not load the users")
	}

	return c.JSON(http.StatusOK, items)
}

// Register is public. Whatever role the body carries, the stored user is a
// customer, and the password never round-trips back.
func (h *UserHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.register")

	var req service.Credentials
	if err := c.Bind(&req); err != nil {
		l.Warn("user_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("user_create_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		// duplicate usernames fail the unique index and land here
		l.Error("user_create_error", "status", 400, "reason", "cannot add user to db", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not create the user")
	}

	publish(c, h.Producer, mykafka.TopicUserEvents, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	l.Info("register_success", "userID", user.ID)
	return c.JSON(http.StatusCreated, user)
}

// Login answers bad credentials with 404, matching the original contract.
func (h *UserHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.login")

	var req service.Credentials
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	result, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrValidation) {
			l.Warn("login_failed", "status", 404, "reason", "invalid username or password")
			return echo.NewHTTPError(http.StatusNotFound, "invalid username or password")
		}
		l.Error("login_failed", "status", 400, "reason", "cannot verify credentials", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not log in")
	}

	publish(c, h.Producer, mykafka.TopicUserEvents, fmt.Sprint(result.User.ID), map[string]any{
		"type":     "user_logged_in",
		"userID":   result.User.ID,
		"username": result.User.Username,
	})

	l.Info("login_success", "userID", result.User.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"user":  result.User,
		"token": result.Token,
	})
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update_user")

	id, err := parseID(c)
	if err != nil {
		l.Warn("user_update_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var req service.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("user_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.UpdateUser(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("user_update_error", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("user_update_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStaleWrite):
			l.Warn("user_update_error", "status", 409, "reason", "stale version")
			return echo.NewHTTPError(http.StatusConflict, "this record was already updated")
		default:
			l.Error("user_update_error", "status", 400, "reason", "cannot update user", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "could not update the user")
		}
	}

	publish(c, h.Producer, mykafka.TopicUserEvents, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_updated",
		"userID":   user.ID,
		"username": user.Username,
	})

	l.Info("update_user_success", "userID", user.ID)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.delete_user")

	id, err := parseID(c)
	if err != nil {
		l.Warn("user_delete_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	if err := h.Svc.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("user_delete_error", "status", 404, "reason", "user not found")
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		l.Error("user_delete_error", "status", 400, "reason", "cannot delete user", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not delete the user")
	}

	publish(c, h.Producer, mykafka.TopicUserEvents, fmt.Sprint(id), map[string]any{
		"type":   "user_deleted",
		"userID": id,
	})

	l.Info("delete_user_success", "userID", id)
	return c.JSON(http.StatusOK, Message{Message: "user removed"})
}

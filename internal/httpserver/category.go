package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/catalog_service/internal/logging"
	"github.com/Skotchmaster/catalog_service/internal/models"
	"github.com/Skotchmaster/catalog_service/internal/mykafka"
	"github.com/Skotchmaster/catalog_service/internal/service"
)

type CategoryHTTP struct {
	Svc      *service.CategoryService
	Producer *mykafka.Producer
}

func (h *CategoryHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_categories")

	items, err := h.Svc.GetCategories(ctx)
	if err != nil {
		l.Error("get_categories_failed", "status", 400, "reason", "cannot read categories", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not load the categories")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_category")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_category_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	category, err := h.Svc.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_category_failed", "status", 404, "reason", "category not found")
			return echo.NewHTTPError(http.StatusNotFound, "category not found")
		}
		l.Error("get_category_failed", "status", 400, "reason", "cannot read category", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not load the category")
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create_category")

	var category models.Category
	if err := c.Bind(&category); err != nil {
		l.Warn("category_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	category.ID = 0

	if err := h.Svc.CreateCategory(ctx, &category); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("category_create_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("category_create_error", "status", 400, "reason", "cannot add category to db", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not create the category")
	}

	publish(c, h.Producer, mykafka.TopicCategoryEvents, fmt.Sprint(category.ID), map[string]any{
		"type":       "category_created",
		"categoryID": category.ID,
		"name":       category.Name,
	})

	l.Info("create_category_success", "categoryID", category.ID)
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update_category")

	id, err := parseID(c)
	if err != nil {
		l.Warn("category_update_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var category models.Category
	if err := c.Bind(&category); err != nil {
		l.Warn("category_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateCategory(ctx, id, &category); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("category_update_error", "status", 404, "reason", "category not found")
			return echo.NewHTTPError(http.StatusNotFound, "category not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("category_update_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStaleWrite):
			l.Warn("category_update_error", "status", 409, "reason", "stale version")
			return echo.NewHTTPError(http.StatusConflict, "this record was already updated")
		default:
			l.Error("category_update_error", "status", 400, "reason", "cannot update category", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "could not update the category")
		}
	}

	publish(c, h.Producer, mykafka.TopicCategoryEvents, fmt.Sprint(category.ID), map[string]any{
		"type":       "category_updated",
		"categoryID": category.ID,
		"name":       category.Name,
	})

	l.Info("update_category_success", "categoryID", category.ID)
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete_category")

	id, err := parseID(c)
	if err != nil {
		l.Warn("category_delete_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	if err := h.Svc.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("category_delete_error", "status", 404, "reason", "category not found")
			return echo.NewHTTPError(http.StatusNotFound, "category not found")
		}
		// dependent products keep the row alive via the FK constraint
		l.Error("category_delete_error", "status", 400, "reason", "cannot delete category", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not delete the category")
	}

	publish(c, h.Producer, mykafka.TopicCategoryEvents, fmt.Sprint(id), map[string]any{
		"type":       "category_deleted",
		"categoryID": id,
	})

	l.Info("delete_category_success", "categoryID", id)
	return c.JSON(http.StatusOK, Message{Message: "category removed"})
}

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

type ProductHTTP struct {
	Svc      *service.ProductService
	Producer *mykafka.Producer
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.GetProducts(ctx)
	if err != nil {
		l.Error("get_products_failed", "status", 400, "reason", "cannot read products", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not load the products")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_failed", "status", 400, "reason", "cannot read product", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not load the product")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) GetProductsByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_by_category")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_by_category_failed", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	items, err := h.Svc.GetProductsByCategory(ctx, id)
	if err != nil {
		l.Error("get_by_category_failed", "status", 400, "reason", "cannot read products", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not load the products")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var product models.Product
	if err := c.Bind(&product); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	product.ID = 0

	if err := h.Svc.CreateProduct(ctx, &product); err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		// an unknown category_id fails the FK constraint and lands here too
		l.Error("product_create_error", "status", 400, "reason", "cannot add product to db", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not create the product")
	}

	publish(c, h.Producer, mykafka.TopicProductEvents, fmt.Sprint(product.ID), map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	l.Info("create_product_success", "productID", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	var product models.Product
	if err := c.Bind(&product); err != nil {
		l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	product.Category = nil

	if err := h.Svc.UpdateProduct(ctx, id, &product); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("product_update_error", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("product_update_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStaleWrite):
			l.Warn("product_update_error", "status", 409, "reason", "stale version")
			return echo.NewHTTPError(http.StatusConflict, "this record was already updated")
		default:
			l.Error("product_update_error", "status", 400, "reason", "cannot update product", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "could not update the product")
		}
	}

	publish(c, h.Producer, mykafka.TopicProductEvents, fmt.Sprint(product.ID), map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})

	l.Info("update_product_success", "productID", product.ID)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("product_delete_error", "status", 400, "reason", "id is not integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("product_delete_error", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("product_delete_error", "status", 400, "reason", "cannot delete product", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "could not delete the product")
	}

	publish(c, h.Producer, mykafka.TopicProductEvents, fmt.Sprint(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("delete_product_success", "productID", id)
	return c.JSON(http.StatusOK, Message{Message: "product removed"})
}

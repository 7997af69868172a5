package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopdeck/storefront/internal/events"
	"github.com/shopdeck/storefront/internal/logging"
	"github.com/shopdeck/storefront/internal/models"
	"github.com/shopdeck/storefront/internal/search"
	"github.com/shopdeck/storefront/internal/service"
)

type ProductHTTP struct {
	Svc      *service.CatalogService
	Producer *events.Producer
	Indexer  *search.Indexer
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.Svc.GetProducts(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	}
	if err := h.Svc.CreateProduct(ctx, &prod); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "All fields required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.index(c, prod)
	h.publish(c, fmt.Sprint(prod.ID), echo.Map{
		"type":       "product_created",
		"product_id": prod.ID,
		"name":       prod.Name,
	})

	l.Info("product_created", "product_id", prod.ID)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "id": prod.ID})
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod := models.Product{
		ID:          uint(id),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	}
	if err := h.Svc.UpdateProduct(ctx, &prod); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.index(c, prod)
	h.publish(c, fmt.Sprint(prod.ID), echo.Map{
		"type":       "product_updated",
		"product_id": prod.ID,
		"name":       prod.Name,
	})

	l.Info("product_updated", "product_id", prod.ID)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.Svc.DeleteProduct(ctx, uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.Indexer.DeleteProduct(ctx, uint(id)); err != nil {
		logging.FromContext(ctx).Error("search index error", "error", err)
	}
	h.publish(c, fmt.Sprint(id), echo.Map{
		"type":       "product_deleted",
		"product_id": id,
	})

	l.Info("product_deleted", "product_id", id)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *ProductHTTP) index(c echo.Context, prod models.Product) {
	ctx := c.Request().Context()
	if err := h.Indexer.IndexProduct(ctx, prod); err != nil {
		logging.FromContext(ctx).Error("search index error", "product_id", prod.ID, "error", err)
	}
}

func (h *ProductHTTP) publish(c echo.Context, key string, event any) {
	ctx := c.Request().Context()
	if err := h.Producer.PublishEvent(ctx, events.TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", events.TopicProductEvents, "error", err)
	}
}

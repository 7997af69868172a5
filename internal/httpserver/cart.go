package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopdeck/storefront/internal/events"
	"github.com/shopdeck/storefront/internal/logging"
	"github.com/shopdeck/storefront/internal/middleware/auth"
	"github.com/shopdeck/storefront/internal/service"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	lines, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, lines)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req struct {
		ProductID uint  `json:"productId"`
		Quantity  int64 `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddToCart(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "productId required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, userID, echo.Map{
		"type":       "cart_item_added",
		"user_id":    userID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	l.Info("cart_item_added", "user_id", userID, "product_id", item.ProductID)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *CartHTTP) SetQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req struct {
		Quantity int64 `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.SetQuantity(ctx, userID, uint(productID), req.Quantity); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "productId required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, userID, echo.Map{
		"type":       "cart_quantity_set",
		"user_id":    userID,
		"product_id": productID,
		"quantity":   req.Quantity,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.Svc.RemoveFromCart(ctx, userID, uint(productID)); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "productId required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, userID, echo.Map{
		"type":       "cart_item_removed",
		"user_id":    userID,
		"product_id": productID,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *CartHTTP) publish(c echo.Context, userID uint, event any) {
	ctx := c.Request().Context()
	if err := h.Producer.PublishEvent(ctx, events.TopicCartEvents, fmt.Sprint(userID), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", events.TopicCartEvents, "error", err)
	}
}

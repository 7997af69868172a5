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

type WishlistHTTP struct {
	Svc      *service.WishlistService
	Producer *events.Producer
}

func (h *WishlistHTTP) GetWishlist(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	lines, err := h.Svc.GetWishlist(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, lines)
}

func (h *WishlistHTTP) AddToWishlist(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.add")

	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	var req struct {
		ProductID uint `json:"productId"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddToWishlist(ctx, userID, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "productId required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, userID, echo.Map{
		"type":       "wishlist_item_added",
		"user_id":    userID,
		"product_id": req.ProductID,
	})

	l.Info("wishlist_item_added", "user_id", userID, "product_id", req.ProductID)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "id": item.ID})
}

func (h *WishlistHTTP) RemoveFromWishlist(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := auth.UserID(c)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.Svc.RemoveFromWishlist(ctx, userID, uint(productID)); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "productId required")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.publish(c, userID, echo.Map{
		"type":       "wishlist_item_removed",
		"user_id":    userID,
		"product_id": productID,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *WishlistHTTP) publish(c echo.Context, userID uint, event any) {
	ctx := c.Request().Context()
	if err := h.Producer.PublishEvent(ctx, events.TopicWishlistEvents, fmt.Sprint(userID), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", events.TopicWishlistEvents, "error", err)
	}
}

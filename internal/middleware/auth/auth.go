// Package auth guards endpoints behind the bearer token. A missing credential
// is 401, a bad or expired one is 403. The token is trusted for identity only;
// admin gating re-reads the role from the store on every request, so a role
// change takes effect before the token expires.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/shopdeck/storefront/internal/models"
	"github.com/shopdeck/storefront/internal/repo"
	"github.com/shopdeck/storefront/internal/tokens"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

type Guard struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (g *Guard) authenticate(c echo.Context) (uint, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if tokenStr == header || tokenStr == "" {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	claims, err := tokens.AccessClaimsFromToken(tokenStr, g.JWTSecret)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
	}
	userID, err := claims.UserID()
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
	}

	c.Set(CtxUserID, userID)
	c.Set(CtxEmail, claims.Email)
	c.Set(CtxRole, claims.Role)
	return userID, nil
}

func (g *Guard) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := g.authenticate(c); err != nil {
			return err
		}
		return next(c)
	}
}

func (g *Guard) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := g.authenticate(c)
		if err != nil {
			return err
		}

		role, err := g.Repo.RoleByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
		}
		return next(c)
	}
}

// UserID returns the authenticated caller's id set by the guard.
func UserID(c echo.Context) (uint, error) {
	id, ok := c.Get(CtxUserID).(uint)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	return id, nil
}

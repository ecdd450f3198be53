package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mashiroreo/qr-menu-backend/pkg/models"
	"gorm.io/gorm"
)

// StoreResolver resolves the store the authenticated owner may act on and
// stores its ID in the request context. System admins address any store via
// the X-Store-ID header.
func StoreResolver(db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("user_role").(string)

			if role == "system_admin" {
				header := c.Request().Header.Get("X-Store-ID")
				if header == "" {
					return echo.NewHTTPError(http.StatusBadRequest, "X-Store-ID header required for system admins")
				}
				storeID, err := uuid.Parse(header)
				if err != nil {
					return echo.NewHTTPError(http.StatusBadRequest, "invalid X-Store-ID header")
				}
				c.Set("store_id", storeID)
				return next(c)
			}

			userID, ok := c.Get("user_id").(uuid.UUID)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not resolved")
			}

			var store models.Store
			if err := db.Where("owner_id = ?", userID).First(&store).Error; err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "no store associated with this account")
			}

			c.Set("store_id", store.ID)
			return next(c)
		}
	}
}

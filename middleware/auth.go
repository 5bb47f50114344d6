package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aitik-official/walnut-leather-sub000/utils"
)

const (
	UserCookie  = "wl_token"
	AdminCookie = "wl_admin_token"
)

// SetAuthCookie issues the HTTP-only session cookie after login/register.
func SetAuthCookie(c echo.Context, token string, isAdmin bool) {
	name := UserCookie
	ttl := utils.UserTokenTTL
	if isAdmin {
		name = AdminCookie
		ttl = utils.AdminTokenTTL
	}
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie expires the session cookie on logout.
func ClearAuthCookie(c echo.Context, isAdmin bool) {
	name := UserCookie
	if isAdmin {
		name = AdminCookie
	}
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// ClaimsFromCookie validates the named session cookie and returns its claims,
// or nil when the cookie is absent or invalid. The /me endpoints use this to
// answer with a null user instead of a 401.
func ClaimsFromCookie(c echo.Context, name string) *utils.Claims {
	cookie, err := c.Cookie(name)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := utils.ValidateJWT(cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}

// RequireUser guards shopper-only routes. On success the user's ObjectID is
// stored under "userID" in the echo context.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := ClaimsFromCookie(c, UserCookie)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID"})
		}

		c.Set("userID", userID)
		return next(c)
	}
}

// RequireAdmin guards the admin dashboard routes.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := ClaimsFromCookie(c, AdminCookie)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		}
		if !claims.IsAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Admin access required"})
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID"})
		}

		c.Set("userID", userID)
		return next(c)
	}
}

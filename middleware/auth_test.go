package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aitik-official/walnut-leather-sub000/middleware"
	"github.com/Aitik-official/walnut-leather-sub000/utils"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func request(t *testing.T, mw echo.MiddlewareFunc, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/protected", okHandler, mw)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// no cookie
	rec := request(t, middleware.RequireUser, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no cookie: want 401, got %d", rec.Code)
	}

	// garbage token
	rec = request(t, middleware.RequireUser, &http.Cookie{Name: middleware.UserCookie, Value: "nonsense"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: want 401, got %d", rec.Code)
	}

	// valid token
	token, err := utils.GenerateJWT(primitive.NewObjectID().Hex(), false)
	if err != nil {
		t.Fatal(err)
	}
	rec = request(t, middleware.RequireUser, &http.Cookie{Name: middleware.UserCookie, Value: token})
	if rec.Code != http.StatusOK {
		t.Fatalf("valid cookie: want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestRequireAdminRejectsShopperToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// a shopper token planted in the admin cookie must be refused
	token, err := utils.GenerateJWT(primitive.NewObjectID().Hex(), false)
	if err != nil {
		t.Fatal(err)
	}
	rec := request(t, middleware.RequireAdmin, &http.Cookie{Name: middleware.AdminCookie, Value: token})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("want 403, got %d", rec.Code)
	}
}

func TestRequireAdminAcceptsAdminToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT(primitive.NewObjectID().Hex(), true)
	if err != nil {
		t.Fatal(err)
	}
	rec := request(t, middleware.RequireAdmin, &http.Cookie{Name: middleware.AdminCookie, Value: token})
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

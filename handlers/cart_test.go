package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Aitik-official/walnut-leather-sub000/cart"
	"github.com/Aitik-official/walnut-leather-sub000/catalog"
	"github.com/Aitik-official/walnut-leather-sub000/handlers"
	"github.com/Aitik-official/walnut-leather-sub000/locale"
	"github.com/Aitik-official/walnut-leather-sub000/routes"
)

func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()
	return newTestAppWithTaxonomy(t, newMemTaxonomy())
}

// newTestAppWithTaxonomy keeps a handle on the category store so tests can
// seed referencing products directly.
func newTestAppWithTaxonomy(t *testing.T, tax *memTaxonomy) *echo.Echo {
	t.Helper()
	e := echo.New()
	h := handlers.NewHandler(
		cart.NewStore(),
		catalog.NewFixtureRepo(catalog.StaticCatalog()),
		tax,
		locale.Default(),
		t.TempDir(),
	)
	routes.SetupRoutes(e, h)
	return e
}

type cartResponse struct {
	Success bool        `json:"success"`
	Items   []cart.Item `json:"items"`
	Total   float64     `json:"total"`
	Count   int         `json:"count"`
}

// doCart sends a request reusing the session cookie from a prior response.
func doCart(t *testing.T, e *echo.Echo, method, path, body string, cookies []*http.Cookie) (*httptest.ResponseRecorder, cartResponse) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp cartResponse
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad cart response: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, resp
}

func TestCartFlow(t *testing.T) {
	e := newTestApp(t)

	rec, resp := doCart(t, e, http.MethodPost, "/api/cart",
		`{"productId":"a","name":"Belt","price":100}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("add: %d %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("first contact must mint a session cookie")
	}

	_, resp = doCart(t, e, http.MethodPost, "/api/cart",
		`{"productId":"a","name":"Belt","price":100}`, cookies)
	if resp.Count != 2 || resp.Total != 200 {
		t.Fatalf("after second add: count=%d total=%v", resp.Count, resp.Total)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("same product must not duplicate lines: %d", len(resp.Items))
	}

	_, resp = doCart(t, e, http.MethodPost, "/api/cart",
		`{"productId":"b","name":"Wallet","price":50}`, cookies)
	if resp.Count != 3 || resp.Total != 250 {
		t.Fatalf("after adding b: count=%d total=%v", resp.Count, resp.Total)
	}

	_, resp = doCart(t, e, http.MethodPut, "/api/cart/b/decrement", "", cookies)
	if resp.Count != 2 || len(resp.Items) != 1 {
		t.Fatalf("decrement to zero must remove the line: %+v", resp)
	}

	_, resp = doCart(t, e, http.MethodPut, "/api/cart/missing/decrement", "", cookies)
	if resp.Count != 2 {
		t.Fatalf("decrementing an absent id must be a no-op: %+v", resp)
	}

	_, resp = doCart(t, e, http.MethodDelete, "/api/cart/a", "", cookies)
	if resp.Count != 0 || resp.Total != 0 {
		t.Fatalf("remove: %+v", resp)
	}
}

func TestCartClear(t *testing.T) {
	e := newTestApp(t)

	rec, _ := doCart(t, e, http.MethodPost, "/api/cart",
		`{"productId":"a","name":"Belt","price":45}`, nil)
	cookies := rec.Result().Cookies()

	_, resp := doCart(t, e, http.MethodPost, "/api/cart/clear", "", cookies)
	if resp.Count != 0 || len(resp.Items) != 0 {
		t.Fatalf("clear: %+v", resp)
	}
}

func TestCartRejectsInvalidItems(t *testing.T) {
	e := newTestApp(t)

	rec, _ := doCart(t, e, http.MethodPost, "/api/cart", `{"name":"no id","price":5}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing product id: want 400, got %d", rec.Code)
	}

	rec, _ = doCart(t, e, http.MethodPost, "/api/cart", `{"productId":"x","name":"neg","price":-1}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("negative price: want 400, got %d", rec.Code)
	}
}

func TestCartsAreSessionScoped(t *testing.T) {
	e := newTestApp(t)

	recA, _ := doCart(t, e, http.MethodPost, "/api/cart",
		`{"productId":"a","name":"Belt","price":45}`, nil)

	// a fresh client gets its own empty cart
	_, resp := doCart(t, e, http.MethodGet, "/api/cart", "", nil)
	if resp.Count != 0 {
		t.Fatalf("new session should start empty, got count=%d", resp.Count)
	}

	_, resp = doCart(t, e, http.MethodGet, "/api/cart", "", recA.Result().Cookies())
	if resp.Count != 1 {
		t.Fatalf("original session lost its cart: %+v", resp)
	}
}

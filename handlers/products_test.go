package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aitik-official/walnut-leather-sub000/catalog"
)

type listingResponse struct {
	Success  bool              `json:"success"`
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
	Currency string            `json:"currency"`
}

func getListing(t *testing.T, path string) listingResponse {
	t.Helper()
	e := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: %d %s", path, rec.Code, rec.Body.String())
	}
	var resp listingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestListingFiltersByCategory(t *testing.T) {
	resp := getListing(t, "/api/products?category=Bags")
	if resp.Count == 0 {
		t.Fatal("fixture catalog has bags")
	}
	for _, p := range resp.Products {
		if p.Category != "Bags" {
			t.Fatalf("category filter leaked %s (%s)", p.ID, p.Category)
		}
	}
}

func TestListingPriceRange(t *testing.T) {
	resp := getListing(t, "/api/products?minPrice=50&maxPrice=200")
	for _, p := range resp.Products {
		if p.Price < 50 || p.Price > 200 {
			t.Fatalf("price filter leaked %s at %v", p.ID, p.Price)
		}
	}
}

func TestListingInStockOnly(t *testing.T) {
	resp := getListing(t, "/api/products?inStock=true")
	for _, p := range resp.Products {
		if p.Stock <= 0 {
			t.Fatalf("stock filter leaked %s", p.ID)
		}
	}
}

func TestListingCurrencyConversion(t *testing.T) {
	usd := getListing(t, "/api/products?search=Classic%20Leather%20Belt")
	eur := getListing(t, "/api/products?search=Classic%20Leather%20Belt&currency=EUR")

	if usd.Count != 1 || eur.Count != 1 {
		t.Fatalf("expected exactly the belt: usd=%d eur=%d", usd.Count, eur.Count)
	}
	if eur.Currency != "EUR" {
		t.Fatalf("currency echo: %s", eur.Currency)
	}
	if eur.Products[0].Price != 41.4 {
		t.Fatalf("45 USD at 0.92: want 41.4, got %v", eur.Products[0].Price)
	}
}

func TestListingLimit(t *testing.T) {
	resp := getListing(t, "/api/products?limit=2")
	if resp.Count != 2 {
		t.Fatalf("limit=2: got %d", resp.Count)
	}
}

func TestListingPaging(t *testing.T) {
	all := getListing(t, "/api/products?sort=price_asc")
	second := getListing(t, "/api/products?sort=price_asc&limit=2&page=2")

	if second.Count != 2 {
		t.Fatalf("limit=2&page=2: got %d products", second.Count)
	}
	// the second page is the third and fourth cheapest items
	if second.Products[0].ID != all.Products[2].ID || second.Products[1].ID != all.Products[3].ID {
		t.Fatalf("paging window: want %s,%s got %s,%s",
			all.Products[2].ID, all.Products[3].ID,
			second.Products[0].ID, second.Products[1].ID)
	}

	// a page past the end is empty, not an error
	past := getListing(t, "/api/products?limit=4&page=5")
	if past.Count != 0 {
		t.Fatalf("page past end: want 0 products, got %d", past.Count)
	}
}

func TestGetProductByStaticSlug(t *testing.T) {
	e := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/products/classic-belt", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("static slug lookup: %d %s", rec.Code, rec.Body.String())
	}

	var p catalog.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.Name != "Classic Leather Belt" {
		t.Fatalf("wrong product: %+v", p)
	}
}

func TestGetProductUnknownSlugIs404(t *testing.T) {
	e := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/products/no-such-item", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec.Code)
	}
}

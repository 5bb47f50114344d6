package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Aitik-official/walnut-leather-sub000/cart"
)

const cartSessionCookie = "wl_cart"

// cartSession returns the caller's cart session id, minting a new cookie on
// first contact. Carts need no login; the cookie alone scopes them.
func cartSession(c echo.Context) string {
	if cookie, err := c.Cookie(cartSessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	sid := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cartSessionCookie,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

func (h *Handler) cartView(c echo.Context, sid string) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"items":   h.Cart.Items(sid),
		"total":   h.Cart.Total(sid),
		"count":   h.Cart.Count(sid),
	})
}

func (h *Handler) GetCart(c echo.Context) error {
	return h.cartView(c, cartSession(c))
}

type AddCartRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

func (h *Handler) AddToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.ProductID == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product ID and name are required"})
	}
	if req.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Price cannot be negative"})
	}

	sid := cartSession(c)
	h.Cart.Add(sid, cart.Item{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
	})
	return h.cartView(c, sid)
}

func (h *Handler) IncrementCartItem(c echo.Context) error {
	sid := cartSession(c)
	h.Cart.Increment(sid, c.Param("productId"))
	return h.cartView(c, sid)
}

func (h *Handler) DecrementCartItem(c echo.Context) error {
	sid := cartSession(c)
	h.Cart.Decrement(sid, c.Param("productId"))
	return h.cartView(c, sid)
}

func (h *Handler) RemoveCartItem(c echo.Context) error {
	sid := cartSession(c)
	h.Cart.Remove(sid, c.Param("productId"))
	return h.cartView(c, sid)
}

func (h *Handler) ClearCart(c echo.Context) error {
	sid := cartSession(c)
	h.Cart.Clear(sid)
	return h.cartView(c, sid)
}

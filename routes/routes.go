package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aitik-official/walnut-leather-sub000/handlers"
	customMiddleware "github.com/Aitik-official/walnut-leather-sub000/middleware"
)

func SetupRoutes(e *echo.Echo, h *handlers.Handler) {
	// Auth
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/admin-login", h.AdminLogin)
	e.POST("/api/auth/logout", h.Logout)
	e.GET("/api/auth/me", h.Me)
	e.GET("/api/auth/admin-me", h.AdminMe)

	// Storefront catalog (public)
	e.GET("/api/products", h.GetProducts)
	e.GET("/api/products/:id", h.GetProduct)
	e.GET("/api/categories/main", h.GetMainCategories)
	e.GET("/api/categories/sub", h.GetSubCategories)
	e.GET("/api/meta/locales", h.GetLocales)

	// Session cart (public, cookie-scoped)
	e.GET("/api/cart", h.GetCart)
	e.POST("/api/cart", h.AddToCart)
	e.PUT("/api/cart/:productId/increment", h.IncrementCartItem)
	e.PUT("/api/cart/:productId/decrement", h.DecrementCartItem)
	e.DELETE("/api/cart/:productId", h.RemoveCartItem)
	e.POST("/api/cart/clear", h.ClearCart)

	// Checkout
	e.POST("/api/orders", h.CreateOrder)
	e.GET("/api/orders/:orderId", h.GetOrder)

	// Wishlist (authenticated shoppers)
	wishlist := e.Group("/api/wishlist", customMiddleware.RequireUser)
	wishlist.GET("", h.GetWishlist)
	wishlist.POST("", h.AddToWishlist)
	wishlist.DELETE("/:productId", h.RemoveFromWishlist)

	// Admin dashboard
	admin := e.Group("/api", customMiddleware.RequireAdmin)
	admin.GET("/orders", h.GetOrders)
	admin.PUT("/orders/:orderId/status", h.UpdateOrderStatus)
	admin.POST("/products", h.CreateProduct)
	admin.POST("/products/upload", h.UploadProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
	admin.POST("/categories/main", h.CreateMainCategory)
	admin.PUT("/categories/main/:id", h.UpdateMainCategory)
	admin.DELETE("/categories/main/:id", h.DeleteMainCategory)
	admin.POST("/categories/sub", h.CreateSubCategory)
	admin.PUT("/categories/sub/:id", h.UpdateSubCategory)
	admin.DELETE("/categories/sub/:id", h.DeleteSubCategory)

	// Operational endpoints
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

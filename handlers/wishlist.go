package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aitik-official/walnut-leather-sub000/database"
	"github.com/Aitik-official/walnut-leather-sub000/models"
)

// GetWishlist returns the authenticated user's saved products. The client
// treats this as its membership snapshot, so read failures degrade to an
// empty list rather than an error.
func (h *Handler) GetWishlist(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.DB.Collection("wishlist").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"items":   []models.WishlistItem{},
			"warning": "Wishlist could not be loaded",
		})
	}
	defer cursor.Close(ctx)

	items := []models.WishlistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode wishlist"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "items": items})
}

type AddWishlistRequest struct {
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductPrice    float64 `json:"productPrice"`
	ProductImage    string  `json:"productImage"`
	ProductCategory string  `json:"productCategory"`
}

// AddToWishlist saves a product for the user. A duplicate (userId,
// productId) pair is a recoverable 400, not a retryable failure.
func (h *Handler) AddToWishlist(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)

	var req AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.ProductID == "" || req.ProductName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product ID and name are required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := database.DB.Collection("wishlist")

	existing := collection.FindOne(ctx, bson.M{"userId": userID, "productId": req.ProductID})
	if existing.Err() == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product already in wishlist"})
	}

	item := models.WishlistItem{
		ID:              primitive.NewObjectID(),
		UserID:          userID,
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		ProductPrice:    req.ProductPrice,
		ProductImage:    req.ProductImage,
		ProductCategory: req.ProductCategory,
		CreatedAt:       time.Now(),
	}
	if _, err := collection.InsertOne(ctx, item); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to add to wishlist"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{"success": true, "item": item})
}

// RemoveFromWishlist deletes the user's saved product; 404 when absent.
func (h *Handler) RemoveFromWishlist(c echo.Context) error {
	userID := c.Get("userID").(primitive.ObjectID)
	productID := c.Param("productId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection("wishlist").DeleteOne(ctx, bson.M{"userId": userID, "productId": productID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove from wishlist"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not in wishlist"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

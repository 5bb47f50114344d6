package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Aitik-official/walnut-leather-sub000/catalog"
	"github.com/Aitik-official/walnut-leather-sub000/database"
	"github.com/Aitik-official/walnut-leather-sub000/locale"
	"github.com/Aitik-official/walnut-leather-sub000/models"
)

// GetProducts serves the storefront listing: the unified catalog run through
// the filter/sort engine. A failed database read degrades to the static
// half plus a warning instead of an error page.
func (h *Handler) GetProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, listErr := h.Catalog.List(ctx)

	filter := catalog.Filter{
		Category:     c.QueryParam("category"),
		MainCategory: c.QueryParam("mainCategory"),
		SubCategory:  c.QueryParam("subCategory"),
		Size:         c.QueryParam("size"),
		Color:        c.QueryParam("color"),
		Material:     c.QueryParam("material"),
		Search:       c.QueryParam("search"),
		Sort:         c.QueryParam("sort"),
		InStock:      c.QueryParam("inStock") == "true",
	}
	if v, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil {
		filter.MaxPrice = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		filter.Limit = v
	}
	page := 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 1 {
		page = v
	}

	// Paging windows the sorted result, so the limit is applied after the
	// offset rather than inside Apply.
	if page > 1 && filter.Limit > 0 {
		limit := filter.Limit
		filter.Limit = 0
		products = catalog.Apply(products, filter)
		offset := (page - 1) * limit
		if offset >= len(products) {
			products = []catalog.Product{}
		} else {
			end := offset + limit
			if end > len(products) {
				end = len(products)
			}
			products = products[offset:end]
		}
	} else {
		products = catalog.Apply(products, filter)
	}

	currency := c.QueryParam("currency")
	if currency != "" && currency != locale.BaseCurrency {
		for i := range products {
			products[i].Price = h.Locale.Convert(products[i].Price, currency)
		}
	} else {
		currency = locale.BaseCurrency
	}

	resp := map[string]interface{}{
		"success":  true,
		"products": products,
		"count":    len(products),
		"currency": currency,
	}
	if listErr != nil {
		log.Printf("product listing degraded: %v", listErr)
		resp["warning"] = "Some products could not be loaded"
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetProduct(c echo.Context) error {
	productID := c.Param("id")
	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		// not a document id: look it up in the unified catalog (static slugs)
		products, _ := h.Catalog.List(c.Request().Context())
		for _, p := range products {
			if p.ID == productID {
				return c.JSON(http.StatusOK, p)
			}
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}

	var product models.Product
	err = database.DB.Collection("products").FindOne(c.Request().Context(), bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	return c.JSON(http.StatusOK, product)
}

func validateProduct(p *models.Product) string {
	if p.Name == "" {
		return "Product name is required"
	}
	if p.Price < 0 {
		return "Price cannot be negative"
	}
	if p.Stock < 0 {
		return "Stock cannot be negative"
	}
	if len(p.Images) == 0 {
		return "At least one image is required"
	}
	return ""
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if msg := validateProduct(&product); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("products").InsertOne(ctx, product); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create product"})
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *Handler) UpdateProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if msg := validateProduct(&product); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":            product.Name,
		"description":     product.Description,
		"price":           product.Price,
		"category":        product.Category,
		"mainCategory":    product.MainCategory,
		"subCategory":     product.SubCategory,
		"availableSizes":  product.AvailableSizes,
		"color":           product.Color,
		"material":        product.Material,
		"stock":           product.Stock,
		"featured":        product.Featured,
		"exclusive":       product.Exclusive,
		"limitedTimeDeal": product.LimitedTimeDeal,
		"images":          product.Images,
		"videos":          product.Videos,
		"updatedAt":       time.Now(),
	}}

	result, err := database.DB.Collection("products").UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update product"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}

	product.ID = objID
	return c.JSON(http.StatusOK, product)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection("products").DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

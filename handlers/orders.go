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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Aitik-official/walnut-leather-sub000/database"
	"github.com/Aitik-official/walnut-leather-sub000/models"
	"github.com/Aitik-official/walnut-leather-sub000/utils"
)

type CreateOrderRequest struct {
	Items    []models.OrderItem     `json:"items"`
	Customer models.Customer        `json:"customer"`
	Shipping models.ShippingAddress `json:"shipping"`
	Payment  models.Payment         `json:"payment"`
	Notes    string                 `json:"notes"`
}

// CreateOrder assembles and persists the checkout submission. Totals are
// recomputed server-side; payment fields are recorded but never charged.
func (h *Handler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Order must contain at least one item"})
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Item quantity must be at least 1"})
		}
		if it.Price < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Item price cannot be negative"})
		}
	}
	if req.Customer.FirstName == "" || req.Customer.LastName == "" || !isValidEmail(req.Customer.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Valid customer details are required"})
	}
	if req.Shipping.Address == "" || req.Shipping.City == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Shipping address is required"})
	}

	now := time.Now()
	order := models.Order{
		ID:                primitive.NewObjectID(),
		OrderID:           utils.NewOrderID(),
		Items:             req.Items,
		Customer:          req.Customer,
		Shipping:          req.Shipping,
		Payment:           req.Payment,
		Totals:            models.ComputeTotals(req.Items),
		Notes:             req.Notes,
		Status:            models.OrderStatusConfirmed,
		EstimatedDelivery: now.AddDate(0, 0, 5).Format("2006-01-02"),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("orders").InsertOne(ctx, order); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create order"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"orderId": order.OrderID,
		"data": map[string]interface{}{
			"orderId":           order.OrderID,
			"total":             order.Totals.Total,
			"status":            order.Status,
			"estimatedDelivery": order.EstimatedDelivery,
		},
	})
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPagination derives the page window from a total count. Page and limit
// are clamped to sane minimums.
func NewPagination(totalCount int64, page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1 && totalCount > 0,
	}
}

// GetOrders lists orders for the admin dashboard, newest first, with
// skip/limit pagination at the fetch boundary. Read failures degrade to an
// empty page plus a warning.
func (h *Handler) GetOrders(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 10
	}

	filter := bson.M{}
	if status := c.QueryParam("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := database.DB.Collection("orders")

	totalCount, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		log.Printf("order count failed: %v", err)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"orders":     []models.Order{},
			"pagination": NewPagination(0, page, limit),
			"warning":    "Orders could not be loaded",
		})
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("order listing failed: %v", err)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"orders":     []models.Order{},
			"pagination": NewPagination(0, page, limit),
			"warning":    "Orders could not be loaded",
		})
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode orders"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"orders":     orders,
		"pagination": NewPagination(totalCount, page, limit),
	})
}

// GetOrder looks an order up directly by its public order id, so the
// confirmation page does not have to scan the whole list.
func (h *Handler) GetOrder(c echo.Context) error {
	orderID := c.Param("orderId")

	var order models.Order
	err := database.DB.Collection("orders").FindOne(c.Request().Context(), bson.M{"orderId": orderID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch order"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "order": order})
}

// UpdateOrderStatus is the admin action that moves an order through its
// lifecycle.
func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	orderID := c.Param("orderId")

	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if !models.ValidOrderStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order status"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.DB.Collection("orders").UpdateOne(
		ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update order"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "status": req.Status})
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aitik-official/walnut-leather-sub000/models"
	"github.com/Aitik-official/walnut-leather-sub000/taxonomy"
)

func (h *Handler) GetMainCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categories, err := h.Taxonomy.ListMain(ctx)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"categories": []models.MainCategory{},
			"warning":    "Categories could not be loaded",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "categories": categories})
}

func (h *Handler) CreateMainCategory(c echo.Context) error {
	var req struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	name, ok := models.NormalizeMainCategoryName(req.Name)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Main category must be Mens or Womens"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category, err := h.Taxonomy.CreateMain(ctx, name, req.Image)
	if err != nil {
		if errors.Is(err, taxonomy.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Category already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create category"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{"success": true, "category": category})
}

func (h *Handler) UpdateMainCategory(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid category ID"})
	}

	var req struct {
		Image string `json:"image"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.Taxonomy.UpdateMainImage(ctx, objID, req.Image); err != nil {
		if errors.Is(err, taxonomy.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Category not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update category"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// DeleteMainCategory refuses to remove a main category while sub-categories
// still reference it; the store runs the check and the delete atomically.
func (h *Handler) DeleteMainCategory(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid category ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch err := h.Taxonomy.DeleteMain(ctx, objID); {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
	case errors.Is(err, taxonomy.ErrMainInUse):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cannot delete: sub-categories still reference this category"})
	case errors.Is(err, taxonomy.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Category not found"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete category"})
	}
}

func (h *Handler) GetSubCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categories, err := h.Taxonomy.ListSub(ctx, c.QueryParam("mainCategory"))
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"categories": []models.SubCategory{},
			"warning":    "Categories could not be loaded",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "categories": categories})
}

func (h *Handler) CreateSubCategory(c echo.Context) error {
	var req struct {
		Name         string `json:"name"`
		MainCategory string `json:"mainCategory"`
		Image        string `json:"image"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Sub-category name is required"})
	}

	mainName, ok := models.NormalizeMainCategoryName(req.MainCategory)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Main category must be Mens or Womens"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category, err := h.Taxonomy.CreateSub(ctx, req.Name, mainName, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, taxonomy.ErrMissingParent):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Main category does not exist"})
		case errors.Is(err, taxonomy.ErrDuplicate):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Sub-category already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create sub-category"})
		}
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{"success": true, "category": category})
}

func (h *Handler) UpdateSubCategory(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid category ID"})
	}

	var req struct {
		Image string `json:"image"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.Taxonomy.UpdateSubImage(ctx, objID, req.Image); err != nil {
		if errors.Is(err, taxonomy.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Sub-category not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update sub-category"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// DeleteSubCategory refuses to remove a sub-category while products still
// reference it by name.
func (h *Handler) DeleteSubCategory(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid category ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch err := h.Taxonomy.DeleteSub(ctx, objID); {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
	case errors.Is(err, taxonomy.ErrSubInUse):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cannot delete: products still reference this sub-category"})
	case errors.Is(err, taxonomy.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Sub-category not found"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete sub-category"})
	}
}

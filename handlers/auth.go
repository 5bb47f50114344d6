package handlers

import (
	"context"
	"net/http"
	"net/mail"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aitik-official/walnut-leather-sub000/database"
	"github.com/Aitik-official/walnut-leather-sub000/middleware"
	"github.com/Aitik-official/walnut-leather-sub000/models"
	"github.com/Aitik-official/walnut-leather-sub000/utils"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a shopper account and issues the session cookie.
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "All fields are required"})
	}
	if !isValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid email format"})
	}
	if len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Password must be at least 8 characters"})
	}

	collection := database.DB.Collection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing := collection.FindOne(ctx, bson.M{"email": req.Email})
	if existing.Err() == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to process password"})
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := collection.InsertOne(ctx, user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}
	middleware.SetAuthCookie(c, token, false)

	user.Password = ""
	return c.JSON(http.StatusCreated, map[string]interface{}{"success": true, "user": user})
}

// Login authenticates a shopper and issues the 7-day session cookie.
func (h *Handler) Login(c echo.Context) error {
	user, errResp := h.checkCredentials(c)
	if user == nil {
		return errResp
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}
	middleware.SetAuthCookie(c, token, false)

	user.Password = ""
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "user": user})
}

// AdminLogin authenticates a dashboard admin and issues the 24-hour cookie.
func (h *Handler) AdminLogin(c echo.Context) error {
	user, errResp := h.checkCredentials(c)
	if user == nil {
		return errResp
	}
	if !user.IsAdmin {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Admin access required"})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}
	middleware.SetAuthCookie(c, token, true)

	user.Password = ""
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "user": user})
}

// checkCredentials binds the login body and verifies the password hash. On
// failure it returns a nil user and the JSON error already written.
func (h *Handler) checkCredentials(c echo.Context) (*models.User, error) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := database.DB.Collection("users").FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		return nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}
	return &user, nil
}

// Me returns the current shopper, or a null user when the cookie is missing
// or invalid. Never a 401: the storefront header renders logged-out state
// from a null payload.
func (h *Handler) Me(c echo.Context) error {
	return h.currentUser(c, middleware.UserCookie)
}

// AdminMe mirrors Me for the admin dashboard cookie.
func (h *Handler) AdminMe(c echo.Context) error {
	return h.currentUser(c, middleware.AdminCookie)
}

func (h *Handler) currentUser(c echo.Context, cookieName string) error {
	claims := middleware.ClaimsFromCookie(c, cookieName)
	if claims == nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"user": nil})
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"user": nil})
	}

	var user models.User
	err = database.DB.Collection("users").FindOne(c.Request().Context(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{"user": nil})
	}

	user.Password = ""
	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

// Logout clears both session cookies.
func (h *Handler) Logout(c echo.Context) error {
	middleware.ClearAuthCookie(c, false)
	middleware.ClearAuthCookie(c, true)
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

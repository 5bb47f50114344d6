package utils

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/Aitik-official/walnut-leather-sub000/config"
)

// Session lifetimes: regular shoppers keep a week-long session, admin
// sessions expire daily.
const (
	UserTokenTTL  = 7 * 24 * time.Hour
	AdminTokenTTL = 24 * time.Hour
)

type Claims struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.StandardClaims
}

func GenerateJWT(userID string, isAdmin bool) (string, error) {
	ttl := UserTokenTTL
	if isAdmin {
		ttl = AdminTokenTTL
	}
	claims := &Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("JWT_SECRET", "")))
}

func ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.GetEnv("JWT_SECRET", "")), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}

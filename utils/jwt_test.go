package utils_test

import (
	"strings"
	"testing"

	"github.com/Aitik-official/walnut-leather-sub000/utils"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT("user-123", false)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := utils.ValidateJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "user-123" || claims.IsAdmin {
		t.Fatalf("claims mangled: %+v", claims)
	}
}

func TestJWTAdminFlagSurvives(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT("admin-1", true)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := utils.ValidateJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if !claims.IsAdmin {
		t.Fatal("admin flag lost")
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := utils.GenerateJWT("user-123", false)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := utils.ValidateJWT(token); err == nil {
		t.Fatal("token signed with a different secret must not validate")
	}
}

func TestNewOrderID(t *testing.T) {
	a := utils.NewOrderID()
	b := utils.NewOrderID()

	if !strings.HasPrefix(a, "WL-") {
		t.Fatalf("order id missing prefix: %s", a)
	}
	if a == b {
		t.Fatal("order ids must be unique")
	}
}

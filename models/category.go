package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeMainCategoryName case-normalizes a main category name ("mens" ->
// "Mens") and reports whether it is one of the allowed top-level names.
func NormalizeMainCategoryName(name string) (string, bool) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return "", false
	}
	name = strings.ToUpper(name[:1]) + name[1:]
	return name, name == "Mens" || name == "Womens"
}

// The two-level taxonomy: MainCategory (Mens/Womens) -> SubCategory.
// SubCategory references its parent by name, not id, so renames are not
// supported without migrating children.

type MainCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"` // "Mens" or "Womens"
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SubCategory struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	MainCategory string             `bson:"mainCategory" json:"mainCategory"`
	Image        string             `bson:"image" json:"image"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

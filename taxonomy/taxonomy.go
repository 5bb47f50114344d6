// Package taxonomy manages the two-level category tree (Mens/Womens main
// categories and their sub-categories) behind a store interface, so the
// referential rules live in one place and the HTTP layer only maps errors.
package taxonomy

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aitik-official/walnut-leather-sub000/models"
)

var (
	ErrNotFound      = errors.New("category not found")
	ErrDuplicate     = errors.New("category already exists")
	ErrMissingParent = errors.New("main category does not exist")
	ErrMainInUse     = errors.New("main category has sub-categories")
	ErrSubInUse      = errors.New("sub-category has products")
)

// Store is the taxonomy persistence contract. Names passed to CreateMain and
// CreateSub are expected to be normalized already (models.
// NormalizeMainCategoryName); deletes enforce the referential invariants and
// report ErrMainInUse/ErrSubInUse instead of removing referenced nodes.
type Store interface {
	ListMain(ctx context.Context) ([]models.MainCategory, error)
	CreateMain(ctx context.Context, name, image string) (models.MainCategory, error)
	UpdateMainImage(ctx context.Context, id primitive.ObjectID, image string) error
	DeleteMain(ctx context.Context, id primitive.ObjectID) error

	ListSub(ctx context.Context, mainCategory string) ([]models.SubCategory, error)
	CreateSub(ctx context.Context, name, mainCategory, image string) (models.SubCategory, error)
	UpdateSubImage(ctx context.Context, id primitive.ObjectID, image string) error
	DeleteSub(ctx context.Context, id primitive.ObjectID) error
}

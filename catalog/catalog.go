// Package catalog unifies the two product sources behind one repository
// interface: the built-in fixture catalog and the Mongo-backed documents
// managed through the admin dashboard.
package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Aitik-official/walnut-leather-sub000/models"
)

type Source string

const (
	SourceDatabase Source = "database"
	SourceStatic   Source = "static"
)

// Product is the read-time view both sources are normalized into.
type Product struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	Price           float64              `json:"price"`
	Category        string               `json:"category,omitempty"`
	MainCategory    string               `json:"mainCategory,omitempty"`
	SubCategory     string               `json:"subCategory,omitempty"`
	AvailableSizes  []models.ProductSize `json:"availableSizes,omitempty"`
	Color           string               `json:"color,omitempty"`
	Material        string               `json:"material,omitempty"`
	Stock           int                  `json:"stock"`
	Featured        bool                 `json:"featured"`
	Exclusive       bool                 `json:"exclusive"`
	LimitedTimeDeal bool                 `json:"limitedTimeDeal"`
	Images          []string             `json:"images,omitempty"`
	Source          Source               `json:"source"`
}

func FromModel(p models.Product) Product {
	return Product{
		ID:              p.ID.Hex(),
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Category:        p.Category,
		MainCategory:    p.MainCategory,
		SubCategory:     p.SubCategory,
		AvailableSizes:  p.AvailableSizes,
		Color:           p.Color,
		Material:        p.Material,
		Stock:           p.Stock,
		Featured:        p.Featured,
		Exclusive:       p.Exclusive,
		LimitedTimeDeal: p.LimitedTimeDeal,
		Images:          p.Images,
		Source:          SourceDatabase,
	}
}

type Repository interface {
	List(ctx context.Context) ([]Product, error)
}

// FixtureRepo serves a fixed in-memory catalog.
type FixtureRepo struct {
	products []Product
}

func NewFixtureRepo(products []Product) *FixtureRepo {
	return &FixtureRepo{products: products}
}

func (r *FixtureRepo) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// MongoRepo reads persisted product documents.
type MongoRepo struct {
	coll *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{coll: db.Collection("products")}
}

func (r *MongoRepo) List(ctx context.Context) ([]Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.Product
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(docs))
	for _, p := range docs {
		out = append(out, FromModel(p))
	}
	return out, nil
}

// UnionRepo concatenates the database catalog ahead of the static fixture.
// Database-first ordering is what makes the "newest" sort meaningful for
// stable comparators downstream.
type UnionRepo struct {
	db     Repository
	static Repository
}

func NewUnionRepo(db, static Repository) *UnionRepo {
	return &UnionRepo{db: db, static: static}
}

// List returns the unioned catalog. When the database read fails the static
// half is still returned along with the error, so callers can degrade to a
// partial listing with a warning instead of an empty page.
func (r *UnionRepo) List(ctx context.Context) ([]Product, error) {
	dbProducts, err := r.db.List(ctx)
	staticProducts, _ := r.static.List(ctx)
	return append(dbProducts, staticProducts...), err
}

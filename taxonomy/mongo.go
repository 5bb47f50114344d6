package taxonomy

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Aitik-official/walnut-leather-sub000/models"
)

// MongoStore persists the taxonomy in the main_categories and sub_categories
// collections. Deletes run their referential count and the removal inside
// one transaction so a concurrent create cannot slip between them.
type MongoStore struct {
	client   *mongo.Client
	main     *mongo.Collection
	sub      *mongo.Collection
	products *mongo.Collection
}

func NewMongoStore(client *mongo.Client, db *mongo.Database) *MongoStore {
	return &MongoStore{
		client:   client,
		main:     db.Collection("main_categories"),
		sub:      db.Collection("sub_categories"),
		products: db.Collection("products"),
	}
}

func (s *MongoStore) ListMain(ctx context.Context) ([]models.MainCategory, error) {
	cursor, err := s.main.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.MainCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *MongoStore) CreateMain(ctx context.Context, name, image string) (models.MainCategory, error) {
	existing := s.main.FindOne(ctx, bson.M{"name": name})
	if existing.Err() == nil {
		return models.MainCategory{}, ErrDuplicate
	}

	category := models.MainCategory{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Image:     image,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := s.main.InsertOne(ctx, category); err != nil {
		return models.MainCategory{}, err
	}
	return category, nil
}

func (s *MongoStore) UpdateMainImage(ctx context.Context, id primitive.ObjectID, image string) error {
	// name is immutable: sub-categories reference it by value
	result, err := s.main.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"image": image, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteMain(ctx context.Context, id primitive.ObjectID) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var category models.MainCategory
		if err := s.main.FindOne(sc, bson.M{"_id": id}).Decode(&category); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrNotFound
			}
			return nil, err
		}

		count, err := s.sub.CountDocuments(sc, bson.M{"mainCategory": category.Name})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrMainInUse
		}

		_, err = s.main.DeleteOne(sc, bson.M{"_id": id})
		return nil, err
	})
	return err
}

func (s *MongoStore) ListSub(ctx context.Context, mainCategory string) ([]models.SubCategory, error) {
	filter := bson.M{}
	if mainCategory != "" {
		filter["mainCategory"] = mainCategory
	}

	cursor, err := s.sub.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.SubCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *MongoStore) CreateSub(ctx context.Context, name, mainCategory, image string) (models.SubCategory, error) {
	// parent lookup is by name, matching how products reference the taxonomy
	parent := s.main.FindOne(ctx, bson.M{"name": mainCategory})
	if parent.Err() != nil {
		return models.SubCategory{}, ErrMissingParent
	}

	existing := s.sub.FindOne(ctx, bson.M{"name": name, "mainCategory": mainCategory})
	if existing.Err() == nil {
		return models.SubCategory{}, ErrDuplicate
	}

	category := models.SubCategory{
		ID:           primitive.NewObjectID(),
		Name:         name,
		MainCategory: mainCategory,
		Image:        image,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if _, err := s.sub.InsertOne(ctx, category); err != nil {
		return models.SubCategory{}, err
	}
	return category, nil
}

func (s *MongoStore) UpdateSubImage(ctx context.Context, id primitive.ObjectID, image string) error {
	result, err := s.sub.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"image": image, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteSub(ctx context.Context, id primitive.ObjectID) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var category models.SubCategory
		if err := s.sub.FindOne(sc, bson.M{"_id": id}).Decode(&category); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrNotFound
			}
			return nil, err
		}

		count, err := s.products.CountDocuments(sc, bson.M{"subCategory": category.Name})
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSubInUse
		}

		_, err = s.sub.DeleteOne(sc, bson.M{"_id": id})
		return nil, err
	})
	return err
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	ProductID       string             `bson:"productId" json:"productId"`
	ProductName     string             `bson:"productName" json:"productName"`
	ProductPrice    float64            `bson:"productPrice" json:"productPrice"`
	ProductImage    string             `bson:"productImage" json:"productImage"`
	ProductCategory string             `bson:"productCategory,omitempty" json:"productCategory,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

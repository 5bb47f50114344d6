package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductSize string

const (
	SizeS  ProductSize = "S"
	SizeM  ProductSize = "M"
	SizeL  ProductSize = "L"
	SizeXL ProductSize = "XL"
)

// StandardSizes is the fixed size set; anything outside it counts as "custom"
// for the listing filter.
var StandardSizes = []ProductSize{SizeS, SizeM, SizeL, SizeXL}

type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	Price           float64            `bson:"price" json:"price"`
	Category        string             `bson:"category" json:"category"`
	MainCategory    string             `bson:"mainCategory,omitempty" json:"mainCategory,omitempty"`
	SubCategory     string             `bson:"subCategory,omitempty" json:"subCategory,omitempty"`
	AvailableSizes  []ProductSize      `bson:"availableSizes" json:"availableSizes"`
	Color           string             `bson:"color" json:"color"`
	Material        string             `bson:"material" json:"material"`
	Stock           int                `bson:"stock" json:"stock"`
	Featured        bool               `bson:"featured" json:"featured"`
	Exclusive       bool               `bson:"exclusive" json:"exclusive"`
	LimitedTimeDeal bool               `bson:"limitedTimeDeal" json:"limitedTimeDeal"`
	Images          []string           `bson:"images" json:"images"`
	Videos          []string           `bson:"videos,omitempty" json:"videos,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

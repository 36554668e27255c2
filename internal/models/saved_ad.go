package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SavedAd is a user's bookmark of a listing, uniquely identified by the
// (singleAdId, userEmail) pair.
type SavedAd struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SingleAdID string             `bson:"singleAdId" json:"singleAdId" validate:"required"`
	UserEmail  string             `bson:"userEmail" json:"userEmail" validate:"required,email"`
	CarName    string             `bson:"carName,omitempty" json:"carName,omitempty"`
	Price      float64            `bson:"price,omitempty" json:"price,omitempty"`
	Photo      string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

type SavedAdRepo interface {
	CreateSavedAd(ctx context.Context, ad *SavedAd) (primitive.ObjectID, error)
	GetSavedAd(ctx context.Context, adID, email string) (*SavedAd, error)
	ListSavedAdsByUser(ctx context.Context, email string) ([]*SavedAd, error)
	DeleteSavedAd(ctx context.Context, adID, email string) (*mongo.DeleteResult, error)
}

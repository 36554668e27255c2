package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bid is an offer record referencing a listing. It is append-only; the
// referenced listing's totalBids counter is maintained separately and
// best-effort only.
type Bid struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID   string             `bson:"productId" json:"productId" validate:"required"`
	CarName     string             `bson:"carName,omitempty" json:"carName,omitempty"`
	BidAmount   float64            `bson:"bidAmount" json:"bidAmount" validate:"gt=0"`
	BidderName  string             `bson:"bidderName,omitempty" json:"bidderName,omitempty"`
	BidderEmail string             `bson:"bidderEmail" json:"bidderEmail" validate:"required,email"`
	BidderPhone string             `bson:"bidderPhone,omitempty" json:"bidderPhone,omitempty"`
}

type BidRepo interface {
	CreateBid(ctx context.Context, bid *Bid) (primitive.ObjectID, error)
	ListBidsByProduct(ctx context.Context, productID string) ([]*Bid, error)
}

package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (mdb *MongodbRepo) CreateBid(ctx context.Context, bid *Bid) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, DBName, BidColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, bid)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert bid: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (mdb *MongodbRepo) ListBidsByProduct(ctx context.Context, productID string) ([]*Bid, error) {
	col, err := mdb.GetCollection(ctx, DBName, BidColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return nil, fmt.Errorf("error finding bids: %v", err)
	}
	defer cursor.Close(ctx)

	var bids []*Bid
	for cursor.Next(ctx) {
		var bid Bid
		if err := cursor.Decode(&bid); err != nil {
			return nil, fmt.Errorf("error decoding bid: %v", err)
		}
		bids = append(bids, &bid)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bids, nil
}

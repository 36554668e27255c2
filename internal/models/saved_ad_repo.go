package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (mdb *MongodbRepo) CreateSavedAd(ctx context.Context, ad *SavedAd) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, DBName, SavedAdColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, ad)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert saved ad: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// GetSavedAd looks up a bookmark by its (singleAdId, userEmail) pair and
// returns (nil, nil) on a miss.
func (mdb *MongodbRepo) GetSavedAd(ctx context.Context, adID, email string) (*SavedAd, error) {
	col, err := mdb.GetCollection(ctx, DBName, SavedAdColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var ad SavedAd
	err = col.FindOne(ctx, bson.M{"singleAdId": adID, "userEmail": email}).Decode(&ad)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find saved ad: %w", err)
	}
	return &ad, nil
}

func (mdb *MongodbRepo) ListSavedAdsByUser(ctx context.Context, email string) ([]*SavedAd, error) {
	col, err := mdb.GetCollection(ctx, DBName, SavedAdColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("error finding saved ads: %v", err)
	}
	defer cursor.Close(ctx)

	var ads []*SavedAd
	for cursor.Next(ctx) {
		var ad SavedAd
		if err := cursor.Decode(&ad); err != nil {
			return nil, fmt.Errorf("error decoding saved ad: %v", err)
		}
		ads = append(ads, &ad)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return ads, nil
}

func (mdb *MongodbRepo) DeleteSavedAd(ctx context.Context, adID, email string) (*mongo.DeleteResult, error) {
	col, err := mdb.GetCollection(ctx, DBName, SavedAdColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"singleAdId": adID, "userEmail": email})
	if err != nil {
		return nil, fmt.Errorf("failed to delete saved ad: %w", err)
	}
	return res, nil
}

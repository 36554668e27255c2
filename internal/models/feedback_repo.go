package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) CreateFeedback(ctx context.Context, feedback *Feedback) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, DBName, FeedbackColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, feedback)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert feedback: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// GetFeedbackByAuthor returns the first feedback left by the given author, or
// (nil, nil) when there is none.
func (mdb *MongodbRepo) GetFeedbackByAuthor(ctx context.Context, author string) (*Feedback, error) {
	col, err := mdb.GetCollection(ctx, DBName, FeedbackColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var feedback Feedback
	err = col.FindOne(ctx, bson.M{"feedbackBy": author}).Decode(&feedback)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	return &feedback, nil
}

// ListRecentFeedback returns up to limit entries, newest insertion first.
func (mdb *MongodbRepo) ListRecentFeedback(ctx context.Context, limit int64) ([]*Feedback, error) {
	col, err := mdb.GetCollection(ctx, DBName, FeedbackColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.M{"_id": -1}).SetLimit(limit)
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding feedback: %v", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []*Feedback
	for cursor.Next(ctx) {
		var feedback Feedback
		if err := cursor.Decode(&feedback); err != nil {
			return nil, fmt.Errorf("error decoding feedback: %v", err)
		}
		feedbacks = append(feedbacks, &feedback)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return feedbacks, nil
}

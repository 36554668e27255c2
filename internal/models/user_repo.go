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

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, DBName, UserColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert user: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// GetUserByEmail returns (nil, nil) when no user matches, so callers can
// treat a miss as a normal outcome rather than an error.
func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	col, err := mdb.GetCollection(ctx, DBName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	err = col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) ListUsersByType(ctx context.Context, userType string) ([]*User, error) {
	col, err := mdb.GetCollection(ctx, DBName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"userType": userType})
	if err != nil {
		return nil, fmt.Errorf("error finding users: %v", err)
	}
	defer cursor.Close(ctx)

	var users []*User
	for cursor.Next(ctx) {
		var user User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("error decoding user: %v", err)
		}
		users = append(users, &user)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return users, nil
}

// UpdateUserDetails applies only the fields present in the patch. Upserts
// when no document matches the id, as the update routes have always done.
func (mdb *MongodbRepo) UpdateUserDetails(ctx context.Context, id primitive.ObjectID, patch UserDetailsUpdate) (*mongo.UpdateResult, error) {
	col, err := mdb.GetCollection(ctx, DBName, UserColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set := bson.M{}
	if patch.RequestUpdate != "" {
		set["verificationRequest"] = patch.RequestUpdate
	}
	if patch.UpdatedVerifyStatus != "" {
		set["verifyStatus"] = patch.UpdatedVerifyStatus
	}
	if patch.Phone != "" {
		set["phone"] = patch.Phone
	}
	if patch.Address != "" {
		set["address"] = patch.Address
	}

	opts := options.Update().SetUpsert(true)
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to update user details: %w", err)
	}
	return res, nil
}

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

func (mdb *MongodbRepo) CreateListing(ctx context.Context, listing *Listing) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, DBName, ListingColName)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.InsertOne(ctx, listing)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert listing: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// GetListingByID returns (nil, nil) when the listing does not exist.
func (mdb *MongodbRepo) GetListingByID(ctx context.Context, id primitive.ObjectID) (*Listing, error) {
	col, err := mdb.GetCollection(ctx, DBName, ListingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var listing Listing
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find listing: %w", err)
	}
	return &listing, nil
}

func (mdb *MongodbRepo) ListListings(ctx context.Context) ([]*Listing, error) {
	return mdb.findListings(ctx, bson.M{}, nil)
}

// FilterListings runs the given filter sorted newest-first by insertion
// order.
func (mdb *MongodbRepo) FilterListings(ctx context.Context, filter bson.M) ([]*Listing, error) {
	opts := options.Find().SetSort(bson.M{"_id": -1})
	return mdb.findListings(ctx, filter, opts)
}

func (mdb *MongodbRepo) ListNewestListings(ctx context.Context, limit int64) ([]*Listing, error) {
	opts := options.Find().SetSort(bson.M{"_id": -1}).SetLimit(limit)
	return mdb.findListings(ctx, bson.M{}, opts)
}

func (mdb *MongodbRepo) ListTopBidListings(ctx context.Context, limit int64) ([]*Listing, error) {
	opts := options.Find().SetSort(bson.M{"totalBids": -1}).SetLimit(limit)
	return mdb.findListings(ctx, bson.M{}, opts)
}

func (mdb *MongodbRepo) ListListingsBySeller(ctx context.Context, email string) ([]*Listing, error) {
	return mdb.findListings(ctx, bson.M{"sellerEmail": email}, nil)
}

func (mdb *MongodbRepo) findListings(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*Listing, error) {
	col, err := mdb.GetCollection(ctx, DBName, ListingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var cursor *mongo.Cursor
	if opts != nil {
		cursor, err = col.Find(ctx, filter, opts)
	} else {
		cursor, err = col.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding listings: %v", err)
	}
	defer cursor.Close(ctx)

	var listings []*Listing
	for cursor.Next(ctx) {
		var listing Listing
		if err := cursor.Decode(&listing); err != nil {
			return nil, fmt.Errorf("error decoding listing: %v", err)
		}
		listings = append(listings, &listing)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return listings, nil
}

// UpdateListing overwrites the fixed field set unconditionally. Upserts when
// the id does not match an existing document.
func (mdb *MongodbRepo) UpdateListing(ctx context.Context, id primitive.ObjectID, update ListingUpdate) (*mongo.UpdateResult, error) {
	col, err := mdb.GetCollection(ctx, DBName, ListingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set := bson.M{
		"carName":          update.CarName,
		"carBrand":         update.CarBrand,
		"carType":          update.CarType,
		"price":            update.Price,
		"carCondition":     update.CarCondition,
		"purchasingDate":   update.PurchasingDate,
		"description":      update.Description,
		"photo":            update.Photo,
		"approvalStatus":   update.ApprovalStatus,
		"addingDate":       update.AddingDate,
		"manufactureYear":  update.ManufactureYear,
		"engineCapacity":   update.EngineCapacity,
		"totalRun":         update.TotalRun,
		"fuelType":         update.FuelType,
		"transmissionType": update.TransmissionType,
		"registeredYear":   update.RegisteredYear,
		"sellerPhone":      update.SellerPhone,
	}

	opts := options.Update().SetUpsert(true)
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return res, nil
}

func (mdb *MongodbRepo) UpdateSellStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	col, err := mdb.GetCollection(ctx, DBName, ListingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Update().SetUpsert(true)
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"sellStatus": status}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to update sell status: %w", err)
	}
	return res, nil
}

// UpdateSellerVerification bulk-sets the verification status on every listing
// posted by the seller.
func (mdb *MongodbRepo) UpdateSellerVerification(ctx context.Context, sellerID, status string) (*mongo.UpdateResult, error) {
	col, err := mdb.GetCollection(ctx, DBName, ListingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateMany(ctx, bson.M{"sellerId": sellerID}, bson.M{"$set": bson.M{"sellerVerificationStatus": status}})
	if err != nil {
		return nil, fmt.Errorf("failed to update seller verification: %w", err)
	}
	return res, nil
}

func (mdb *MongodbRepo) SetTotalBids(ctx context.Context, id primitive.ObjectID, total int64) (*mongo.UpdateResult, error) {
	col, err := mdb.GetCollection(ctx, DBName, ListingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Update().SetUpsert(true)
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"totalBids": total}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to set total bids: %w", err)
	}
	return res, nil
}

func (mdb *MongodbRepo) DeleteListing(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	col, err := mdb.GetCollection(ctx, DBName, ListingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete listing: %w", err)
	}
	return res, nil
}

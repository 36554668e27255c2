package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Listing is a car-for-sale record posted by a seller. The descriptive car
// attributes arrive from the posting form; the status fields are mutated by
// the seller (sellStatus) and by admins (sellerVerificationStatus).
type Listing struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SellerName               string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	SellerEmail              string             `bson:"sellerEmail" json:"sellerEmail" validate:"required,email"`
	SellerID                 string             `bson:"sellerId" json:"sellerId"`
	SellerPhone              string             `bson:"sellerPhone,omitempty" json:"sellerPhone,omitempty"`
	CarName                  string             `bson:"carName" json:"carName" validate:"required"`
	CarBrand                 string             `bson:"carBrand" json:"carBrand"`
	CarType                  string             `bson:"carType,omitempty" json:"carType,omitempty"`
	CarCondition             string             `bson:"carCondition" json:"carCondition"`
	Price                    float64            `bson:"price" json:"price" validate:"gte=0"`
	PurchasingDate           string             `bson:"purchasingDate,omitempty" json:"purchasingDate,omitempty"`
	Description              string             `bson:"description,omitempty" json:"description,omitempty"`
	Photo                    string             `bson:"photo,omitempty" json:"photo,omitempty"`
	AddingDate               string             `bson:"addingDate,omitempty" json:"addingDate,omitempty"`
	ManufactureYear          string             `bson:"manufactureYear,omitempty" json:"manufactureYear,omitempty"`
	EngineCapacity           string             `bson:"engineCapacity,omitempty" json:"engineCapacity,omitempty"`
	TotalRun                 string             `bson:"totalRun,omitempty" json:"totalRun,omitempty"`
	FuelType                 string             `bson:"fuelType,omitempty" json:"fuelType,omitempty"`
	TransmissionType         string             `bson:"transmissionType,omitempty" json:"transmissionType,omitempty"`
	RegisteredYear           string             `bson:"registeredYear,omitempty" json:"registeredYear,omitempty"`
	TotalBids                int64              `bson:"totalBids" json:"totalBids"`
	SellStatus               string             `bson:"sellStatus,omitempty" json:"sellStatus,omitempty"`
	ApprovalStatus           string             `bson:"approvalStatus,omitempty" json:"approvalStatus,omitempty"`
	SellerVerificationStatus string             `bson:"sellerVerificationStatus,omitempty" json:"sellerVerificationStatus,omitempty"`
}

// ListingUpdate is the fixed field set of the full-update route. Every field
// is written unconditionally; absent request fields overwrite with zero
// values.
type ListingUpdate struct {
	CarName          string  `json:"carName"`
	CarBrand         string  `json:"carBrand"`
	CarType          string  `json:"carType"`
	Price            float64 `json:"price"`
	CarCondition     string  `json:"carCondition"`
	PurchasingDate   string  `json:"purchasingDate"`
	Description      string  `json:"description"`
	Photo            string  `json:"photo"`
	ApprovalStatus   string  `json:"approvalStatus"`
	AddingDate       string  `json:"addingDate"`
	ManufactureYear  string  `json:"manufactureYear"`
	EngineCapacity   string  `json:"engineCapacity"`
	TotalRun         string  `json:"totalRun"`
	FuelType         string  `json:"fuelType"`
	TransmissionType string  `json:"transmissionType"`
	RegisteredYear   string  `json:"registeredYear"`
	SellerPhone      string  `json:"sellerPhone"`
}

type ListingRepo interface {
	CreateListing(ctx context.Context, listing *Listing) (primitive.ObjectID, error)
	GetListingByID(ctx context.Context, id primitive.ObjectID) (*Listing, error)
	ListListings(ctx context.Context) ([]*Listing, error)
	FilterListings(ctx context.Context, filter bson.M) ([]*Listing, error)
	ListNewestListings(ctx context.Context, limit int64) ([]*Listing, error)
	ListTopBidListings(ctx context.Context, limit int64) ([]*Listing, error)
	ListListingsBySeller(ctx context.Context, email string) ([]*Listing, error)
	UpdateListing(ctx context.Context, id primitive.ObjectID, update ListingUpdate) (*mongo.UpdateResult, error)
	UpdateSellStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
	UpdateSellerVerification(ctx context.Context, sellerID, status string) (*mongo.UpdateResult, error)
	SetTotalBids(ctx context.Context, id primitive.ObjectID, total int64) (*mongo.UpdateResult, error)
	DeleteListing(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/autofusion/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BidService struct {
	bidRepo     models.BidRepo
	listingRepo models.ListingRepo
}

func NewBidService(bidRepo models.BidRepo, listingRepo models.ListingRepo) *BidService {
	return &BidService{
		bidRepo:     bidRepo,
		listingRepo: listingRepo,
	}
}

// PlaceBid bumps the referenced listing's totalBids counter and then inserts
// the bid record. The two writes are independent store calls with no
// transaction around them, so concurrent bids on the same listing can lose
// counter increments. A missing listing starts the counter from zero; the bid
// is inserted regardless of what the counter update reports.
func (bs *BidService) PlaceBid(ctx context.Context, bid *models.Bid, productID primitive.ObjectID) (primitive.ObjectID, error) {
	if err := models.Validate.Struct(bid); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid bid data provided: %v", ErrInvalidInput, err)
	}
	if productID.IsZero() {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid product id", ErrInvalidInput)
	}

	listing, err := bs.listingRepo.GetListingByID(ctx, productID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	var currentBids int64
	if listing != nil {
		currentBids = listing.TotalBids
	}

	if _, err := bs.listingRepo.SetTotalBids(ctx, productID, currentBids+1); err != nil {
		return primitive.NilObjectID, err
	}

	return bs.bidRepo.CreateBid(ctx, bid)
}

func (bs *BidService) ListBidsByProduct(ctx context.Context, productID string) ([]*models.Bid, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product ID cannot be empty")
	}
	return bs.bidRepo.ListBidsByProduct(ctx, productID)
}

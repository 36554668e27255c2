package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/autofusion/server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	// HomeListingLimit bounds the newest / top-bid listing slices served to
	// the homepage.
	HomeListingLimit = 8

	// Frontend price buckets start at 8000; the lowest bucket is open-ended,
	// so a parsed minimum of exactly 8000 means "8000 and up" and the maximum
	// is ignored.
	openEndedMinPrice = 8000
)

type ListingService struct {
	listingRepo models.ListingRepo
}

func NewListingService(listingRepo models.ListingRepo) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
	}
}

// ListingSearchParams are the raw filter values as the frontend submits them.
// "all" disables the corresponding filter.
type ListingSearchParams struct {
	CarCondition   string
	CarBrand       string
	CarPrice       string
	ListingPerPage int
	CurrentPage    int
}

type ListingSearchResult struct {
	TotalPages       int               `json:"totalPages"`
	FilteredListings []*models.Listing `json:"filteredListings"`
}

func (ls *ListingService) CreateListing(ctx context.Context, listing *models.Listing) (primitive.ObjectID, error) {
	if err := models.Validate.Struct(listing); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid listing data provided: %v", ErrInvalidInput, err)
	}
	return ls.listingRepo.CreateListing(ctx, listing)
}

func (ls *ListingService) GetListingByID(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: invalid listing id", ErrInvalidInput)
	}
	return ls.listingRepo.GetListingByID(ctx, id)
}

func (ls *ListingService) ListListings(ctx context.Context) ([]*models.Listing, error) {
	return ls.listingRepo.ListListings(ctx)
}

func (ls *ListingService) ListHomeListings(ctx context.Context) ([]*models.Listing, error) {
	return ls.listingRepo.ListNewestListings(ctx, HomeListingLimit)
}

func (ls *ListingService) ListTopBidListings(ctx context.Context) ([]*models.Listing, error) {
	return ls.listingRepo.ListTopBidListings(ctx, HomeListingLimit)
}

func (ls *ListingService) ListListingsBySeller(ctx context.Context, email string) ([]*models.Listing, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("seller email cannot be empty")
	}
	return ls.listingRepo.ListListingsBySeller(ctx, email)
}

// SearchListings filters by condition, brand and price range, sorts
// newest-first and paginates the result set in memory.
func (ls *ListingService) SearchListings(ctx context.Context, params ListingSearchParams) (*ListingSearchResult, error) {
	if params.ListingPerPage <= 0 || params.CurrentPage <= 0 {
		return nil, fmt.Errorf("%w: invalid pagination parameters", ErrInvalidInput)
	}

	filter, err := buildListingFilter(params.CarCondition, params.CarBrand, params.CarPrice)
	if err != nil {
		return nil, err
	}

	listings, err := ls.listingRepo.FilterListings(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages, pageItems := paginateListings(listings, params.ListingPerPage, params.CurrentPage)
	return &ListingSearchResult{
		TotalPages:       totalPages,
		FilteredListings: pageItems,
	}, nil
}

func (ls *ListingService) UpdateListing(ctx context.Context, id primitive.ObjectID, update models.ListingUpdate) (*mongo.UpdateResult, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: invalid listing id", ErrInvalidInput)
	}
	return ls.listingRepo.UpdateListing(ctx, id, update)
}

func (ls *ListingService) UpdateSellStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: invalid listing id", ErrInvalidInput)
	}
	return ls.listingRepo.UpdateSellStatus(ctx, id, status)
}

func (ls *ListingService) UpdateSellerVerification(ctx context.Context, sellerID, status string) (*mongo.UpdateResult, error) {
	if strings.TrimSpace(sellerID) == "" {
		return nil, fmt.Errorf("seller id cannot be empty")
	}
	return ls.listingRepo.UpdateSellerVerification(ctx, sellerID, status)
}

func (ls *ListingService) DeleteListing(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: invalid listing id", ErrInvalidInput)
	}
	return ls.listingRepo.DeleteListing(ctx, id)
}

// buildListingFilter translates the frontend filter values into a Mongo
// query. Condition and brand match as case-insensitive substrings; the price
// string has the form "min-max".
func buildListingFilter(condition, brand, price string) (bson.M, error) {
	filter := bson.M{}

	if condition != "all" && condition != "" {
		filter["carCondition"] = bson.M{"$regex": condition, "$options": "i"}
	}
	if brand != "all" && brand != "" {
		filter["carBrand"] = bson.M{"$regex": brand, "$options": "i"}
	}

	if price != "all" && price != "" {
		parts := strings.SplitN(price, "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: malformed price range %q", ErrInvalidInput, price)
		}
		minPrice, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: malformed price range %q: %v", ErrInvalidInput, price, err)
		}
		if minPrice == openEndedMinPrice {
			filter["price"] = bson.M{"$gte": minPrice}
		} else {
			maxPrice, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, fmt.Errorf("%w: malformed price range %q: %v", ErrInvalidInput, price, err)
			}
			filter["price"] = bson.M{"$gte": minPrice, "$lte": maxPrice}
		}
	}

	return filter, nil
}

// paginateListings slices the already sorted result set and reports the total
// page count.
func paginateListings(listings []*models.Listing, perPage, page int) (int, []*models.Listing) {
	totalPages := (len(listings) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= len(listings) {
		return totalPages, []*models.Listing{}
	}
	end := page * perPage
	if end > len(listings) {
		end = len(listings)
	}
	return totalPages, listings[start:end]
}

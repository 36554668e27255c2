package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/autofusion/server/internal/helpers"
	"github.com/autofusion/server/internal/models"
	"github.com/autofusion/server/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateListing(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var listing models.Listing
		if err := c.ShouldBindJSON(&listing); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
			return
		}

		id, err := l.CreateListing(c.Request.Context(), &listing)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
	}
}

func ListAllListings(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := l.ListListings(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, listings)
	}
}

// SearchListings filters by carCondition, carBrand and a "min-max" carPrice
// range, then paginates the sorted result. The response carries the total
// page count alongside the requested page.
func SearchListings(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		perPage, err := strconv.Atoi(c.DefaultQuery("listingPerPage", "10"))
		if err != nil || perPage <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid listingPerPage parameter"})
			return
		}
		currentPage, err := strconv.Atoi(c.DefaultQuery("currentPage", "1"))
		if err != nil || currentPage <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid currentPage parameter"})
			return
		}

		params := services.ListingSearchParams{
			CarCondition:   c.DefaultQuery("carCondition", "all"),
			CarBrand:       c.DefaultQuery("carBrand", "all"),
			CarPrice:       c.DefaultQuery("carPrice", "all"),
			ListingPerPage: perPage,
			CurrentPage:    currentPage,
		}

		result, err := l.SearchListings(c.Request.Context(), params)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func HomeListings(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := l.ListHomeListings(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, listings)
	}
}

func TopBidListings(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := l.ListTopBidListings(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, listings)
	}
}

func ListingsBySeller(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings, err := l.ListListingsBySeller(c.Request.Context(), c.Param("email"))
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, listings)
	}
}

// GetListing returns a single listing by id, or a null body when it does not
// exist.
func GetListing(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid listing ID format"})
			return
		}

		listing, err := l.GetListingByID(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, listing)
	}
}

func UpdateListing(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid listing ID format"})
			return
		}

		var update models.ListingUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
			return
		}

		res, err := l.UpdateListing(c.Request.Context(), id, update)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

func UpdateSellStatus(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid listing ID format"})
			return
		}

		var body struct {
			SellStatus string `json:"sellStatus" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
			return
		}

		res, err := l.UpdateSellStatus(c.Request.Context(), id, body.SellStatus)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

// UpdateSellerVerification bulk-sets the verification status on every listing
// with the given sellerId.
func UpdateSellerVerification(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			UpdatedVerifyStatus string `json:"updatedVerifyStatus" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
			return
		}

		res, err := l.UpdateSellerVerification(c.Request.Context(), c.Param("id"), body.UpdatedVerifyStatus)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

func DeleteListing(l *services.ListingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid listing ID format"})
			return
		}

		res, err := l.DeleteListing(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

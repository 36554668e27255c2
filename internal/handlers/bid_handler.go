package handlers

import (
	"errors"
	"net/http"

	"github.com/autofusion/server/internal/helpers"
	"github.com/autofusion/server/internal/models"
	"github.com/autofusion/server/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaceBid records a bid and bumps the listing's totalBids counter.
func PlaceBid(b *services.BidService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bid models.Bid
		if err := c.ShouldBindJSON(&bid); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
			return
		}

		productID, err := primitive.ObjectIDFromHex(helpers.StringTrim(bid.ProductID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product ID format"})
			return
		}

		id, err := b.PlaceBid(c.Request.Context(), &bid, productID)
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

func BidsForProduct(b *services.BidService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bids, err := b.ListBidsByProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, bids)
	}
}

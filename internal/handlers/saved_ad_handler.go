package handlers

import (
	"errors"
	"net/http"

	"github.com/autofusion/server/internal/models"
	"github.com/autofusion/server/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateSavedAd(s *services.SavedAdService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ad models.SavedAd
		if err := c.ShouldBindJSON(&ad); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
			return
		}

		id, err := s.CreateSavedAd(c.Request.Context(), &ad)
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

// GetSingleSavedAd looks up a bookmark by the (id, email) query pair and
// returns a null body on a miss.
func GetSingleSavedAd(s *services.SavedAdService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adID := c.Query("id")
		email := c.Query("email")
		if adID == "" || email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "id and email query parameters are required"})
			return
		}

		ad, err := s.GetSavedAd(c.Request.Context(), adID, email)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, ad)
	}
}

func ListSavedAds(s *services.SavedAdService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ads, err := s.ListSavedAdsByUser(c.Request.Context(), c.Param("email"))
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, ads)
	}
}

func DeleteSavedAd(s *services.SavedAdService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adID := c.Query("id")
		email := c.Query("email")
		if adID == "" || email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "id and email query parameters are required"})
			return
		}

		res, err := s.DeleteSavedAd(c.Request.Context(), adID, email)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

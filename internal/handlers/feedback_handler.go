package handlers

import (
	"errors"
	"net/http"

	"github.com/autofusion/server/internal/models"
	"github.com/autofusion/server/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateFeedback(f *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var feedback models.Feedback
		if err := c.ShouldBindJSON(&feedback); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
			return
		}

		id, err := f.CreateFeedback(c.Request.Context(), &feedback)
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

// GetSingleFeedback returns the first feedback left by the author in the
// path, or a null body when there is none.
func GetSingleFeedback(f *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		feedback, err := f.GetFeedbackByAuthor(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, feedback)
	}
}

func ListFeedback(f *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		feedbacks, err := f.ListRecentFeedback(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, feedbacks)
	}
}

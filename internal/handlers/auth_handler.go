package handlers

import (
	"net/http"

	"github.com/autofusion/server/internal/helpers"
	"github.com/gin-gonic/gin"
)

// CreateSession issues a bearer token for the submitted identity payload.
// The client is trusted for the identity it claims here; everything the token
// later unlocks is re-checked against stored user records.
func CreateSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var identity struct {
			Email string `json:"email" binding:"required,email"`
			Name  string `json:"name"`
		}

		if err := c.ShouldBindJSON(&identity); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
			return
		}

		token, err := helpers.IssueToken(secret, identity.Email, identity.Name)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

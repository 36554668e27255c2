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

func CreateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
			return
		}

		id, existed, err := u.CreateUser(c.Request.Context(), &user)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}
		if existed {
			c.JSON(http.StatusOK, gin.H{"message": "User already exists", "insertedId": nil})
			return
		}

		c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
	}
}

// GetCurrentUser returns the user record for the queried email, or a null
// body when there is none.
func GetCurrentUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email query parameter is required"})
			return
		}

		user, err := u.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GetUserRole reports whether the stored user for the path email carries the
// admin role. An unknown user is reported as not admin.
func GetUserRole(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		isAdmin, err := u.IsAdmin(c.Request.Context(), email)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
	}
}

func ListUsers(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := u.ListRegularUsers(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

func UpdateUserDetails(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.UserDetailsUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
			return
		}

		id, err := primitive.ObjectIDFromHex(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user ID format"})
			return
		}

		res, err := u.UpdateUserDetails(c.Request.Context(), id, patch)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error."})
			return
		}

		c.JSON(http.StatusOK, res)
	}
}

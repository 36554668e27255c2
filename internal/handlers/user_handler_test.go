package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/autofusion/server/internal/models"
	"github.com/autofusion/server/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	user.ID = id
	f.users = append(f.users, user)
	return id, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListUsersByType(ctx context.Context, userType string) ([]*models.User, error) {
	var result []*models.User
	for _, u := range f.users {
		if u.UserType == userType {
			result = append(result, u)
		}
	}
	return result, nil
}

func (f *fakeUserRepo) UpdateUserDetails(ctx context.Context, id primitive.ObjectID, patch models.UserDetailsUpdate) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func userTestRouter(repo models.UserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewUserService(repo)
	r := gin.New()
	r.POST("/users", CreateUser(svc))
	r.GET("/users/current", GetCurrentUser(svc))
	r.GET("/users/:email/role", GetUserRole(svc))
	return r
}

func TestCreateUserReportsDuplicate(t *testing.T) {
	repo := &fakeUserRepo{}
	r := userTestRouter(repo)

	body := `{"email":"seller@example.com","name":"Seller"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "insertedId")
	assert.NotContains(t, w.Body.String(), "already exists")

	// Second submission with the same email: record count stays at one and
	// the response carries no inserted id.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message    string  `json:"message"`
		InsertedID *string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User already exists", resp.Message)
	assert.Nil(t, resp.InsertedID)
	assert.Len(t, repo.users, 1)
}

func TestGetCurrentUserMiss(t *testing.T) {
	r := userTestRouter(&fakeUserRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/current?email=nobody@example.com", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
}

func TestGetUserRole(t *testing.T) {
	repo := &fakeUserRepo{users: []*models.User{
		{Email: "admin@example.com", UserType: models.UserTypeAdmin},
		{Email: "user@example.com", UserType: models.UserTypeRegular},
	}}
	r := userTestRouter(repo)

	cases := []struct {
		email string
		admin bool
	}{
		{"admin@example.com", true},
		{"user@example.com", false},
		{"ghost@example.com", false},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/"+tc.email+"/role", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Admin bool `json:"admin"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tc.admin, resp.Admin, "email %s", tc.email)
	}
}

func TestCreateUserInvalidEmailIsBadRequest(t *testing.T) {
	repo := &fakeUserRepo{}
	r := userTestRouter(repo)

	body := `{"email":"not-an-email","name":"Seller"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.users)
}

package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autofusion/server/internal/helpers"
	"github.com/autofusion/server/internal/models"
	"github.com/autofusion/server/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const testSecret = "middleware-test-secret"

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
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
	return nil, nil
}

func (f *fakeUserRepo) UpdateUserDetails(ctx context.Context, id primitive.ObjectID, patch models.UserDetailsUpdate) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		claims := c.MustGet("user").(*helpers.Claims)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "token-without-scheme")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := authTestRouter()

	token, err := helpers.IssueToken(testSecret, "seller@example.com", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "seller@example.com")
}

func adminTestRouter(repo models.UserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	userService := services.NewUserService(repo)
	r := gin.New()
	r.GET("/admin", AuthMiddleware(testSecret), AdminMiddleware(userService, testLogger()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	return r
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: []*models.User{
		{Email: "admin@example.com", UserType: models.UserTypeAdmin},
	}}
	r := adminTestRouter(repo)

	token, err := helpers.IssueToken(testSecret, "admin@example.com", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: []*models.User{
		{Email: "user@example.com", UserType: models.UserTypeRegular},
	}}
	r := adminTestRouter(repo)

	token, err := helpers.IssueToken(testSecret, "user@example.com", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden access!")
}

// A token for a user that was never stored is treated as non-admin rather
// than failing the lookup.
func TestAdminMiddlewareRejectsUnknownUser(t *testing.T) {
	r := adminTestRouter(&fakeUserRepo{})

	token, err := helpers.IssueToken(testSecret, "ghost@example.com", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

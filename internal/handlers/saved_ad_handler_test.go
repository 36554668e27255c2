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

type fakeSavedAdRepo struct {
	ads []*models.SavedAd
}

func (f *fakeSavedAdRepo) CreateSavedAd(ctx context.Context, ad *models.SavedAd) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	ad.ID = id
	f.ads = append(f.ads, ad)
	return id, nil
}

func (f *fakeSavedAdRepo) GetSavedAd(ctx context.Context, adID, email string) (*models.SavedAd, error) {
	for _, ad := range f.ads {
		if ad.SingleAdID == adID && ad.UserEmail == email {
			return ad, nil
		}
	}
	return nil, nil
}

func (f *fakeSavedAdRepo) ListSavedAdsByUser(ctx context.Context, email string) ([]*models.SavedAd, error) {
	var result []*models.SavedAd
	for _, ad := range f.ads {
		if ad.UserEmail == email {
			result = append(result, ad)
		}
	}
	return result, nil
}

func (f *fakeSavedAdRepo) DeleteSavedAd(ctx context.Context, adID, email string) (*mongo.DeleteResult, error) {
	for i, ad := range f.ads {
		if ad.SingleAdID == adID && ad.UserEmail == email {
			f.ads = append(f.ads[:i], f.ads[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func savedAdTestRouter(repo models.SavedAdRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewSavedAdService(repo)
	r := gin.New()
	r.POST("/saved-ads", CreateSavedAd(svc))
	r.GET("/saved-ads/single", GetSingleSavedAd(svc))
	r.GET("/saved-ads/:email", ListSavedAds(svc))
	r.DELETE("/saved-ads/single", DeleteSavedAd(svc))
	return r
}

// A bookmark is retrievable by its (singleAdId, userEmail) pair and no
// longer retrievable after removal.
func TestSavedAdRoundTrip(t *testing.T) {
	r := savedAdTestRouter(&fakeSavedAdRepo{})

	body := `{"singleAdId":"ad-42","userEmail":"buyer@example.com","carName":"corolla"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/saved-ads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "insertedId")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/saved-ads/single?id=ad-42&email=buyer@example.com", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.SavedAd
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "ad-42", fetched.SingleAdID)
	assert.Equal(t, "corolla", fetched.CarName)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/saved-ads/single?id=ad-42&email=buyer@example.com", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/saved-ads/single?id=ad-42&email=buyer@example.com", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))
}

func TestGetSingleSavedAdRequiresQueryParams(t *testing.T) {
	r := savedAdTestRouter(&fakeSavedAdRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/saved-ads/single?id=ad-42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSavedAdsByUser(t *testing.T) {
	repo := &fakeSavedAdRepo{ads: []*models.SavedAd{
		{SingleAdID: "ad-1", UserEmail: "buyer@example.com"},
		{SingleAdID: "ad-2", UserEmail: "buyer@example.com"},
		{SingleAdID: "ad-3", UserEmail: "other@example.com"},
	}}
	r := savedAdTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/saved-ads/buyer@example.com", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var ads []*models.SavedAd
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ads))
	assert.Len(t, ads, 2)
}

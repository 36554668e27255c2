package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/autofusion/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SavedAdService struct {
	savedAdRepo models.SavedAdRepo
}

func NewSavedAdService(savedAdRepo models.SavedAdRepo) *SavedAdService {
	return &SavedAdService{
		savedAdRepo: savedAdRepo,
	}
}

func (ss *SavedAdService) CreateSavedAd(ctx context.Context, ad *models.SavedAd) (primitive.ObjectID, error) {
	if err := models.Validate.Struct(ad); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid saved ad data provided: %v", ErrInvalidInput, err)
	}
	return ss.savedAdRepo.CreateSavedAd(ctx, ad)
}

func (ss *SavedAdService) GetSavedAd(ctx context.Context, adID, email string) (*models.SavedAd, error) {
	if strings.TrimSpace(adID) == "" {
		return nil, fmt.Errorf("ad ID cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	return ss.savedAdRepo.GetSavedAd(ctx, adID, email)
}

func (ss *SavedAdService) ListSavedAdsByUser(ctx context.Context, email string) ([]*models.SavedAd, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	return ss.savedAdRepo.ListSavedAdsByUser(ctx, email)
}

func (ss *SavedAdService) DeleteSavedAd(ctx context.Context, adID, email string) (*mongo.DeleteResult, error) {
	if strings.TrimSpace(adID) == "" {
		return nil, fmt.Errorf("ad ID cannot be empty")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	return ss.savedAdRepo.DeleteSavedAd(ctx, adID, email)
}

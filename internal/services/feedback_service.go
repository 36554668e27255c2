package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/autofusion/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecentFeedbackLimit is how many entries the feedback list route serves.
const RecentFeedbackLimit = 5

type FeedbackService struct {
	feedbackRepo models.FeedbackRepo
}

func NewFeedbackService(feedbackRepo models.FeedbackRepo) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
	}
}

func (fs *FeedbackService) CreateFeedback(ctx context.Context, feedback *models.Feedback) (primitive.ObjectID, error) {
	if err := models.Validate.Struct(feedback); err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid feedback data provided: %v", ErrInvalidInput, err)
	}
	return fs.feedbackRepo.CreateFeedback(ctx, feedback)
}

func (fs *FeedbackService) GetFeedbackByAuthor(ctx context.Context, author string) (*models.Feedback, error) {
	if strings.TrimSpace(author) == "" {
		return nil, fmt.Errorf("author cannot be empty")
	}
	return fs.feedbackRepo.GetFeedbackByAuthor(ctx, author)
}

func (fs *FeedbackService) ListRecentFeedback(ctx context.Context) ([]*models.Feedback, error) {
	return fs.feedbackRepo.ListRecentFeedback(ctx, RecentFeedbackLimit)
}

package models

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback is append-only and queried most-recent-first.
type Feedback struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FeedbackBy string             `bson:"feedbackBy" json:"feedbackBy" validate:"required"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo      string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Content    string             `bson:"content" json:"content" validate:"required"`
}

type FeedbackRepo interface {
	CreateFeedback(ctx context.Context, feedback *Feedback) (primitive.ObjectID, error)
	GetFeedbackByAuthor(ctx context.Context, author string) (*Feedback, error)
	ListRecentFeedback(ctx context.Context, limit int64) ([]*Feedback, error)
}

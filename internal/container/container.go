package container

import (
	"log/slog"

	"github.com/autofusion/server/internal/config"
	"github.com/autofusion/server/internal/models"
	"github.com/autofusion/server/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client

	UserService     *services.UserService
	ListingService  *services.ListingService
	SavedAdService  *services.SavedAdService
	FeedbackService *services.FeedbackService
	BidService      *services.BidService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	return &Container{
		Logger:          logger,
		Config:          cfg,
		MongoDBClient:   mongoDBClient,
		UserService:     services.NewUserService(repo),
		ListingService:  services.NewListingService(repo),
		SavedAdService:  services.NewSavedAdService(repo),
		FeedbackService: services.NewFeedbackService(repo),
		BidService:      services.NewBidService(repo, repo),
	}
}

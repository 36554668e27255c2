package routes

import (
	"github.com/autofusion/server/internal/container"
	"github.com/autofusion/server/internal/handlers"
	"github.com/autofusion/server/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	auth := middleware.AuthMiddleware(container.Config.AccessTokenSecret)
	admin := middleware.AdminMiddleware(container.UserService, container.Logger)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "autofusion-api",
			})
		})

		v1.POST("/session", handlers.CreateSession(container.Config.AccessTokenSecret))
	}

	userRoutes := v1.Group("/users")
	{
		userRoutes.POST("", handlers.CreateUser(container.UserService))
		userRoutes.GET("/current", handlers.GetCurrentUser(container.UserService))
		userRoutes.GET("/:email/role", auth, handlers.GetUserRole(container.UserService))
		userRoutes.GET("", auth, admin, handlers.ListUsers(container.UserService))
		userRoutes.PUT("/:id", auth, handlers.UpdateUserDetails(container.UserService))
	}

	listingRoutes := v1.Group("/listings")
	{
		listingRoutes.POST("", auth, handlers.CreateListing(container.ListingService))
		listingRoutes.GET("", handlers.ListAllListings(container.ListingService))
		listingRoutes.GET("/search", handlers.SearchListings(container.ListingService))
		listingRoutes.GET("/home", handlers.HomeListings(container.ListingService))
		listingRoutes.GET("/top-bid", handlers.TopBidListings(container.ListingService))
		listingRoutes.GET("/by-seller/:email", auth, handlers.ListingsBySeller(container.ListingService))
		listingRoutes.GET("/:id", handlers.GetListing(container.ListingService))
		listingRoutes.PUT("/by-seller-verification/:id", auth, admin, handlers.UpdateSellerVerification(container.ListingService))
		listingRoutes.PUT("/:id", auth, handlers.UpdateListing(container.ListingService))
		listingRoutes.PUT("/:id/sell-status", handlers.UpdateSellStatus(container.ListingService))
		listingRoutes.DELETE("/:id", auth, handlers.DeleteListing(container.ListingService))
	}

	savedAdRoutes := v1.Group("/saved-ads")
	{
		savedAdRoutes.POST("", handlers.CreateSavedAd(container.SavedAdService))
		savedAdRoutes.GET("/single", handlers.GetSingleSavedAd(container.SavedAdService))
		savedAdRoutes.GET("/:email", handlers.ListSavedAds(container.SavedAdService))
		savedAdRoutes.DELETE("/single", handlers.DeleteSavedAd(container.SavedAdService))
	}

	feedbackRoutes := v1.Group("/feedback")
	{
		feedbackRoutes.POST("", handlers.CreateFeedback(container.FeedbackService))
		feedbackRoutes.GET("", handlers.ListFeedback(container.FeedbackService))
		feedbackRoutes.GET("/:id", handlers.GetSingleFeedback(container.FeedbackService))
	}

	bidRoutes := v1.Group("/bids")
	{
		bidRoutes.POST("", auth, handlers.PlaceBid(container.BidService))
		bidRoutes.GET("/by-product/:id", handlers.BidsForProduct(container.BidService))
	}

	return r
}

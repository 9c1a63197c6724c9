package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/middleware"
)

// RegisterRoutes mounts the full API surface on the given engine
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health-check", CheckConnection)

	api := r.Group("/api")

	// Public routes (no authentication required)
	api.POST("/users", RegisterUser)
	api.POST("/users/login", LoginUser)
	api.GET("/communities/list", ListCommunities)

	// Protected routes (authentication required)
	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/users/me", Me)

		// Community routes
		auth.POST("/communities/create", CreateCommunity)
		auth.POST("/communities/join", JoinCommunity)
		auth.POST("/communities/:id/leave", LeaveCommunity)
		auth.GET("/communities/user-communities", UserCommunities)

		// Book routes
		auth.GET("/books/mine", MyBooks)
		auth.GET("/books/available", AvailableBooks)
		auth.POST("/books", CreateBook)
		auth.PATCH("/books/:id/availability", UpdateBookAvailability)
		auth.DELETE("/books/:id", DeleteBook)

		// Game routes
		auth.GET("/games/mine", MyGames)
		auth.GET("/games/available", AvailableGames)
		auth.POST("/games", CreateGame)
		auth.PATCH("/games/:id/availability", UpdateGameAvailability)
		auth.DELETE("/games/:id", DeleteGame)

		// Borrow request routes
		auth.POST("/requests", CreateRequest)
		auth.POST("/requests/:id/rescind", RescindRequest)
		auth.POST("/requests/:id/accept", AcceptRequest)
		auth.POST("/requests/:id/decline", DeclineRequest)
		auth.POST("/requests/:id/borrowed", MarkBorrowed)
		auth.POST("/requests/:id/returned", MarkReturned)
		auth.GET("/requests/outgoing", OutgoingRequests)
		auth.GET("/requests/incoming", IncomingRequests)

		// Message routes
		auth.POST("/messages/send", SendMessage)
		auth.GET("/messages/conversation/:userId", Conversation)
		auth.GET("/messages/with/:userId", Conversation)
		auth.GET("/messages/community-usernames", CommunityUsernames)
	}

	// Admin-only routes
	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminRequired())
	{
		admin.GET("/admin-test", AdminTest)
	}
}

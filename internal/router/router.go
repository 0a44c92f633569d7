package router

import (
	"time"

	"github.com/bingoboard-dev/bingoboard/internal/auth"
	"github.com/bingoboard-dev/bingoboard/internal/authz"
	"github.com/bingoboard-dev/bingoboard/internal/handlers"
	"github.com/bingoboard-dev/bingoboard/internal/middleware"
	"github.com/bingoboard-dev/bingoboard/internal/store"
	"github.com/bingoboard-dev/bingoboard/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(st *store.Store, tokens *auth.TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rules := authz.New(st)

	authHandler := handlers.NewAuthHandler(st, tokens)
	usersHandler := handlers.NewUsersHandler(st)
	cardsHandler := handlers.NewCardsHandler(st, rules)
	friendshipsHandler := handlers.NewFriendshipsHandler(st, rules)
	commentsHandler := handlers.NewCommentsHandler(st, rules)
	reactionsHandler := handlers.NewReactionsHandler(st)
	groupsHandler := handlers.NewGroupsHandler(st, rules)
	groupCommentsHandler := handlers.NewGroupCommentsHandler(st, rules)
	adminHandler := handlers.NewAdminHandler(st)

	authRequired := middleware.AuthMiddleware(st, tokens)

	r.GET("/health", handlers.HealthCheck)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authRequired, authHandler.Me)
		authGroup.PUT("/profile", authRequired, authHandler.UpdateProfile)
	}

	users := r.Group("/users", authRequired)
	{
		users.GET("", usersHandler.List)
		users.GET("/search", usersHandler.Search)
	}

	cards := r.Group("/cards", authRequired)
	{
		cards.POST("", cardsHandler.Save)
		cards.GET("/me", cardsHandler.GetOwn)
		cards.GET("/:userId", cardsHandler.GetByOwner)
		cards.DELETE("", cardsHandler.Delete)
	}

	friends := r.Group("/friends", authRequired)
	{
		friends.POST("/request", friendshipsHandler.SendRequest)
		friends.GET("/requests", friendshipsHandler.ListRequests)
		friends.POST("/accept/:id", friendshipsHandler.Accept)
		friends.GET("", friendshipsHandler.List)
		friends.DELETE("/:id", friendshipsHandler.Remove)
	}

	comments := r.Group("/comments", authRequired)
	{
		comments.POST("", commentsHandler.Post)
		comments.GET("/:cardOwnerId", commentsHandler.List)
		comments.GET("/:cardOwnerId/:row/:col", commentsHandler.List)
		comments.DELETE("/:id", commentsHandler.Delete)
	}

	reactions := r.Group("/reactions", authRequired)
	{
		reactions.POST("", reactionsHandler.Add)
		reactions.DELETE("", reactionsHandler.Remove)
		reactions.GET("/:commentId", reactionsHandler.List)
	}

	groups := r.Group("/groups", authRequired)
	{
		groups.POST("", groupsHandler.Create)
		groups.GET("", groupsHandler.List)
		groups.GET("/:id", groupsHandler.Get)
		groups.POST("/:id/invite", groupsHandler.Invite)
		groups.POST("/:id/accept", groupsHandler.AcceptInvite)
		groups.GET("/:id/members", groupsHandler.Members)
		groups.POST("/:id/promote/:userId", groupsHandler.Promote)
		groups.POST("/:id/leave", groupsHandler.Leave)
		groups.DELETE("/:id", groupsHandler.Delete)

		groups.POST("/:id/comments", groupCommentsHandler.Post)
		groups.GET("/:id/comments", groupCommentsHandler.List)
		groups.DELETE("/:id/comments/:commentId", groupCommentsHandler.Delete)
		groups.POST("/:id/comments/:commentId/reactions", groupCommentsHandler.AddReaction)
		groups.DELETE("/:id/comments/:commentId/reactions", groupCommentsHandler.RemoveReaction)
	}

	admin := r.Group("/admin", authRequired, middleware.AdminMiddleware())
	{
		admin.GET("/analytics", adminHandler.Analytics)
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/users/:id", adminHandler.UserDetail)
	}

	return r
}

package server

import (
	"anoa.com/spacemanagement/internal/middleware"
	"anoa.com/spacemanagement/pkg/token"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	userHttp "anoa.com/spacemanagement/internal/modules/user/delivery/http"
	userRepo "anoa.com/spacemanagement/internal/modules/user/repository"
	userService "anoa.com/spacemanagement/internal/modules/user/service"

	userNotifHttp "anoa.com/spacemanagement/internal/modules/usernotification/delivery/http"
	userNotifRepo "anoa.com/spacemanagement/internal/modules/usernotification/repository"
	userNotifService "anoa.com/spacemanagement/internal/modules/usernotification/service"
)

// AuthOptions carries the collaborators of the auth service. Without redis
// the websocket stream is unavailable but fan-out still works.
type AuthOptions struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Tokens         *token.Manager
	AllowedOrigins []string
	InternalAPIKey string
}

// NewAuthServer builds the secondary service: accounts and the per-user
// notification lists fed by the catalog.
func NewAuthServer(opts AuthOptions) *Server {
	authHandler := userHttp.NewAuthHandler(
		userService.NewAuthService(userRepo.NewUserRepository(opts.DB), opts.Tokens))

	userNotificationSvc := userNotifService.NewUserNotificationService(
		userNotifRepo.NewUserNotificationRepository(opts.DB),
		userNotifService.NewRedisPublisher(opts.Redis),
	)
	userNotificationHandler := userNotifHttp.NewUserNotificationHandler(userNotificationSvc, opts.Redis)

	router := newEngine(opts.AllowedOrigins)
	authMiddleware := middleware.NewAuthMiddleware(opts.Tokens)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	notifications := api.Group("/UserNotifications")
	{
		notifications.POST("/add-notification", middleware.RequireInternalKey(opts.InternalAPIKey), userNotificationHandler.AddNotification)

		protected := notifications.Group("")
		protected.Use(authMiddleware.RequireAuth())
		protected.GET("/notifications/:userId", userNotificationHandler.GetByUserID)
		protected.DELETE("/notifications/:id", userNotificationHandler.Delete)
		protected.GET("/ws", userNotificationHandler.Stream)
	}

	return &Server{engine: router}
}

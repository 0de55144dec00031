package router

import (
	"log"
	"time"

	"equiedge/config"
	"equiedge/internal/chat"
	"equiedge/internal/handler"
	"equiedge/internal/middleware"
	"equiedge/internal/repository"
	"equiedge/internal/service"
	"equiedge/pkg/cloudinary"
	"equiedge/pkg/cometchat"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, sdk chat.SDK) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewLimiter(cfg.Server.RateLimitPerMin, time.Minute)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	expertRepo := repository.NewExpertRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Chat workflow
	session := chat.NewSession(sdk, cometchat.Config{
		AppID:   cfg.CometChat.AppID,
		Region:  cfg.CometChat.Region,
		AuthKey: cfg.CometChat.AuthKey,
	})
	provisioner := chat.NewProvisioner(sdk)
	gate := chat.NewGate(profileRepo, bookingRepo, session, provisioner)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo, profileRepo)
	fcmSvc := service.NewFCMService(cfg.Firebase.ServiceAccountPath)
	if fcmSvc != nil {
		log.Printf("[FCM] Push notifications enabled")
	} else if cfg.Firebase.ServiceAccountPath != "" {
		log.Printf("[FCM] Push notifications disabled: failed to init (check service account file)")
	} else {
		log.Printf("[FCM] Push notifications disabled: set FIREBASE_SERVICE_ACCOUNT_PATH to enable")
	}
	notifSvc := service.NewNotificationService(notificationRepo, userRepo, fcmSvc)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, provisioner)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc, provisioner)
	meHandler := handler.NewMeHandler(userRepo, profileRepo, provisioner)
	expertHandler := handler.NewExpertHandler(profileRepo, expertRepo)
	bookingHandler := handler.NewBookingHandler(bookingRepo, conversationRepo, profileRepo, expertRepo, notifSvc)
	conversationHandler := handler.NewConversationHandler(conversationRepo)
	chatHandler := handler.NewChatHandler(gate, session)
	uploadHandler := handler.NewUploadHandler(cloud, profileRepo, expertRepo, provisioner)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
			authGroup.POST("/google/token", googleOAuthHandler.Token)
		}

		api.GET("/experts", authMw, expertHandler.ListExperts)
		api.GET("/experts/:id", authMw, expertHandler.GetExpert)

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", meHandler.GetProfile)
			me.PATCH("/profile", meHandler.UpdateProfile)
			me.POST("/avatar", uploadHandler.UploadAvatar)
			me.POST("/fcm-token", meHandler.RegisterFCMToken)
			me.GET("/notifications", notificationHandler.List)
			me.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			me.GET("/bookings", bookingHandler.List)
			me.GET("/conversations", conversationHandler.List)
		}

		api.POST("/bookings", authMw, bookingHandler.Create)

		chatGroup := api.Group("/chat")
		chatGroup.Use(authMw)
		{
			chatGroup.POST("/session", chatHandler.ResolveSession)
			chatGroup.POST("/messages", chatHandler.SendMessage)
			chatGroup.POST("/logout", chatHandler.Logout)
		}

		experts := api.Group("/experts")
		experts.Use(authMw, middleware.RequireExpert())
		{
			experts.POST("/services", expertHandler.CreateService)
			experts.POST("/videos", uploadHandler.UploadExpertVideo)
		}
	}

	return r
}

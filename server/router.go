package server

import (
	"net/http"
	"time"

	httpHandler "anime-hub/interfaces/http"
	"anime-hub/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	userHandler httpHandler.IUserHandler,
	channelHandler httpHandler.IChannelHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/login", userHandler.Login)
	router.POST("/register", userHandler.Register)

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public read path: cached channel videos and the channel directory.
	router.GET("/api/youtube", channelHandler.ListChannels)
	router.GET("/api/youtube/channel/:handle", channelHandler.GetChannelVideos)

	// Admin write path.
	admin := router.Group("api/youtube")
	admin.Use(middleware.Auth(), middleware.AdminOnly())
	admin.POST("", channelHandler.RegisterChannel)
	admin.DELETE("/:id", channelHandler.DeleteChannel)

	return router
}

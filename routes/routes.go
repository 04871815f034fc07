package routes

import (
	"centercoin/controllers"
	"centercoin/middleware"
	"centercoin/services/game"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, gc *game.GameController) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/rooms", controllers.CreateRoom(gc))

	api.POST("/rooms/:room_code/join", controllers.JoinRoom(gc))

	api.GET("/rooms/:room_code", controllers.GetRoomInfo(gc))

	api.GET("/games/:room_code", controllers.GetGameHistory(db))

	// Routes acting on behalf of a joined player
	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired)
	{
		authentication.POST("/rooms/:room_code/leave", controllers.LeaveRoom(gc))
	}
}

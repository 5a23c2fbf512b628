package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/RenaRill/restaurant-order-system/controllers"
)

func UserRoutes(incomingRoutes *gin.Engine, repo controllers.UserProvider) {
	incomingRoutes.POST("/auth/signup", controllers.SignUp(repo))
	incomingRoutes.POST("/auth/token", controllers.Token(repo))
	incomingRoutes.GET("/ws", controllers.HandleWebSocket())
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/RenaRill/restaurant-order-system/controllers"
)

func CategoryRoutes(incomingRoutes *gin.Engine, repo controllers.CategoryProvider, publicRead bool) {
	incomingRoutes.GET("/categories", controllers.GetCategories(repo, publicRead))
	incomingRoutes.GET("/categories/:category_id", controllers.GetCategory(repo, publicRead))
	incomingRoutes.POST("/categories", controllers.CreateCategory(repo))
	incomingRoutes.PUT("/categories/:category_id", controllers.UpdateCategory(repo))
	incomingRoutes.DELETE("/categories/:category_id", controllers.DeleteCategory(repo))
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/RenaRill/restaurant-order-system/controllers"
)

func DishRoutes(incomingRoutes *gin.Engine, repo controllers.DishProvider, publicRead bool) {
	incomingRoutes.GET("/dishes", controllers.GetDishes(repo, publicRead))
	incomingRoutes.GET("/dishes/:dish_id", controllers.GetDish(repo, publicRead))
	incomingRoutes.POST("/dishes", controllers.CreateDish(repo))
	incomingRoutes.PUT("/dishes/:dish_id", controllers.UpdateDish(repo))
	incomingRoutes.DELETE("/dishes/:dish_id", controllers.DeleteDish(repo))
}

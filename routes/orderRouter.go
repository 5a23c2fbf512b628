package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/RenaRill/restaurant-order-system/controllers"
)

func OrderRoutes(incomingRoutes *gin.Engine, repo controllers.OrderProvider) {
	incomingRoutes.GET("/orders", controllers.GetOrders(repo))
	incomingRoutes.GET("/orders/:order_id", controllers.GetOrder(repo))
	incomingRoutes.POST("/orders", controllers.CreateOrder(repo))
	incomingRoutes.PUT("/orders/:order_id", controllers.UpdateOrder(repo))
	incomingRoutes.POST("/orders/:order_id/mark_delivered", controllers.MarkDelivered(repo))
	incomingRoutes.POST("/orders/:order_id/mark_paid", controllers.MarkPaid(repo))
}

package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/RenaRill/restaurant-order-system/database"
	"github.com/RenaRill/restaurant-order-system/middleware"
	"github.com/RenaRill/restaurant-order-system/models"
	"github.com/RenaRill/restaurant-order-system/routes"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using process environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	// Catalog read policy: public by default, set PUBLIC_CATALOG=false to
	// require authentication for category and dish reads.
	publicCatalog := os.Getenv("PUBLIC_CATALOG") != "false"

	db := database.Connect()
	database.Migrate(db)

	categoriesRepo := models.NewCategoriesRepository(db)
	dishesRepo := models.NewDishesRepository(db)
	ordersRepo := models.NewOrdersRepository(db)
	usersRepo := models.NewUsersRepository(db)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.Authentication())

	routes.UserRoutes(router, usersRepo)
	routes.CategoryRoutes(router, categoriesRepo, publicCatalog)
	routes.DishRoutes(router, dishesRepo, publicCatalog)
	routes.OrderRoutes(router, ordersRepo)

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/RenaRill/restaurant-order-system/models"
)

type DishProvider interface {
	GetFilteredDishes(filters models.DishFilters) ([]models.Dish, error)
	GetDishByID(id uint) (*models.Dish, error)
	CreateDish(dish *models.Dish) error
	UpdateDish(dish *models.Dish) error
	DeleteDish(id uint) error
}

type dishRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=100"`
	Price      decimal.Decimal `json:"price" validate:"required"`
	CategoryID uint            `json:"category_id" validate:"required"`
}

func GetDishes(repo DishProvider, publicRead bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireCatalogRead(c, publicRead) {
			return
		}

		var filters models.DishFilters
		if categoryParam := c.Query("category"); categoryParam != "" {
			categoryID, err := strconv.ParseUint(categoryParam, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category filter"})
				return
			}
			id := uint(categoryID)
			filters.CategoryID = &id
		}

		dishes, err := repo.GetFilteredDishes(filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dishes"})
			return
		}
		c.JSON(http.StatusOK, dishes)
	}
}

func GetDish(repo DishProvider, publicRead bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireCatalogRead(c, publicRead) {
			return
		}
		id, ok := parseIDParam(c, "dish_id")
		if !ok {
			return
		}
		dish, err := repo.GetDishByID(id)
		if err != nil {
			if errors.Is(err, models.ErrDishNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch dish"})
			return
		}
		c.JSON(http.StatusOK, dish)
	}
}

func CreateDish(repo DishProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		var req dishRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
			return
		}
		dish := &models.Dish{
			Name:       req.Name,
			Price:      req.Price,
			CategoryID: req.CategoryID,
		}
		if err := repo.CreateDish(dish); err != nil {
			if errors.Is(err, models.ErrCategoryNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create dish"})
			return
		}
		c.JSON(http.StatusCreated, dish)
	}
}

func UpdateDish(repo DishProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		id, ok := parseIDParam(c, "dish_id")
		if !ok {
			return
		}
		var req dishRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
			return
		}
		dish := &models.Dish{
			ID:         id,
			Name:       req.Name,
			Price:      req.Price,
			CategoryID: req.CategoryID,
		}
		if err := repo.UpdateDish(dish); err != nil {
			if errors.Is(err, models.ErrDishNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update dish"})
			return
		}
		c.JSON(http.StatusOK, dish)
	}
}

func DeleteDish(repo DishProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		id, ok := parseIDParam(c, "dish_id")
		if !ok {
			return
		}
		if err := repo.DeleteDish(id); err != nil {
			if errors.Is(err, models.ErrDishNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete dish"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "dish deleted"})
	}
}

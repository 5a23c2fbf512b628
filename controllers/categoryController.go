package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RenaRill/restaurant-order-system/models"
)

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	CreateCategory(category *models.Category) error
	UpdateCategory(category *models.Category) error
	DeleteCategory(id uint) error
}

type categoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func GetCategories(repo CategoryProvider, publicRead bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireCatalogRead(c, publicRead) {
			return
		}
		categories, err := repo.GetAllCategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func GetCategory(repo CategoryProvider, publicRead bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireCatalogRead(c, publicRead) {
			return
		}
		id, ok := parseIDParam(c, "category_id")
		if !ok {
			return
		}
		category, err := repo.GetCategoryByID(id)
		if err != nil {
			if errors.Is(err, models.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func CreateCategory(repo CategoryProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		var req categoryRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category := &models.Category{Name: req.Name}
		if err := repo.CreateCategory(category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func UpdateCategory(repo CategoryProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		id, ok := parseIDParam(c, "category_id")
		if !ok {
			return
		}
		var req categoryRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category := &models.Category{ID: id, Name: req.Name}
		if err := repo.UpdateCategory(category); err != nil {
			if errors.Is(err, models.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategory(repo CategoryProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}
		id, ok := parseIDParam(c, "category_id")
		if !ok {
			return
		}
		if err := repo.DeleteCategory(id); err != nil {
			if errors.Is(err, models.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
	}
}

package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/RenaRill/restaurant-order-system/helpers"
	"github.com/RenaRill/restaurant-order-system/middleware"
	"github.com/RenaRill/restaurant-order-system/models"
)

// --- Mock Repository ---

type MockCategoryRepo struct {
	Categories []models.Category
	CreateErr  error

	LastSaved   *models.Category
	LastDeleted *uint
}

func (m *MockCategoryRepo) GetAllCategories() ([]models.Category, error) {
	return m.Categories, nil
}

func (m *MockCategoryRepo) GetCategoryByID(id uint) (*models.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			return &m.Categories[i], nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

func (m *MockCategoryRepo) CreateCategory(category *models.Category) error {
	m.LastSaved = category
	return m.CreateErr
}

func (m *MockCategoryRepo) UpdateCategory(category *models.Category) error {
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i].Name = category.Name
			m.LastSaved = category
			return nil
		}
	}
	return models.ErrCategoryNotFound
}

func (m *MockCategoryRepo) DeleteCategory(id uint) error {
	for i := range m.Categories {
		if m.Categories[i].ID == id {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			m.LastDeleted = &id
			return nil
		}
	}
	return models.ErrCategoryNotFound
}

func newCategoryRouter(repo *MockCategoryRepo, claims *helpers.SignedDetails, publicRead bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(middleware.ClaimsKey, claims)
		}
	})
	router.GET("/categories", GetCategories(repo, publicRead))
	router.GET("/categories/:category_id", GetCategory(repo, publicRead))
	router.POST("/categories", CreateCategory(repo))
	router.PUT("/categories/:category_id", UpdateCategory(repo))
	router.DELETE("/categories/:category_id", DeleteCategory(repo))
	return router
}

func sampleCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Soups"},
		{ID: 2, Name: "Desserts"},
	}
}

// --- Tests ---

func TestCategoryReadPolicy(t *testing.T) {
	testCases := []struct {
		name           string
		claims         *helpers.SignedDetails
		publicRead     bool
		expectedStatus int
	}{
		{"public catalog, anonymous allowed", nil, true, http.StatusOK},
		{"private catalog, anonymous refused", nil, false, http.StatusUnauthorized},
		{"private catalog, kitchen allowed", kitchenClaims(5), false, http.StatusOK},
		{"private catalog, waiter allowed", waiterClaims(7), false, http.StatusOK},
		{"private catalog, admin allowed", adminClaims(1), false, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockCategoryRepo{Categories: sampleCategories()}
			router := newCategoryRouter(repo, tc.claims, tc.publicRead)

			rec := performRequest(router, "GET", "/categories", "")
			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.expectedStatus == http.StatusOK {
				var categories []models.Category
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&categories))
				assert.Len(t, categories, 2)
			}
		})
	}
}

func TestCategoryWritePolicy(t *testing.T) {
	body := `{"name":"Drinks"}`

	testCases := []struct {
		name           string
		claims         *helpers.SignedDetails
		expectedStatus int
		saved          bool
	}{
		{"admin may create", adminClaims(1), http.StatusCreated, true},
		{"waiter refused", waiterClaims(7), http.StatusForbidden, false},
		{"kitchen refused", kitchenClaims(5), http.StatusForbidden, false},
		{"anonymous refused", nil, http.StatusUnauthorized, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockCategoryRepo{}
			router := newCategoryRouter(repo, tc.claims, true)

			rec := performRequest(router, "POST", "/categories", body)
			assert.Equal(t, tc.expectedStatus, rec.Code)

			if tc.saved {
				if assert.NotNil(t, repo.LastSaved) {
					assert.Equal(t, "Drinks", repo.LastSaved.Name)
				}
			} else {
				assert.Nil(t, repo.LastSaved)
			}
		})
	}
}

func TestCategoryCRUD(t *testing.T) {
	t.Run("get by id", func(t *testing.T) {
		repo := &MockCategoryRepo{Categories: sampleCategories()}
		router := newCategoryRouter(repo, nil, true)

		rec := performRequest(router, "GET", "/categories/2", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var category models.Category
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&category))
		assert.Equal(t, "Desserts", category.Name)
	})

	t.Run("get unknown id", func(t *testing.T) {
		repo := &MockCategoryRepo{Categories: sampleCategories()}
		router := newCategoryRouter(repo, nil, true)

		rec := performRequest(router, "GET", "/categories/99", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		repo := &MockCategoryRepo{Categories: sampleCategories()}
		router := newCategoryRouter(repo, adminClaims(1), true)

		rec := performRequest(router, "PUT", "/categories/1", `{"name":"Starters"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Starters", repo.Categories[0].Name)
	})

	t.Run("delete", func(t *testing.T) {
		repo := &MockCategoryRepo{Categories: sampleCategories()}
		router := newCategoryRouter(repo, adminClaims(1), true)

		rec := performRequest(router, "DELETE", "/categories/1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.NotNil(t, repo.LastDeleted) {
			assert.Equal(t, uint(1), *repo.LastDeleted)
		}
	})

	t.Run("delete unknown id", func(t *testing.T) {
		repo := &MockCategoryRepo{Categories: sampleCategories()}
		router := newCategoryRouter(repo, adminClaims(1), true)

		rec := performRequest(router, "DELETE", "/categories/99", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create with empty name rejected", func(t *testing.T) {
		repo := &MockCategoryRepo{}
		router := newCategoryRouter(repo, adminClaims(1), true)

		rec := performRequest(router, "POST", "/categories", `{"name":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, repo.LastSaved)
	})
}

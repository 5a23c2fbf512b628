package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/RenaRill/restaurant-order-system/helpers"
	"github.com/RenaRill/restaurant-order-system/models"
)

type UserProvider interface {
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateTokens(userID uint, token, refreshToken string) error
}

type signUpRequest struct {
	Username  string `json:"username" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"required,min=6"`
	IsAdmin   bool   `json:"is_admin"`
	IsWaiter  bool   `json:"is_waiter"`
	IsKitchen bool   `json:"is_kitchen"`
}

type tokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func SignUp(repo UserProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signUpRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := &models.User{
			Username:  req.Username,
			Email:     req.Email,
			Password:  HashPassword(req.Password),
			IsAdmin:   req.IsAdmin,
			IsWaiter:  req.IsWaiter,
			IsKitchen: req.IsKitchen,
		}
		if err := repo.CreateUser(user); err != nil {
			if errors.Is(err, models.ErrUsernameTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// Token exchanges credentials for a signed token pair. The access token
// embeds the caller's role flags as they are at this moment.
func Token(repo UserProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tokenRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := repo.GetUserByUsername(req.Username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "username or password is incorrect"})
			return
		}
		if !VerifyPassword(req.Password, user.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "username or password is incorrect"})
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(
			user.ID, user.Username, user.IsAdmin, user.IsWaiter, user.IsKitchen)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
			return
		}
		if err := repo.UpdateTokens(user.ID, token, refreshToken); err != nil {
			log.Printf("failed to store tokens for user %d: %v", user.ID, err)
		}

		c.JSON(http.StatusOK, gin.H{
			"token":         token,
			"refresh_token": refreshToken,
		})
	}
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(password string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"github.com/RenaRill/restaurant-order-system/middleware"
	"github.com/RenaRill/restaurant-order-system/permissions"
)

var validate = validator.New()

// callerRole resolves the request's role and user id from the claims the
// authentication middleware stored, falling back to Anonymous.
func callerRole(c *gin.Context) (permissions.Role, uint) {
	claims := middleware.GetClaims(c)
	role := permissions.Resolve(claims)
	if claims == nil {
		return role, 0
	}
	return role, claims.UserID
}

// respondPolicyError maps a permission refusal to the right status code:
// 401 for missing credentials, 403 for everything else. The reason is
// always sent back to the caller.
func respondPolicyError(c *gin.Context, err error) {
	status := http.StatusForbidden
	if errors.Is(err, permissions.ErrUnauthenticated) {
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// requireAdmin guards catalog mutations.
func requireAdmin(c *gin.Context) bool {
	role, _ := callerRole(c)
	if role == permissions.Admin {
		return true
	}
	if role == permissions.Anonymous {
		c.JSON(http.StatusUnauthorized, gin.H{"error": permissions.ErrUnauthenticated.Error()})
	} else {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
	}
	return false
}

// requireCatalogRead guards catalog reads. With a public catalog everyone
// may read; otherwise any authenticated role is enough.
func requireCatalogRead(c *gin.Context, publicRead bool) bool {
	if publicRead {
		return true
	}
	role, _ := callerRole(c)
	if role == permissions.Anonymous {
		c.JSON(http.StatusUnauthorized, gin.H{"error": permissions.ErrUnauthenticated.Error()})
		return false
	}
	return true
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

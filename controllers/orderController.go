package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RenaRill/restaurant-order-system/models"
	"github.com/RenaRill/restaurant-order-system/permissions"
)

type OrderProvider interface {
	GetFilteredOrders(filters models.OrderFilters) ([]models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	CreateOrder(userID uint, items []models.OrderItemInput) (*models.Order, error)
	UpdateOrderStatus(id uint, from, to string) error
}

type createOrderRequest struct {
	Items []models.OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type updateOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

func GetOrders(repo OrderProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, callerID := callerRole(c)

		status := c.Query("status")
		if status != "" && !models.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
			return
		}

		filters, err := permissions.ListScope(role, callerID, status)
		if err != nil {
			respondPolicyError(c, err)
			return
		}

		orders, err := repo.GetFilteredOrders(filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrder(repo OrderProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, callerID := callerRole(c)
		if role == permissions.Anonymous {
			respondPolicyError(c, permissions.ErrUnauthenticated)
			return
		}
		id, ok := parseIDParam(c, "order_id")
		if !ok {
			return
		}
		order, err := repo.GetOrderByID(id)
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}
		if err := permissions.CanViewOrder(role, callerID, order); err != nil {
			respondPolicyError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// CreateOrder accepts the order lines, validates every dish reference and
// quantity, and writes the order atomically. The owner is always the
// authenticated caller; any owner supplied in the body is ignored.
func CreateOrder(repo OrderProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, callerID := callerRole(c)
		if err := permissions.CanCreateOrder(role); err != nil {
			respondPolicyError(c, err)
			return
		}

		var req createOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := repo.CreateOrder(callerID, req.Items)
		if err != nil {
			if errors.Is(err, models.ErrUnknownDish) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
			return
		}

		notifyOrderEvent("newOrder", order)
		c.JSON(http.StatusCreated, order)
	}
}

// UpdateOrder is the general update path. Only the status can change, and
// only along the lifecycle: the ownership and role checks of the dedicated
// transition actions cannot be bypassed here.
func UpdateOrder(repo OrderProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, callerID := callerRole(c)
		id, ok := parseIDParam(c, "order_id")
		if !ok {
			return
		}

		var req updateOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !models.ValidStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
			return
		}

		order, err := repo.GetOrderByID(id)
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		if err := permissions.CanUpdateOrder(role, callerID, order); err != nil {
			respondPolicyError(c, err)
			return
		}
		if err := permissions.CanTransition(order.Status, req.Status); err != nil {
			respondPolicyError(c, err)
			return
		}

		if order.Status != req.Status {
			if err := applyTransition(c, repo, order, req.Status); err != nil {
				return
			}
			order.Status = req.Status
			notifyOrderEvent("statusChanged", order)
		}
		c.JSON(http.StatusOK, order)
	}
}

// MarkDelivered records that the waiter served the order, moving it from
// ACCEPTED to DELIVERED.
func MarkDelivered(repo OrderProvider) gin.HandlerFunc {
	return markTransition(repo, models.StatusAccepted, models.StatusDelivered)
}

// MarkPaid records payment, moving the order from DELIVERED to its terminal
// PAID status.
func MarkPaid(repo OrderProvider) gin.HandlerFunc {
	return markTransition(repo, models.StatusDelivered, models.StatusPaid)
}

func markTransition(repo OrderProvider, from, to string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, callerID := callerRole(c)
		id, ok := parseIDParam(c, "order_id")
		if !ok {
			return
		}

		order, err := repo.GetOrderByID(id)
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		if err := permissions.CanMarkOrder(role, callerID, order); err != nil {
			respondPolicyError(c, err)
			return
		}
		if order.Status != from {
			respondPolicyError(c, permissions.ErrInvalidTransition)
			return
		}

		if err := applyTransition(c, repo, order, to); err != nil {
			return
		}
		order.Status = to
		notifyOrderEvent("statusChanged", order)
		c.JSON(http.StatusOK, gin.H{"status": to})
	}
}

// applyTransition performs the conditional status write and translates a
// lost race into a forbidden response. The response is already written when
// an error is returned.
func applyTransition(c *gin.Context, repo OrderProvider, order *models.Order, to string) error {
	err := repo.UpdateOrderStatus(order.ID, order.Status, to)
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, models.ErrStatusConflict):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
	}
	return err
}

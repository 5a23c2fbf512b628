// Package permissions decides, for every order-related action, which orders
// the caller may see and which mutations the caller may perform. All checks
// run before anything is persisted, and every refusal carries a reason the
// caller gets to read.
package permissions

import (
	"errors"

	"github.com/RenaRill/restaurant-order-system/helpers"
	"github.com/RenaRill/restaurant-order-system/models"
)

// Role is resolved once per request from the token claims.
type Role int

const (
	Anonymous Role = iota
	Kitchen
	Waiter
	Admin
)

func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	case Waiter:
		return "waiter"
	case Kitchen:
		return "kitchen"
	}
	return "anonymous"
}

// Refusal reasons. Controllers map ErrUnauthenticated to 401 and the rest
// to 403.
var (
	ErrUnauthenticated     = errors.New("authentication required")
	ErrWaiterOnlyCreate    = errors.New("only waiters can create orders")
	ErrKitchenAcceptedOnly = errors.New("kitchen may only access orders with status ACCEPTED")
	ErrKitchenReadOnly     = errors.New("kitchen is not allowed to modify orders")
	ErrNotOrderOwner       = errors.New("you can only modify your own orders")
	ErrWaiterOnlyAction    = errors.New("only the waiter who owns the order can perform this action")
	ErrInvalidTransition   = errors.New("order status can only move forward through ACCEPTED, DELIVERED, PAID")
)

// Resolve derives a single role from the claim flags. Admin wins over
// everything; between the staff flags, kitchen is checked first, matching
// the order the visibility rules are evaluated in. Absent or unreadable
// claims resolve to Anonymous, which can do nothing.
func Resolve(claims *helpers.SignedDetails) Role {
	if claims == nil {
		return Anonymous
	}
	switch {
	case claims.IsAdmin:
		return Admin
	case claims.IsKitchen:
		return Kitchen
	case claims.IsWaiter:
		return Waiter
	}
	return Anonymous
}

// ListScope returns the repository filters for an order listing. Kitchen is
// pinned to ACCEPTED orders and the status parameter is ignored for it;
// waiters are pinned to their own orders; admins see everything. Both
// waiter and admin listings may be narrowed by an explicit status.
func ListScope(role Role, callerID uint, status string) (models.OrderFilters, error) {
	switch role {
	case Kitchen:
		return models.OrderFilters{Status: models.StatusAccepted}, nil
	case Waiter:
		return models.OrderFilters{UserID: &callerID, Status: status}, nil
	case Admin:
		return models.OrderFilters{Status: status}, nil
	}
	return models.OrderFilters{}, ErrUnauthenticated
}

// CanViewOrder authorizes a direct single-order lookup. A kitchen lookup of
// a non-ACCEPTED order is forbidden, not hidden as a 404.
func CanViewOrder(role Role, callerID uint, order *models.Order) error {
	switch role {
	case Admin:
		return nil
	case Kitchen:
		if order.Status != models.StatusAccepted {
			return ErrKitchenAcceptedOnly
		}
		return nil
	case Waiter:
		if order.UserID != callerID {
			return ErrNotOrderOwner
		}
		return nil
	}
	return ErrUnauthenticated
}

// CanCreateOrder permits creation for waiters only. The owner of the new
// order is always the caller; that is enforced by the controller.
func CanCreateOrder(role Role) error {
	if role == Anonymous {
		return ErrUnauthenticated
	}
	if role != Waiter {
		return ErrWaiterOnlyCreate
	}
	return nil
}

// CanUpdateOrder authorizes a general order update. Kitchen is refused
// unconditionally; waiters may only touch their own orders.
func CanUpdateOrder(role Role, callerID uint, order *models.Order) error {
	switch role {
	case Admin:
		return nil
	case Kitchen:
		return ErrKitchenReadOnly
	case Waiter:
		if order.UserID != callerID {
			return ErrNotOrderOwner
		}
		return nil
	}
	return ErrUnauthenticated
}

// CanMarkOrder authorizes the mark_delivered / mark_paid actions. These are
// deliberately restricted to the owning waiter: even admins are excluded,
// mirroring the workflow where only the waiter serving the table records
// delivery and payment.
func CanMarkOrder(role Role, callerID uint, order *models.Order) error {
	if role == Anonymous {
		return ErrUnauthenticated
	}
	if role != Waiter {
		return ErrWaiterOnlyAction
	}
	if order.UserID != callerID {
		return ErrNotOrderOwner
	}
	return nil
}

// CanTransition validates a status overwrite on the general update path.
// Keeping the current status is a permitted no-op; otherwise only the
// single next step of the lifecycle is allowed. Terminal orders cannot
// move backward, and steps cannot be skipped.
func CanTransition(from, to string) error {
	if from == to {
		return nil
	}
	if models.NextStatus(from) != to {
		return ErrInvalidTransition
	}
	return nil
}

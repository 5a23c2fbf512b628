package models

import "time"

// Order lifecycle. Transitions only move forward, one step at a time:
// ACCEPTED -> DELIVERED -> PAID. PAID is terminal.
const (
	StatusAccepted  = "ACCEPTED"
	StatusDelivered = "DELIVERED"
	StatusPaid      = "PAID"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	return s == StatusAccepted || s == StatusDelivered || s == StatusPaid
}

// NextStatus returns the status following s in the lifecycle, or "" when s
// is terminal or unknown.
func NextStatus(s string) string {
	switch s {
	case StatusAccepted:
		return StatusDelivered
	case StatusDelivered:
		return StatusPaid
	}
	return ""
}

// Order belongs to the waiter who created it. The owner never changes after
// creation.
type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uint        `json:"user_id" gorm:"not null"`
	User      User        `json:"-" gorm:"foreignKey:UserID"`
	Status    string      `json:"status" gorm:"type:varchar(10);not null;default:ACCEPTED"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

func (o *Order) TableName() string {
	return "orders"
}

// OrderItem is a line of an order. Items are written once, together with the
// order, and never edited afterwards.
type OrderItem struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	OrderID  uint `json:"order_id" gorm:"not null"`
	DishID   uint `json:"dish_id" gorm:"not null"`
	Dish     Dish `json:"-" gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
	Quantity int  `json:"quantity" gorm:"not null;default:1"`
}

func (i *OrderItem) TableName() string {
	return "order_items"
}

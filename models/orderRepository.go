package models

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrUnknownDish is returned when an order line references a dish
	// that does not exist.
	ErrUnknownDish = errors.New("order references an unknown dish")
	// ErrStatusConflict is returned when a conditional status update
	// matched no row because the order's status had already moved on.
	ErrStatusConflict = errors.New("order status has already changed")
)

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	DishID   uint `json:"dish_id" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,min=1"`
}

// OrderFilters narrows order listings. A nil UserID means "any owner",
// an empty Status means "any status".
type OrderFilters struct {
	UserID *uint
	Status string
}

type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

func (r *OrdersRepository) GetFilteredOrders(filters OrderFilters) ([]Order, error) {
	query := r.db.Model(&Order{}).Preload("Items")
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	var orders []Order
	if err := query.Order("created_at").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrdersRepository) GetOrderByID(id uint) (*Order, error) {
	var order Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// CreateOrder writes the order and all of its items in one transaction.
// Every referenced dish must exist; otherwise nothing is persisted and
// ErrUnknownDish is returned.
func (r *OrdersRepository) CreateOrder(userID uint, items []OrderItemInput) (*Order, error) {
	order := &Order{
		UserID: userID,
		Status: StatusAccepted,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var count int64
			if err := tx.Model(&Dish{}).Where("id = ?", item.DishID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrUnknownDish
			}
			order.Items = append(order.Items, OrderItem{
				DishID:   item.DishID,
				Quantity: item.Quantity,
			})
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus moves the order from one status to another with a single
// conditional UPDATE, so concurrent transition attempts cannot both apply.
// Exactly one of two racing callers observes success; the other gets
// ErrStatusConflict.
func (r *OrdersRepository) UpdateOrderStatus(id uint, from, to string) error {
	res := r.db.Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOrderNotFound
		}
		return ErrStatusConflict
	}
	return nil
}

package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrDishNotFound is returned when a dish is not found.
var ErrDishNotFound = errors.New("dish not found")

type DishFilters struct {
	CategoryID *uint
}

type DishesRepository struct {
	db *gorm.DB
}

func NewDishesRepository(db *gorm.DB) *DishesRepository {
	return &DishesRepository{
		db: db,
	}
}

func (r *DishesRepository) GetFilteredDishes(filters DishFilters) ([]Dish, error) {
	query := r.db.Model(&Dish{})
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	var dishes []Dish
	if err := query.Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *DishesRepository) GetDishByID(id uint) (*Dish, error) {
	var dish Dish
	if err := r.db.Preload("Category").First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return &dish, nil
}

func (r *DishesRepository) CreateDish(dish *Dish) error {
	// Reject dishes pointing at a category that does not exist so the
	// caller can answer 400 instead of surfacing an FK violation.
	var count int64
	if err := r.db.Model(&Category{}).Where("id = ?", dish.CategoryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return r.db.Create(dish).Error
}

func (r *DishesRepository) UpdateDish(dish *Dish) error {
	res := r.db.Model(&Dish{}).Where("id = ?", dish.ID).Updates(map[string]interface{}{
		"name":        dish.Name,
		"price":       dish.Price,
		"category_id": dish.CategoryID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDishNotFound
	}
	return nil
}

func (r *DishesRepository) DeleteDish(id uint) error {
	res := r.db.Delete(&Dish{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDishNotFound
	}
	return nil
}

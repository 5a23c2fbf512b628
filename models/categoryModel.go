package models

// Category groups dishes on the menu. Deleting a category removes its
// dishes as well (FK cascade).
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null" validate:"required,min=1,max=100"`
}

func (c *Category) TableName() string {
	return "categories"
}

package models

import "time"

// User account. Role flags are independent booleans; an account may carry
// none or several of them. Precedence between them is resolved per request
// by the permissions package, not here.
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Username  string `json:"username" gorm:"uniqueIndex;not null" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"-" gorm:"not null"`
	IsAdmin   bool   `json:"is_admin"`
	IsWaiter  bool   `json:"is_waiter"`
	IsKitchen bool   `json:"is_kitchen"`

	Token        string    `json:"-"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

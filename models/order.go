package models

import "time"

// Order represents a purchase placed by a user
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderDate time.Time `gorm:"not null" json:"order_date"`
	UserID    uint      `gorm:"not null;index" json:"user_id"` // foreign key to users table
	User      *User     `gorm:"foreignKey:UserID" json:"-"`    // declares the constraint, never loaded
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderTotal is the computed price of every product in an order
type OrderTotal struct {
	OrderID    uint    `json:"order_id"`
	TotalPrice float64 `json:"total_price"`
}

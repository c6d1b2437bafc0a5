package models

import "time"

// OrderProduct links a product to an order.
// Each (order_id, product_id) pair appears at most once.
type OrderProduct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;uniqueIndex:idx_order_products_pair" json:"order_id"`
	Order     *Order    `gorm:"foreignKey:OrderID" json:"-"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_order_products_pair;index" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for the OrderProduct model
func (OrderProduct) TableName() string {
	return "order_products"
}

// All returns every model in migration order
func All() []interface{} {
	return []interface{}{&User{}, &Product{}, &Order{}, &OrderProduct{}}
}

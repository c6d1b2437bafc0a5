package models

import "time"

// User represents a customer who places orders
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:80;not null" json:"name"`
	Address   string    `gorm:"size:200;not null" json:"address"`
	Email     string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

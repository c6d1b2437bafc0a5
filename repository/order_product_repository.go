package repository

import (
	"context"

	"github.com/kendall-kelly/ecommerce-api/models"
	"gorm.io/gorm"
)

// OrderProductRepository defines data-access operations for order/product links.
type OrderProductRepository interface {
	Create(ctx context.Context, link *models.OrderProduct) error
	Find(ctx context.Context, orderID, productID uint) (*models.OrderProduct, error)
	FindByOrderID(ctx context.Context, orderID uint) ([]models.OrderProduct, error)
	Delete(ctx context.Context, orderID, productID uint) error
}

// GormOrderProductRepository implements OrderProductRepository using GORM.
type GormOrderProductRepository struct {
	db *gorm.DB
}

// NewGormOrderProductRepository creates a new GormOrderProductRepository.
func NewGormOrderProductRepository(db *gorm.DB) OrderProductRepository {
	return &GormOrderProductRepository{db: db}
}

func (r *GormOrderProductRepository) Create(ctx context.Context, link *models.OrderProduct) error {
	return translate(r.db.WithContext(ctx).Omit("Order", "Product").Create(link).Error)
}

func (r *GormOrderProductRepository) Find(ctx context.Context, orderID, productID uint) (*models.OrderProduct, error) {
	var op models.OrderProduct
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		First(&op).Error; err != nil {
		return nil, translate(err)
	}
	return &op, nil
}

func (r *GormOrderProductRepository) FindByOrderID(ctx context.Context, orderID uint) ([]models.OrderProduct, error) {
	links := []models.OrderProduct{}
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&links).Error; err != nil {
		return nil, translate(err)
	}
	return links, nil
}

func (r *GormOrderProductRepository) Delete(ctx context.Context, orderID, productID uint) error {
	res := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&models.OrderProduct{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

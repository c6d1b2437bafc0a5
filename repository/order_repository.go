package repository

import (
	"context"

	"github.com/kendall-kelly/ecommerce-api/models"
	"gorm.io/gorm"
)

// OrderRepository defines data-access operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]models.Order, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(order).Error)
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&orders).Error; err != nil {
		return nil, translate(err)
	}
	return orders, nil
}

func (r *GormOrderRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return translate(r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(updates).Error)
}

// Delete removes the order and its product links
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.Select("id").First(&o, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

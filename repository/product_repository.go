package repository

import (
	"context"

	"github.com/kendall-kelly/ecommerce-api/models"
	"gorm.io/gorm"
)

// ProductRepository defines data-access operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByOrderID(ctx context.Context, orderID uint) ([]models.Product, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return translate(r.db.WithContext(ctx).Create(product).Error)
}

func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

// FindByOrderID returns the products linked to an order, ordered by product id
func (r *GormProductRepository) FindByOrderID(ctx context.Context, orderID uint) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.WithContext(ctx).
		Joins("JOIN order_products ON order_products.product_id = products.id").
		Where("order_products.order_id = ?", orderID).
		Order("products.id").
		Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

func (r *GormProductRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	return translate(r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(updates).Error)
}

// Delete removes the product and every order link pointing at it
func (r *GormProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Product
		if err := tx.Select("id").First(&p, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

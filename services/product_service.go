package services

import (
	"context"

	"github.com/kendall-kelly/ecommerce-api/apperrors"
	"github.com/kendall-kelly/ecommerce-api/models"
	"github.com/kendall-kelly/ecommerce-api/repository"
)

// ProductUpdate holds the fields a product update may change
type ProductUpdate struct {
	Name  *string
	Price *float64
}

// ProductService handles product records
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func negativePrice() error {
	return apperrors.Validation(map[string]string{"price": "Must be greater than or equal to 0."})
}

func (s *ProductService) Create(ctx context.Context, product *models.Product) error {
	if product.Price < 0 {
		return negativePrice()
	}
	if err := s.products.Create(ctx, product); err != nil {
		return apperrors.Internal("Failed to create product", err)
	}
	return nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "Product", "load product")
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, wrapRepoError(err, "Product", "load products")
	}
	return products, nil
}

// Update applies the supplied fields and returns the stored result
func (s *ProductService) Update(ctx context.Context, id uint, in ProductUpdate) (*models.Product, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, negativePrice()
		}
		updates["price"] = *in.Price
	}

	if len(updates) > 0 {
		if err := s.products.Update(ctx, id, updates); err != nil {
			return nil, wrapRepoError(err, "Product", "update product")
		}
	}

	return s.Get(ctx, id)
}

// Delete removes the product and unlinks it from every order
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return wrapRepoError(s.products.Delete(ctx, id), "Product", "delete product")
}

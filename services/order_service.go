package services

import (
	"context"
	"errors"
	"time"

	"github.com/kendall-kelly/ecommerce-api/apperrors"
	"github.com/kendall-kelly/ecommerce-api/models"
	"github.com/kendall-kelly/ecommerce-api/repository"
)

// OrderUpdate holds the fields an order update may change
type OrderUpdate struct {
	UserID    *uint
	OrderDate *time.Time
}

// OrderService handles orders and the products linked to them
type OrderService struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	products repository.ProductRepository
	links    repository.OrderProductRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orders repository.OrderRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
	links repository.OrderProductRepository,
) *OrderService {
	return &OrderService{
		orders:   orders,
		users:    users,
		products: products,
		links:    links,
	}
}

// requireUser reports a validation error on user_id when the user is missing
func (s *OrderService) requireUser(ctx context.Context, userID uint) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.Validation(map[string]string{"user_id": "User does not exist."})
		}
		return apperrors.Internal("Failed to load user", err)
	}
	return nil
}

// Create stores a new order for an existing user
func (s *OrderService) Create(ctx context.Context, order *models.Order) error {
	if err := s.requireUser(ctx, order.UserID); err != nil {
		return err
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return apperrors.Internal("Failed to create order", err)
	}
	return nil
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "Order", "load order")
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, wrapRepoError(err, "Order", "load orders")
	}
	return orders, nil
}

// ListForUser returns the user's orders. An unknown user yields an empty list.
func (s *OrderService) ListForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, wrapRepoError(err, "Order", "load orders")
	}
	return orders, nil
}

// Update applies the supplied fields and returns the stored result
func (s *OrderService) Update(ctx context.Context, id uint, in OrderUpdate) (*models.Order, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.UserID != nil {
		if err := s.requireUser(ctx, *in.UserID); err != nil {
			return nil, err
		}
		updates["user_id"] = *in.UserID
	}
	if in.OrderDate != nil {
		updates["order_date"] = *in.OrderDate
	}

	if len(updates) > 0 {
		if err := s.orders.Update(ctx, id, updates); err != nil {
			return nil, wrapRepoError(err, "Order", "update order")
		}
	}

	return s.Get(ctx, id)
}

// Delete removes the order and its product links
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return wrapRepoError(s.orders.Delete(ctx, id), "Order", "delete order")
}

// AddProduct links a product to an order. Linking the same product twice is
// rejected: first by a lookup, and if two requests race past it, by the
// unique index on the pair.
func (s *OrderService) AddProduct(ctx context.Context, orderID, productID uint) error {
	if _, err := s.Get(ctx, orderID); err != nil {
		return err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return wrapRepoError(err, "Product", "load product")
	}

	_, err := s.links.Find(ctx, orderID, productID)
	switch {
	case err == nil:
		return apperrors.AlreadyExists("Product already exists in the order")
	case !errors.Is(err, repository.ErrNotFound):
		return apperrors.Internal("Failed to check order products", err)
	}

	link := &models.OrderProduct{OrderID: orderID, ProductID: productID}
	if err := s.links.Create(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return apperrors.AlreadyExists("Product already exists in the order")
		}
		return apperrors.Internal("Failed to add product to order", err)
	}
	return nil
}

// RemoveProduct unlinks a product from an order
func (s *OrderService) RemoveProduct(ctx context.Context, orderID, productID uint) error {
	if err := s.links.Delete(ctx, orderID, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Product not found in the order")
		}
		return apperrors.Internal("Failed to remove product from order", err)
	}
	return nil
}

// Products lists the products linked to an order
func (s *OrderService) Products(ctx context.Context, orderID uint) ([]models.Product, error) {
	products, err := s.products.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, wrapRepoError(err, "Product", "load order products")
	}
	return products, nil
}

// TotalPrice sums the prices of every product linked to the order.
// An order without products is an error rather than a zero total.
func (s *OrderService) TotalPrice(ctx context.Context, orderID uint) (*models.OrderTotal, error) {
	links, err := s.links.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load order products", err)
	}
	if len(links) == 0 {
		return nil, apperrors.EmptyResult("No products found in the order")
	}

	products, err := s.products.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load order products", err)
	}

	total := &models.OrderTotal{OrderID: orderID}
	for _, p := range products {
		total.TotalPrice += p.Price
	}
	return total, nil
}

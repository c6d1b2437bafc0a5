package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/kendall-kelly/ecommerce-api/apperrors"
	"github.com/kendall-kelly/ecommerce-api/models"
	"github.com/kendall-kelly/ecommerce-api/repository"
	"github.com/kendall-kelly/ecommerce-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	db := testutil.NewTestDB(t)
	svc := NewOrderService(
		repository.NewGormOrderRepository(db),
		repository.NewGormUserRepository(db),
		repository.NewGormProductRepository(db),
		repository.NewGormOrderProductRepository(db),
	)
	return svc, db
}

func TestOrderService_CreateRequiresExistingUser(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	err := svc.Create(ctx, &models.Order{UserID: 42, OrderDate: time.Now()})
	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Contains(t, appErr.Fields, "user_id")

	user := testutil.SeedUser(t, db, "Buyer", "buyer@example.com")
	order := &models.Order{UserID: user.ID, OrderDate: time.Now()}
	require.NoError(t, svc.Create(ctx, order))
	assert.NotZero(t, order.ID)
}

func TestOrderService_AddProductTwice(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "Buyer", "buyer@example.com")
	order := testutil.SeedOrder(t, db, user.ID)
	product := testutil.SeedProduct(t, db, "Lamp", 20)

	require.NoError(t, svc.AddProduct(ctx, order.ID, product.ID))

	err := svc.AddProduct(ctx, order.ID, product.ID)
	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
	assert.Equal(t, "Product already exists in the order", appErr.Message)
}

func TestOrderService_AddProductMissingRecords(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "Buyer", "buyer@example.com")
	order := testutil.SeedOrder(t, db, user.ID)
	product := testutil.SeedProduct(t, db, "Lamp", 20)

	err := svc.AddProduct(ctx, 999, product.ID)
	assert.Equal(t, "Order not found", err.Error())

	err = svc.AddProduct(ctx, order.ID, 999)
	assert.Equal(t, "Product not found", err.Error())
}

func TestOrderService_ProductsAfterRemove(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "Buyer", "buyer@example.com")
	order := testutil.SeedOrder(t, db, user.ID)
	p1 := testutil.SeedProduct(t, db, "P1", 1)
	p2 := testutil.SeedProduct(t, db, "P2", 2)

	require.NoError(t, svc.AddProduct(ctx, order.ID, p1.ID))
	require.NoError(t, svc.AddProduct(ctx, order.ID, p2.ID))
	require.NoError(t, svc.RemoveProduct(ctx, order.ID, p1.ID))

	products, err := svc.Products(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, p2.ID, products[0].ID)

	err = svc.RemoveProduct(ctx, order.ID, p1.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderService_TotalPrice(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "Buyer", "buyer@example.com")
	order := testutil.SeedOrder(t, db, user.ID)
	empty := testutil.SeedOrder(t, db, user.ID)
	a := testutil.SeedProduct(t, db, "A", 10.0)
	b := testutil.SeedProduct(t, db, "B", 5.5)
	testutil.LinkProduct(t, db, order.ID, a.ID)
	testutil.LinkProduct(t, db, order.ID, b.ID)

	total, err := svc.TotalPrice(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, total.OrderID)
	assert.Equal(t, 15.5, total.TotalPrice)

	_, err = svc.TotalPrice(ctx, empty.ID)
	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, apperrors.CodeEmptyResult, appErr.Code)
}

func TestOrderService_UpdateAndListForUser(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	alice := testutil.SeedUser(t, db, "Alice", "alice@example.com")
	bob := testutil.SeedUser(t, db, "Bob", "bob@example.com")
	order := testutil.SeedOrder(t, db, alice.ID)

	missing := uint(999)
	_, err := svc.Update(ctx, order.ID, OrderUpdate{UserID: &missing})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	updated, err := svc.Update(ctx, order.ID, OrderUpdate{UserID: &bob.ID})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, updated.UserID)

	aliceOrders, err := svc.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceOrders)

	bobOrders, err := svc.ListForUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobOrders, 1)
}

func TestOrderService_DeleteClearsProducts(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "Buyer", "buyer@example.com")
	order := testutil.SeedOrder(t, db, user.ID)
	product := testutil.SeedProduct(t, db, "Lamp", 20)
	testutil.LinkProduct(t, db, order.ID, product.ID)

	require.NoError(t, svc.Delete(ctx, order.ID))

	products, err := svc.Products(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.True(t, apperrors.IsNotFound(svc.Delete(ctx, order.ID)))
}

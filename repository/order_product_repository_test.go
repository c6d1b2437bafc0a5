package repository_test

import (
	"context"
	"testing"

	"github.com/kendall-kelly/ecommerce-api/models"
	"github.com/kendall-kelly/ecommerce-api/repository"
	"github.com/kendall-kelly/ecommerce-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderProductRepository_CreateFindDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGormOrderProductRepository(db)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "Buyer", "buyer@example.com")
	order := testutil.SeedOrder(t, db, user.ID)
	product := testutil.SeedProduct(t, db, "Notebook", 3.5)

	link := &models.OrderProduct{OrderID: order.ID, ProductID: product.ID}
	require.NoError(t, repo.Create(ctx, link))
	assert.NotZero(t, link.ID)

	found, err := repo.Find(ctx, order.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, link.ID, found.ID)

	links, err := repo.FindByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	require.NoError(t, repo.Delete(ctx, order.ID, product.ID))
	_, err = repo.Find(ctx, order.ID, product.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderProductRepository_UniquePair(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGormOrderProductRepository(db)
	ctx := context.Background()

	user := testutil.SeedUser(t, db, "Buyer", "buyer@example.com")
	order := testutil.SeedOrder(t, db, user.ID)
	product := testutil.SeedProduct(t, db, "Notebook", 3.5)

	require.NoError(t, repo.Create(ctx, &models.OrderProduct{OrderID: order.ID, ProductID: product.ID}))

	// The index rejects a second insert even when the caller skipped the read check
	err := repo.Create(ctx, &models.OrderProduct{OrderID: order.ID, ProductID: product.ID})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestOrderProductRepository_DeleteMissingLink(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGormOrderProductRepository(db)

	err := repo.Delete(context.Background(), 1, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

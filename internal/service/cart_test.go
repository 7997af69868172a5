package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdeck/storefront/internal/models"
)

func TestCartService_AddMergesQuantity(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	prod := seedProduct(t, r, "lamp", 1999)

	_, err := svc.AddToCart(ctx, 1, prod.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, 1, prod.ID, 3)
	require.NoError(t, err)

	var items []models.CartItem
	require.NoError(t, r.DB.Where("user_id = ?", 1).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, int64(5), items[0].Quantity)
	assert.Equal(t, prod.ID, items[0].ProductID)
}

func TestCartService_AddClampsQuantityToOne(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	prod := seedProduct(t, r, "mug", 499)

	_, err := svc.AddToCart(ctx, 1, prod.ID, 0)
	require.NoError(t, err)

	var item models.CartItem
	require.NoError(t, r.DB.Where("user_id = ? AND product_id = ?", 1, prod.ID).First(&item).Error)
	assert.Equal(t, int64(1), item.Quantity)
}

func TestCartService_AddRequiresProduct(t *testing.T) {
	t.Parallel()

	svc := &CartService{Repo: newTestRepo(t)}

	_, err := svc.AddToCart(context.Background(), 1, 0, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCartService_SetQuantity(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	prod := seedProduct(t, r, "chair", 8999)

	_, err := svc.AddToCart(ctx, 1, prod.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.SetQuantity(ctx, 1, prod.ID, 7))

	var item models.CartItem
	require.NoError(t, r.DB.Where("user_id = ? AND product_id = ?", 1, prod.ID).First(&item).Error)
	assert.Equal(t, int64(7), item.Quantity)
}

func TestCartService_SetQuantityAbsentRowIsSuccess(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}

	// No cart row exists: the blind update touches zero rows and succeeds.
	require.NoError(t, svc.SetQuantity(context.Background(), 1, 42, 3))

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCartService_RemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	prod := seedProduct(t, r, "desk", 12999)

	_, err := svc.AddToCart(ctx, 1, prod.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFromCart(ctx, 1, prod.ID))
	require.NoError(t, svc.RemoveFromCart(ctx, 1, prod.ID))

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCartService_GetCartJoinsProducts(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CartService{Repo: r}
	ctx := context.Background()
	lamp := seedProduct(t, r, "lamp", 1999)
	mug := seedProduct(t, r, "mug", 499)

	_, err := svc.AddToCart(ctx, 1, lamp.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, 1, mug.ID, 1)
	require.NoError(t, err)
	// Another user's cart must not leak in.
	_, err = svc.AddToCart(ctx, 2, lamp.ID, 9)
	require.NoError(t, err)

	lines, err := svc.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, lamp.ID, lines[0].ID)
	assert.Equal(t, "lamp", lines[0].Name)
	assert.Equal(t, int64(1999), lines[0].Price)
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.NotZero(t, lines[0].CartItemID)
	assert.Equal(t, mug.ID, lines[1].ID)
}

func TestCartService_GetCartEmpty(t *testing.T) {
	t.Parallel()

	svc := &CartService{Repo: newTestRepo(t)}

	lines, err := svc.GetCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.NotNil(t, lines, "empty cart serializes as [], not null")
}

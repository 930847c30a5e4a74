package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/basket"
	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/model"
)

type fakeBasketStorage struct {
	baskets map[string]*basket.Basket
	saves   int
}

func newFakeBasketStorage() *fakeBasketStorage {
	return &fakeBasketStorage{baskets: map[string]*basket.Basket{}}
}

func (f *fakeBasketStorage) Load(_ context.Context, buyerID string) (*basket.Basket, error) {
	b, ok := f.baskets[buyerID]
	if !ok {
		return basket.New(), nil
	}
	cp := basket.Basket{Items: append([]basket.Item{}, b.Items...)}
	return &cp, nil
}

func (f *fakeBasketStorage) Save(_ context.Context, buyerID string, b *basket.Basket) error {
	f.saves++
	cp := basket.Basket{Items: append([]basket.Item{}, b.Items...)}
	f.baskets[buyerID] = &cp
	return nil
}

func TestBasketServicePersistsEveryMutation(t *testing.T) {
	store := newFakeBasketStorage()
	svc := NewBasketService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "buyer-1", model.ProductRef{ID: "a", Price: 10})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "buyer-1", model.ProductRef{ID: "a", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, store.saves)

	// reload sees the persisted state
	b, err := svc.Get(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, 2, b.ItemCount("a"))

	_, err = svc.RemoveItem(ctx, "buyer-1", "a")
	require.NoError(t, err)
	assert.Equal(t, 3, store.saves)

	require.NoError(t, svc.Clear(ctx, "buyer-1"))
	b, err = svc.Get(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Empty(t, b.Items)
}

func TestBasketServiceKeysByBuyer(t *testing.T) {
	store := newFakeBasketStorage()
	svc := NewBasketService(store)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "buyer-1", model.ProductRef{ID: "a", Price: 10})
	require.NoError(t, err)

	b, err := svc.Get(ctx, "buyer-2")
	require.NoError(t, err)
	assert.Empty(t, b.Items)
}

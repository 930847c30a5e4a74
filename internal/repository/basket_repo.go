package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ReshephInayat/Full-Stack-Ecommerce-Website/internal/basket"

	"github.com/redis/go-redis/v9"
)

// BasketRepository stores one basket per buyer as a JSON value in Redis.
// Writes are unconditional: concurrent owners of the same key follow
// last-writer-wins, there is no merge.
type BasketRepository struct {
	client *redis.Client
}

func NewBasketRepository(client *redis.Client) *BasketRepository {
	return &BasketRepository{client: client}
}

// Load returns the buyer's persisted basket; a missing key is an empty
// basket, not an error.
func (r *BasketRepository) Load(ctx context.Context, buyerID string) (*basket.Basket, error) {
	data, err := r.client.Get(ctx, basketKey(buyerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return basket.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var b basket.Basket
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("unmarshal basket failed: %w", err)
	}
	if b.Items == nil {
		b.Items = []basket.Item{}
	}
	return &b, nil
}

// Save overwrites the buyer's persisted basket. No TTL: the basket
// survives until cleared.
func (r *BasketRepository) Save(ctx context.Context, buyerID string, b *basket.Basket) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal basket failed: %w", err)
	}
	if err := r.client.Set(ctx, basketKey(buyerID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func basketKey(buyerID string) string {
	return fmt.Sprintf("basket:%s", buyerID)
}

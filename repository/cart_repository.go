package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
)

const cartKeyFormatV1 = "cart:v1:%s"

// CartRepository stores one cart blob per session key.
type CartRepository struct {
	KV KV
}

func NewCartRepository(kv KV) *CartRepository { return &CartRepository{KV: kv} }

// Load returns the session's cart. An absent or corrupt blob yields an
// empty cart so the storefront keeps working; corruption is only logged.
func (r *CartRepository) Load(ctx context.Context, session string) (*entity.Cart, error) {
	key := fmt.Sprintf(cartKeyFormatV1, session)
	raw, ok, err := r.KV.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", key, err)
	}
	if !ok {
		return &entity.Cart{}, nil
	}
	var c entity.Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		log.Printf("cart blob %s is corrupt, starting empty: %v", key, err)
		return &entity.Cart{}, nil
	}
	return &c, nil
}

// Save persists the cart wholesale. An empty cart deletes the stored
// representation instead.
func (r *CartRepository) Save(ctx context.Context, session string, c *entity.Cart) error {
	key := fmt.Sprintf(cartKeyFormatV1, session)
	if c == nil || c.Empty() {
		return r.KV.Del(ctx, key)
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart %s: %w", key, err)
	}
	return r.KV.Set(ctx, key, string(data))
}

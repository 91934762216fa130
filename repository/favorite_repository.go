package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

const favoritesKeyFormatV1 = "favorites:v1:%s"

// FavoriteRepository stores the favorite restaurant ids of a session as one
// JSON array. The whole set is written in a single SET so a concurrent
// reader never observes a partially updated state.
type FavoriteRepository struct {
	KV KV
}

func NewFavoriteRepository(kv KV) *FavoriteRepository { return &FavoriteRepository{KV: kv} }

func (r *FavoriteRepository) Load(ctx context.Context, session string) ([]uint, error) {
	key := fmt.Sprintf(favoritesKeyFormatV1, session)
	raw, ok, err := r.KV.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load favorites %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("favorites blob %s is corrupt, starting empty: %v", key, err)
		return nil, nil
	}
	return ids, nil
}

func (r *FavoriteRepository) Save(ctx context.Context, session string, ids []uint) error {
	key := fmt.Sprintf(favoritesKeyFormatV1, session)
	if len(ids) == 0 {
		return r.KV.Del(ctx, key)
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal favorites %s: %w", key, err)
	}
	return r.KV.Set(ctx, key, string(data))
}

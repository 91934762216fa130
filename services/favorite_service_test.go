package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
	"github.com/yunusinal/lezzetlimani-sub001/repository"
)

func newTestFavoriteService(t *testing.T) (*FavoriteService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	kv := repository.NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return NewFavoriteService(repository.NewFavoriteRepository(kv), nil), mr
}

func restWithID(id uint) *entity.Restaurant {
	return &entity.Restaurant{Model: gorm.Model{ID: id}}
}

func TestFavoriteService_ToggleFlipsMembership(t *testing.T) {
	svc, _ := newTestFavoriteService(t)
	ctx := context.Background()

	fav, err := svc.Toggle(ctx, "user:1", restWithID(3))
	require.NoError(t, err)
	assert.True(t, fav)

	is, err := svc.IsFavorite(ctx, "user:1", 3)
	require.NoError(t, err)
	assert.True(t, is)

	// Second toggle cancels the first.
	fav, err = svc.Toggle(ctx, "user:1", restWithID(3))
	require.NoError(t, err)
	assert.False(t, fav)

	is, err = svc.IsFavorite(ctx, "user:1", 3)
	require.NoError(t, err)
	assert.False(t, is)
}

func TestFavoriteService_IndependentOfOtherRestaurants(t *testing.T) {
	svc, _ := newTestFavoriteService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "user:1", restWithID(3))
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "user:1", restWithID(8))
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "user:1", restWithID(3))
	require.NoError(t, err)

	ids, err := svc.List(ctx, "user:1")
	require.NoError(t, err)
	assert.Equal(t, []uint{8}, ids)
}

func TestFavoriteService_PersistsAcrossSessions(t *testing.T) {
	svc, mr := newTestFavoriteService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "user:1", restWithID(5))
	require.NoError(t, err)

	kv := repository.NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	reloaded := NewFavoriteService(repository.NewFavoriteRepository(kv), nil)

	is, err := reloaded.IsFavorite(ctx, "user:1", 5)
	require.NoError(t, err)
	assert.True(t, is)
}

func TestFavoriteService_EmptySetDeletesBlob(t *testing.T) {
	svc, mr := newTestFavoriteService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "user:1", restWithID(5))
	require.NoError(t, err)
	require.True(t, mr.Exists("favorites:v1:user:1"))

	_, err = svc.Toggle(ctx, "user:1", restWithID(5))
	require.NoError(t, err)
	assert.False(t, mr.Exists("favorites:v1:user:1"))
}

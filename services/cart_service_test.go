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

func newTestCartService(t *testing.T) (*CartService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	kv := repository.NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return NewCartService(repository.NewCartRepository(kv), nil), mr
}

func testRestaurant(id uint) *entity.Restaurant {
	return &entity.Restaurant{
		Model:          gorm.Model{ID: id},
		Name:           "Usta Kebap Salonu",
		MinOrderAmount: 10000,
		DeliveryFee:    1000,
		DiscountRule: &entity.DiscountRule{
			Kind:           entity.DiscountPercentage,
			Value:          20,
			MinOrderAmount: kurus(10000),
		},
	}
}

func testMenu(id, restID uint, price int64, discounted *int64) *entity.Menu {
	return &entity.Menu{
		Model:           gorm.Model{ID: id},
		Name:            "Adana Dürüm",
		Price:           price,
		DiscountedPrice: discounted,
		RestaurantID:    restID,
	}
}

func TestCartService_AddAndSubtotal(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()
	rest := testRestaurant(1)

	// 45.00 x2 plus 30.00 x1, the worked pricing example.
	_, err := svc.Add(ctx, "guest:a", rest, testMenu(10, 1, 4500, nil), 2, false)
	require.NoError(t, err)
	cart, subtotal, err := svc.Get(ctx, "guest:a")
	require.NoError(t, err)
	assert.Equal(t, int64(9000), subtotal)

	_, err = svc.Add(ctx, "guest:a", rest, testMenu(11, 1, 3000, nil), 1, false)
	require.NoError(t, err)
	cart, subtotal, err = svc.Get(ctx, "guest:a")
	require.NoError(t, err)
	assert.Equal(t, int64(12000), subtotal)
	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, rest.ID, cart.RestaurantID)

	// Subtotal equals the independent recomputation over the lines.
	var manual int64
	for _, l := range cart.Lines {
		manual += l.UnitPrice * int64(l.Qty)
	}
	assert.Equal(t, manual, subtotal)

	sum := svc.Summarize(cart, rest)
	assert.Equal(t, int64(2400), sum.DiscountAmount)
	assert.Equal(t, int64(10600), sum.Total)
}

func TestCartService_AddMergesEqualLines(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()
	rest := testRestaurant(1)

	_, err := svc.Add(ctx, "guest:a", rest, testMenu(10, 1, 4500, nil), 1, false)
	require.NoError(t, err)
	cart, err := svc.Add(ctx, "guest:a", rest, testMenu(10, 1, 4500, nil), 2, false)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Qty)
	assert.Equal(t, int64(13500), cart.Lines[0].Total)
}

func TestCartService_AddKeepsSeparateLineOnPriceChange(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()
	rest := testRestaurant(1)

	_, err := svc.Add(ctx, "guest:a", rest, testMenu(10, 1, 4500, nil), 1, false)
	require.NoError(t, err)

	// Same menu, but it gained a discounted price since the first add; the
	// old line keeps its snapshot and a new line is created.
	cart, err := svc.Add(ctx, "guest:a", rest, testMenu(10, 1, 4500, kurus(3900)), 1, false)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, int64(4500), cart.Lines[0].UnitPrice)
	assert.Equal(t, int64(3900), cart.Lines[1].UnitPrice)
}

func TestCartService_ConflictLeavesCartUnmodified(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "guest:a", testRestaurant(1), testMenu(10, 1, 4500, nil), 1, false)
	require.NoError(t, err)

	other := testRestaurant(2)
	_, err = svc.Add(ctx, "guest:a", other, testMenu(20, 2, 3000, nil), 1, false)
	assert.ErrorIs(t, err, ErrCartConflict)

	cart, subtotal, err := svc.Get(ctx, "guest:a")
	require.NoError(t, err)
	assert.Equal(t, uint(1), cart.RestaurantID)
	assert.Equal(t, int64(4500), subtotal)
	require.Len(t, cart.Lines, 1)
}

func TestCartService_ReplaceClearsAndReowns(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "guest:a", testRestaurant(1), testMenu(10, 1, 4500, nil), 2, false)
	require.NoError(t, err)

	other := testRestaurant(2)
	cart, err := svc.Add(ctx, "guest:a", other, testMenu(20, 2, 3000, nil), 1, true)
	require.NoError(t, err)

	assert.Equal(t, uint(2), cart.RestaurantID)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, uint(20), cart.Lines[0].MenuID)
}

func TestCartService_MenuFromForeignRestaurantRejected(t *testing.T) {
	svc, _ := newTestCartService(t)
	_, err := svc.Add(context.Background(), "guest:a", testRestaurant(1), testMenu(20, 2, 3000, nil), 1, false)
	assert.ErrorIs(t, err, ErrMenuNotInRestaurant)
}

func TestCartService_UpdateQtyZeroEqualsRemove(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()
	rest := testRestaurant(1)

	cart, err := svc.Add(ctx, "guest:a", rest, testMenu(10, 1, 4500, nil), 2, false)
	require.NoError(t, err)
	lineID := cart.Lines[0].LineID

	cart, err = svc.UpdateQty(ctx, "guest:a", lineID, 0)
	require.NoError(t, err)
	assert.True(t, cart.Empty())
	assert.Equal(t, uint(0), cart.RestaurantID, "ownership cleared when last line goes")
}

func TestCartService_UpdateQtyRecomputesLineTotal(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()
	rest := testRestaurant(1)

	cart, err := svc.Add(ctx, "guest:a", rest, testMenu(10, 1, 4500, nil), 1, false)
	require.NoError(t, err)
	lineID := cart.Lines[0].LineID

	cart, err = svc.UpdateQty(ctx, "guest:a", lineID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Lines[0].Qty)
	assert.Equal(t, int64(22500), cart.Lines[0].Total)
	assert.Equal(t, lineID, cart.Lines[0].LineID, "line id stable across quantity edits")
}

func TestCartService_UpdateQtyUnknownLineIsNoop(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()

	cart, err := svc.Add(ctx, "guest:a", testRestaurant(1), testMenu(10, 1, 4500, nil), 1, false)
	require.NoError(t, err)

	after, err := svc.UpdateQty(ctx, "guest:a", "no-such-line", 7)
	require.NoError(t, err)
	assert.Equal(t, cart.Lines, after.Lines)
}

func TestCartService_RemoveLastLineResetsOwnership(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()
	rest := testRestaurant(1)

	cart, err := svc.Add(ctx, "guest:a", rest, testMenu(10, 1, 4500, nil), 1, false)
	require.NoError(t, err)

	cart, err = svc.Remove(ctx, "guest:a", cart.Lines[0].LineID)
	require.NoError(t, err)
	assert.True(t, cart.Empty())

	// Any restaurant is accepted again.
	other := testRestaurant(2)
	cart, err = svc.Add(ctx, "guest:a", other, testMenu(20, 2, 3000, nil), 1, false)
	require.NoError(t, err)
	assert.Equal(t, uint(2), cart.RestaurantID)
}

func TestCartService_ClearDropsStoredBlob(t *testing.T) {
	svc, mr := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "guest:a", testRestaurant(1), testMenu(10, 1, 4500, nil), 1, false)
	require.NoError(t, err)
	require.True(t, mr.Exists("cart:v1:guest:a"))

	require.NoError(t, svc.Clear(ctx, "guest:a"))
	assert.False(t, mr.Exists("cart:v1:guest:a"))

	cart, subtotal, err := svc.Get(ctx, "guest:a")
	require.NoError(t, err)
	assert.True(t, cart.Empty())
	assert.Zero(t, subtotal)
}

func TestCartService_TotalClampedAtZero(t *testing.T) {
	svc, _ := newTestCartService(t)

	rest := testRestaurant(1)
	rest.DeliveryFee = 0
	rest.DiscountRule = &entity.DiscountRule{Kind: entity.DiscountFixed, Value: 99999}

	cart := &entity.Cart{
		RestaurantID: 1,
		Lines:        []entity.CartLine{{LineID: "l1", MenuID: 10, UnitPrice: 4500, Qty: 1, Total: 4500}},
	}
	sum := svc.Summarize(cart, rest)
	assert.Equal(t, int64(4500), sum.DiscountAmount, "fixed discount capped at subtotal")
	assert.Equal(t, int64(0), sum.Total)
}

func TestCartService_CheckoutGate(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()
	rest := testRestaurant(1) // minimum order 100.00

	_, err := svc.Checkout(ctx, "guest:a", rest)
	assert.ErrorIs(t, err, ErrCartEmpty)

	_, err = svc.Add(ctx, "guest:a", rest, testMenu(10, 1, 4500, nil), 1, false)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, "guest:a", rest)
	assert.ErrorIs(t, err, ErrMinOrderNotMet)

	cart, _, err := svc.Get(ctx, "guest:a")
	require.NoError(t, err)
	assert.Equal(t, int64(5500), svc.Shortfall(cart, rest))

	_, err = svc.Add(ctx, "guest:a", rest, testMenu(11, 1, 3000, nil), 2, false)
	require.NoError(t, err)

	sum, err := svc.Checkout(ctx, "guest:a", rest)
	require.NoError(t, err)
	assert.Equal(t, int64(10500), sum.Subtotal)
	assert.Equal(t, int64(2100), sum.DiscountAmount)
	assert.Equal(t, int64(9400), sum.Total)
	assert.Equal(t, rest.ID, sum.RestaurantID)
}

func TestCartService_SurvivesReload(t *testing.T) {
	svc, mr := newTestCartService(t)
	ctx := context.Background()
	rest := testRestaurant(1)

	before, err := svc.Add(ctx, "user:7", rest, testMenu(10, 1, 4500, nil), 3, false)
	require.NoError(t, err)

	// A fresh service over the same store simulates a session restart.
	kv := repository.NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	reloaded := NewCartService(repository.NewCartRepository(kv), nil)

	after, subtotal, err := reloaded.Get(ctx, "user:7")
	require.NoError(t, err)
	assert.Equal(t, before.RestaurantID, after.RestaurantID)
	assert.Equal(t, before.Lines, after.Lines)
	assert.Equal(t, int64(13500), subtotal)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	svc, _ := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "guest:a", testRestaurant(1), testMenu(10, 1, 4500, nil), 1, false)
	require.NoError(t, err)

	cart, _, err := svc.Get(ctx, "guest:b")
	require.NoError(t, err)
	assert.True(t, cart.Empty())
}

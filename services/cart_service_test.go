package services

import (
	"context"
	"testing"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(f *fakeStore) (*CartService, *cart.Sessions) {
	sessions := cart.NewSessions(f.CartStorage(), nil)
	return NewCartService(sessions, f), sessions
}

func TestCartService_AddAccumulates(t *testing.T) {
	f := newFakeStore()
	c := seedCatalog(t, f)
	svc, _ := newCartService(f)
	ctx := context.Background()

	for _, id := range []string{c.jollof.ID, c.jollof.ID, c.kelewele.ID} {
		_, err := svc.Add(ctx, "u1", &AddToCartIn{MenuItemID: id})
		require.NoError(t, err)
	}

	v, err := svc.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, int64(60), v.Subtotal)
	assert.Equal(t, int64(5), v.DeliveryFee)
	assert.Equal(t, int64(65), v.Total)
	assert.Equal(t, 3, v.ItemCount)
	require.NotNil(t, v.Restaurant)
	assert.Equal(t, c.mamaAma.ID, v.Restaurant.ID)
}

func TestCartService_OtherRestaurant(t *testing.T) {
	f := newFakeStore()
	c := seedCatalog(t, f)
	svc, _ := newCartService(f)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", &AddToCartIn{MenuItemID: c.jollof.ID})
	require.NoError(t, err)

	v, err := svc.Add(ctx, "u1", &AddToCartIn{MenuItemID: c.suya.ID})
	assert.ErrorIs(t, err, cart.ErrDifferentRestaurant)
	assert.Equal(t, c.mamaAma.ID, v.Restaurant.ID)
	assert.Equal(t, 1, v.ItemCount)

	v, err = svc.Add(ctx, "u1", &AddToCartIn{MenuItemID: c.suya.ID, Replace: true})
	require.NoError(t, err)
	assert.Equal(t, c.osuGrill.ID, v.Restaurant.ID)
	assert.Equal(t, int64(38), v.Total)
}

func TestCartService_Rejections(t *testing.T) {
	f := newFakeStore()
	c := seedCatalog(t, f)
	svc, _ := newCartService(f)
	ctx := context.Background()

	_, err := svc.Add(ctx, "", &AddToCartIn{MenuItemID: c.jollof.ID})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Add(ctx, "u1", &AddToCartIn{MenuItemID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Add(ctx, "u1", &AddToCartIn{MenuItemID: c.soldOut.ID})
	assert.ErrorIs(t, err, ErrItemUnavailable)

	closed := *c.osuGrill
	closed.IsOpen = false
	require.NoError(t, f.Restaurants().Update(ctx, &closed))
	_, err = svc.Add(ctx, "u1", &AddToCartIn{MenuItemID: c.suya.ID})
	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestCartService_QuantityAndClear(t *testing.T) {
	f := newFakeStore()
	c := seedCatalog(t, f)
	svc, _ := newCartService(f)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", &AddToCartIn{MenuItemID: c.jollof.ID})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", &AddToCartIn{MenuItemID: c.kelewele.ID})
	require.NoError(t, err)

	v, err := svc.UpdateQuantity("u1", c.jollof.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4*25+10), v.Subtotal)

	v, err = svc.UpdateQuantity("u1", c.jollof.ID, 0)
	require.NoError(t, err)
	assert.Len(t, v.Items, 1)

	v, err = svc.Remove("u1", c.kelewele.ID)
	require.NoError(t, err)
	assert.Nil(t, v.Restaurant)
	assert.Equal(t, int64(0), v.Total)

	_, err = svc.Add(ctx, "u1", &AddToCartIn{MenuItemID: c.jollof.ID})
	require.NoError(t, err)
	require.NoError(t, svc.Clear("u1"))
	v, _ = svc.Get("u1")
	assert.Empty(t, v.Items)
}

func TestCartService_PersistsToStorage(t *testing.T) {
	f := newFakeStore()
	c := seedCatalog(t, f)
	svc, _ := newCartService(f)

	_, err := svc.Add(context.Background(), "u1", &AddToCartIn{MenuItemID: c.jollof.ID})
	require.NoError(t, err)

	// a fresh process hydrates from the same storage
	again, _ := newCartService(f)
	v, err := again.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, 1, v.ItemCount)
}

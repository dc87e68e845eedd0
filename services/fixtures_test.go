package services

import (
	"context"
	"testing"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"github.com/stretchr/testify/require"
)

type catalog struct {
	mamaAma, osuGrill *entity.Restaurant
	jollof, kelewele  *entity.MenuItem
	suya, soldOut     *entity.MenuItem
}

func seedCatalog(t *testing.T, f *fakeStore) catalog {
	t.Helper()
	ctx := context.Background()
	c := catalog{
		mamaAma:  &entity.Restaurant{Name: "Mama Ama's Kitchen", DeliveryFee: 5, IsOpen: true},
		osuGrill: &entity.Restaurant{Name: "Osu Grill", DeliveryFee: 8, IsOpen: true},
	}
	require.NoError(t, f.Restaurants().Create(ctx, c.mamaAma))
	require.NoError(t, f.Restaurants().Create(ctx, c.osuGrill))

	c.jollof = &entity.MenuItem{RestaurantID: c.mamaAma.ID, Name: "Jollof Rice", Price: 25, IsAvailable: true}
	c.kelewele = &entity.MenuItem{RestaurantID: c.mamaAma.ID, Name: "Kelewele", Price: 10, IsAvailable: true}
	c.suya = &entity.MenuItem{RestaurantID: c.osuGrill.ID, Name: "Beef Suya", Price: 30, IsAvailable: true}
	c.soldOut = &entity.MenuItem{RestaurantID: c.mamaAma.ID, Name: "Banku", Price: 20}
	for _, m := range []*entity.MenuItem{c.jollof, c.kelewele, c.suya, c.soldOut} {
		require.NoError(t, f.Menus().Create(ctx, m))
	}
	return c
}

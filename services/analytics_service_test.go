package services

import (
	"context"
	"testing"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	orders := []entity.Order{
		{RestaurantID: "a", RestaurantName: "Mama Ama's Kitchen", Status: entity.OrderDelivered, PaymentStatus: entity.PaymentPaid, Total: 6500},
		{RestaurantID: "a", RestaurantName: "Mama Ama's Kitchen", Status: entity.OrderProcessing, PaymentStatus: entity.PaymentPaid, Total: 3500},
		{RestaurantID: "b", RestaurantName: "Osu Grill", Status: entity.OrderDelivered, PaymentStatus: entity.PaymentPaid, Total: 2000},
		{RestaurantID: "b", RestaurantName: "Osu Grill", Status: entity.OrderPending, PaymentStatus: entity.PaymentPending, Total: 9000},
		{RestaurantID: "c", RestaurantName: "Chop Bar", Status: entity.OrderCancelled, PaymentStatus: entity.PaymentRefunded, Total: 1000},
	}

	a := Summarize(orders)

	assert.Equal(t, 5, a.TotalOrders)
	assert.Equal(t, int64(12000), a.Revenue)
	assert.Equal(t, int64(4000), a.AverageOrderValue)
	assert.Equal(t, 2, a.ByStatus[entity.OrderDelivered])
	assert.Equal(t, 1, a.ByPaymentStatus[entity.PaymentRefunded])
	require.Len(t, a.TopRestaurants, 2)
	assert.Equal(t, "a", a.TopRestaurants[0].RestaurantID)
	assert.Equal(t, int64(10000), a.TopRestaurants[0].Revenue)
	assert.Equal(t, 2, a.TopRestaurants[0].Orders)
}

func TestSummarize_Empty(t *testing.T) {
	a := Summarize(nil)
	assert.Zero(t, a.Revenue)
	assert.Zero(t, a.AverageOrderValue)
	assert.NotNil(t, a.TopRestaurants)
}

func TestAnalyticsService_Summary(t *testing.T) {
	f := newFakeStore()
	seedCatalog(t, f)
	placeOrder(t, f, "u1", entity.OrderDelivered, entity.PaymentPaid, 6500)

	a, err := NewAnalyticsService(f).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, a.TotalOrders)
	assert.Equal(t, 2, a.Restaurants)
	assert.Equal(t, 0, a.Users)
}

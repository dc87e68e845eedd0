package services

import (
	"context"
	"testing"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, f *fakeStore, user string, status entity.OrderStatus, pay entity.PaymentStatus, total int64) *entity.Order {
	t.Helper()
	o := &entity.Order{
		OrderNumber:    NewOrderNumber(fixedNow),
		UserID:         user,
		RestaurantID:   "r1",
		RestaurantName: "Mama Ama's Kitchen",
		Status:         status,
		PaymentStatus:  pay,
		PaymentMethod:  entity.MethodCard,
		Total:          total,
	}
	require.NoError(t, f.Orders().Create(context.Background(), o))
	return o
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(entity.OrderPending, entity.OrderProcessing))
	assert.True(t, CanTransition(entity.OrderProcessing, entity.OrderDelivered))
	assert.True(t, CanTransition(entity.OrderPending, entity.OrderCancelled))
	assert.True(t, CanTransition(entity.OrderProcessing, entity.OrderCancelled))

	assert.False(t, CanTransition(entity.OrderPending, entity.OrderDelivered))
	assert.False(t, CanTransition(entity.OrderDelivered, entity.OrderCancelled))
	assert.False(t, CanTransition(entity.OrderCancelled, entity.OrderProcessing))
	assert.False(t, CanTransition(entity.OrderDelivered, entity.OrderPending))
}

func TestOrderService_UpdateStatus(t *testing.T) {
	f := newFakeStore()
	n := &recordingNotifier{}
	svc := NewOrderService(f.Orders(), n, nil)
	ctx := context.Background()
	o := placeOrder(t, f, "u1", entity.OrderPending, entity.PaymentPaid, 6500)

	_, err := svc.UpdateStatus(ctx, o.ID, entity.OrderDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := svc.UpdateStatus(ctx, o.ID, entity.OrderProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderProcessing, got.Status)

	got, err = svc.UpdateStatus(ctx, o.ID, entity.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDelivered, got.Status)

	_, err = svc.UpdateStatus(ctx, o.ID, entity.OrderCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, o.ID, entity.OrderPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, o.ID, "shipped")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.UpdateStatus(ctx, "missing", entity.OrderProcessing)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Len(t, n.orders, 2)
}

func TestOrderService_PaymentStatus(t *testing.T) {
	f := newFakeStore()
	svc := NewOrderService(f.Orders(), nil, nil)
	o := placeOrder(t, f, "u1", entity.OrderDelivered, entity.PaymentPaid, 6500)

	got, err := svc.UpdatePaymentStatus(context.Background(), o.ID, entity.PaymentRefunded)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentRefunded, got.PaymentStatus)

	_, err = svc.UpdatePaymentStatus(context.Background(), o.ID, "lost")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestOrderService_CustomerAccess(t *testing.T) {
	f := newFakeStore()
	svc := NewOrderService(f.Orders(), nil, nil)
	ctx := context.Background()
	mine := placeOrder(t, f, "u1", entity.OrderPending, entity.PaymentPending, 100)
	placeOrder(t, f, "u2", entity.OrderPending, entity.PaymentPending, 200)

	list, err := svc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	_, err = svc.GetForUser(ctx, "u2", mine.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Track(ctx, " "+mine.OrderNumber+" ")
	require.NoError(t, err)
	assert.Equal(t, mine.ID, got.ID)

	_, err = svc.Track(ctx, "SCY-000000-NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderService_ListAndPayments(t *testing.T) {
	f := newFakeStore()
	svc := NewOrderService(f.Orders(), nil, nil)
	ctx := context.Background()
	placeOrder(t, f, "u1", entity.OrderPending, entity.PaymentPending, 100)
	placeOrder(t, f, "u1", entity.OrderDelivered, entity.PaymentPaid, 200)

	page, err := svc.List(ctx, repository.OrderFilter{PaymentStatus: entity.PaymentPaid})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	_, err = svc.List(ctx, repository.OrderFilter{Status: "lost"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	pays, total, err := svc.Payments(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, pays, 2)

	require.NoError(t, svc.Delete(ctx, page.Orders[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, page.Orders[0].ID), ErrNotFound)
}

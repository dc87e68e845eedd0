package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"

	"go.uber.org/zap"
)

// OrderService serves order reads for customers and the admin order desk.
type OrderService struct {
	orders   repository.OrderRepository
	notifier OrderNotifier
	log      *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, notifier OrderNotifier, log *zap.Logger) *OrderService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{orders: orders, notifier: notifier, log: log}
}

type OrderPage struct {
	Orders []entity.Order `json:"orders"`
	Total  int64          `json:"total"`
}

func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]entity.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	out, _, err := s.orders.List(ctx, repository.OrderFilter{UserID: userID})
	return out, storeErr("list orders", err)
}

// GetForUser returns one of the caller's own orders.
func (s *OrderService) GetForUser(ctx context.Context, userID, id string) (*entity.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, storeErr("order", err)
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

// Track looks an order up by its public order number.
func (s *OrderService) Track(ctx context.Context, number string) (*entity.Order, error) {
	o, err := s.orders.GetByNumber(ctx, strings.ToUpper(strings.TrimSpace(number)))
	return o, storeErr("order", err)
}

func (s *OrderService) List(ctx context.Context, f repository.OrderFilter) (*OrderPage, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, invalid("status", "unknown order status")
	}
	if f.PaymentStatus != "" && !f.PaymentStatus.Valid() {
		return nil, invalid("paymentStatus", "unknown payment status")
	}
	out, total, err := s.orders.List(ctx, f)
	if err != nil {
		return nil, storeErr("list orders", err)
	}
	return &OrderPage{Orders: out, Total: total}, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	o, err := s.orders.Get(ctx, id)
	return o, storeErr("order", err)
}

// UpdateStatus moves an order along pending, processing, delivered or cancels it.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, to entity.OrderStatus) (*entity.Order, error) {
	if !to.Valid() {
		return nil, invalid("status", "unknown order status")
	}
	current, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, storeErr("order", err)
	}
	if !CanTransition(current.Status, to) {
		return nil, ErrInvalidTransition
	}
	// guarded again in the write, another admin may have moved it meanwhile
	err = s.orders.UpdateStatus(ctx, id, transitions[to], to)
	switch {
	case errors.Is(err, repository.ErrConflict):
		return nil, ErrInvalidTransition
	case err != nil:
		return nil, storeErr("update status", err)
	}

	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, storeErr("order", err)
	}
	s.log.Info("order status changed", zap.String("order", o.OrderNumber), zap.String("status", string(to)))
	s.notifier.OrderChanged(o)
	return o, nil
}

func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id string, status entity.PaymentStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, invalid("paymentStatus", "unknown payment status")
	}
	if err := s.orders.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, storeErr("update payment status", err)
	}
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, storeErr("order", err)
	}
	s.notifier.OrderChanged(o)
	return o, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return storeErr("delete order", s.orders.Delete(ctx, id))
}

// PaymentRecord is the payment side of an order as the admin payments list shows it.
type PaymentRecord struct {
	OrderID      string               `json:"orderId"`
	OrderNumber  string               `json:"orderNumber"`
	CustomerName string               `json:"customerName"`
	Method       entity.PaymentMethod `json:"method"`
	Status       entity.PaymentStatus `json:"status"`
	Reference    string               `json:"reference,omitempty"`
	Amount       int64                `json:"amount"`
	CreatedAt    time.Time            `json:"createdAt"`
}

func (s *OrderService) Payments(ctx context.Context, f repository.OrderFilter) ([]PaymentRecord, int64, error) {
	page, err := s.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]PaymentRecord, 0, len(page.Orders))
	for _, o := range page.Orders {
		out = append(out, PaymentRecord{
			OrderID:      o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.Customer.Name,
			Method:       o.PaymentMethod,
			Status:       o.PaymentStatus,
			Reference:    o.PaymentReference,
			Amount:       o.Total,
			CreatedAt:    o.CreatedAt,
		})
	}
	return out, page.Total, nil
}

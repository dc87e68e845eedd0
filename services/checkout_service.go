package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/cart"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/mailer"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/payment"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const mailTimeout = 10 * time.Second

// OrderNotifier is told about every order that was created or changed.
type OrderNotifier interface {
	OrderChanged(o *entity.Order)
}

type noopNotifier struct{}

func (noopNotifier) OrderChanged(*entity.Order) {}

type CheckoutForm struct {
	CustomerName     string `json:"customerName" validate:"notblank"`
	CustomerEmail    string `json:"customerEmail" validate:"notblank,email"`
	CustomerPhone    string `json:"customerPhone" validate:"notblank"`
	Address          string `json:"address" validate:"notblank"`
	City             string `json:"city" validate:"notblank"`
	PaymentMethod    string `json:"paymentMethod" validate:"required,oneof=mobile_money card cash"`
	PaymentReference string `json:"paymentReference"`
	Notes            string `json:"notes" validate:"max=500"`
}

// CheckoutService turns a cart into exactly one order.
type CheckoutService struct {
	orders   repository.OrderRepository
	carts    *cart.Sessions
	gateway  payment.Gateway
	mail     mailer.Mailer
	notifier OrderNotifier
	log      *zap.Logger
	now      func() time.Time
}

func NewCheckoutService(
	orders repository.OrderRepository,
	carts *cart.Sessions,
	gateway payment.Gateway,
	mail mailer.Mailer,
	notifier OrderNotifier,
	log *zap.Logger,
) *CheckoutService {
	if gateway == nil {
		gateway = payment.Unavailable{}
	}
	if mail == nil {
		mail = mailer.Noop{}
	}
	if notifier == nil {
		notifier = noopNotifier{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutService{
		orders: orders, carts: carts, gateway: gateway,
		mail: mail, notifier: notifier, log: log, now: time.Now,
	}
}

// Checkout validates the form, confirms payment, writes the order once and
// clears the cart. Any failure before the write leaves everything untouched.
func (s *CheckoutService) Checkout(ctx context.Context, userID string, form CheckoutForm) (*entity.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if err := check(form); err != nil {
		return nil, err
	}

	store := s.carts.For(userID)
	items := store.Items()
	if len(items) == 0 {
		return nil, &ValidationError{Field: "cart", Message: "Your cart is empty", Err: ErrCartEmpty}
	}
	totals := cart.Summarize(items)
	method := entity.PaymentMethod(form.PaymentMethod)

	// cash is paid on delivery and carries no provider reference
	paymentStatus := entity.PaymentPending
	reference := ""
	if method != entity.MethodCash {
		reference = strings.TrimSpace(form.PaymentReference)
		res, err := s.gateway.Confirm(ctx, payment.Request{
			Method:    form.PaymentMethod,
			Reference: reference,
			Amount:    totals.Total,
			Email:     form.CustomerEmail,
		})
		if err != nil {
			s.log.Warn("payment not confirmed", zap.String("user", userID), zap.String("reference", reference), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
		}
		paymentStatus = entity.PaymentPaid
		if res.Reference != "" {
			reference = res.Reference
		}
		if err := s.referenceUnused(ctx, reference); err != nil {
			s.log.Warn("payment reference reused", zap.String("user", userID), zap.String("reference", reference))
			return nil, err
		}
	}

	order := s.shape(userID, form, items, totals)
	order.PaymentMethod = method
	order.PaymentStatus = paymentStatus
	order.PaymentReference = reference

	if err := s.orders.Create(ctx, order); err != nil {
		if reference != "" && errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: reference %s already paid for an order", ErrPaymentFailed, reference)
		}
		s.log.Error("order write failed", zap.String("user", userID), zap.String("order", order.OrderNumber), zap.Error(err))
		return nil, fmt.Errorf("create order: %w", err)
	}

	// only what was ordered leaves the cart, lines added during payment stay
	store.Deduct(items)
	s.carts.Forget(userID)
	s.log.Info("order placed",
		zap.String("order", order.OrderNumber),
		zap.String("restaurant", order.RestaurantID),
		zap.Int64("total", order.Total),
		zap.String("payment", string(order.PaymentStatus)),
	)
	s.confirm(order)
	s.notifier.OrderChanged(order)
	return order, nil
}

func (s *CheckoutService) shape(userID string, form CheckoutForm, items []cart.LineItem, totals cart.Summary) *entity.Order {
	address := strings.TrimSpace(form.Address) + ", " + strings.TrimSpace(form.City)
	rest := items[0].Restaurant

	lines := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, entity.OrderItem{
			MenuItemID: it.ID,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			Quantity:   it.Quantity,
			LineTotal:  it.UnitPrice * int64(it.Quantity),
			Notes:      it.Notes,
		})
	}

	return &entity.Order{
		OrderNumber:    NewOrderNumber(s.now()),
		UserID:         userID,
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		Customer: entity.Customer{
			Name:    strings.TrimSpace(form.CustomerName),
			Email:   strings.ToLower(strings.TrimSpace(form.CustomerEmail)),
			Phone:   strings.TrimSpace(form.CustomerPhone),
			Address: address,
		},
		Items:       lines,
		Status:      entity.OrderPending,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		Total:       totals.Total,
		Address:     address,
		Notes:       strings.TrimSpace(form.Notes),
	}
}

// referenceUnused fails with ErrPaymentFailed when an order already carries reference.
func (s *CheckoutService) referenceUnused(ctx context.Context, reference string) error {
	if reference == "" {
		return nil
	}
	_, n, err := s.orders.List(ctx, repository.OrderFilter{PaymentReference: reference, Limit: 1})
	if err != nil {
		return fmt.Errorf("check payment reference: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("%w: reference %s already paid for an order", ErrPaymentFailed, reference)
	}
	return nil
}

// confirm mails the receipt. Failures are logged only.
func (s *CheckoutService) confirm(o *entity.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
	defer cancel()

	receipt := mailer.OrderReceipt{
		OrderNumber:    o.OrderNumber,
		CustomerName:   o.Customer.Name,
		CustomerEmail:  o.Customer.Email,
		RestaurantName: o.RestaurantName,
		Subtotal:       o.Subtotal,
		DeliveryFee:    o.DeliveryFee,
		Total:          o.Total,
		PaymentMethod:  string(o.PaymentMethod),
	}
	for _, it := range o.Items {
		receipt.Lines = append(receipt.Lines, mailer.OrderLine{Name: it.Name, Quantity: it.Quantity, LineTotal: it.LineTotal})
	}
	if err := s.mail.Send(ctx, mailer.OrderConfirmation(receipt)); err != nil {
		s.log.Warn("order confirmation mail failed", zap.String("order", o.OrderNumber), zap.Error(err))
	}
}

// NewOrderNumber returns a short human readable order number, e.g. SCY-261018-4F1A9C.
func NewOrderNumber(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "SCY-" + t.Format("060102") + "-" + suffix
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"

	"github.com/shopspring/decimal"
)

type PromotionInput struct {
	Code         string     `json:"code" validate:"notblank,max=50"`
	Description  string     `json:"description"`
	DiscountType string     `json:"discountType" validate:"required,oneof=percent fixed"`
	Value        int64      `json:"value" validate:"min=1"`
	MinOrder     int64      `json:"minOrder" validate:"min=0"`
	StartsAt     *time.Time `json:"startsAt"`
	EndsAt       *time.Time `json:"endsAt"`
	Active       bool       `json:"active"`
}

// Quote is what a promotion code would take off a subtotal.
type Quote struct {
	Code     string `json:"code"`
	Subtotal int64  `json:"subtotal"`
	Discount int64  `json:"discount"`
	Total    int64  `json:"total"`
}

type PromotionService struct {
	promos repository.PromotionRepository
	now    func() time.Time
}

func NewPromotionService(promos repository.PromotionRepository) *PromotionService {
	return &PromotionService{promos: promos, now: time.Now}
}

func (s *PromotionService) List(ctx context.Context) ([]entity.Promotion, error) {
	out, err := s.promos.List(ctx)
	return out, storeErr("list promotions", err)
}

func (s *PromotionService) Create(ctx context.Context, in PromotionInput) (*entity.Promotion, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	p := &entity.Promotion{}
	in.apply(p)
	if err := s.promos.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCodeTaken
		}
		return nil, storeErr("create promotion", err)
	}
	return p, nil
}

func (s *PromotionService) Update(ctx context.Context, id string, in PromotionInput) (*entity.Promotion, error) {
	if err := in.check(); err != nil {
		return nil, err
	}
	p, err := s.promos.Get(ctx, id)
	if err != nil {
		return nil, storeErr("promotion", err)
	}
	in.apply(p)
	if err := s.promos.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCodeTaken
		}
		return nil, storeErr("update promotion", err)
	}
	return p, nil
}

func (s *PromotionService) Delete(ctx context.Context, id string) error {
	return storeErr("delete promotion", s.promos.Delete(ctx, id))
}

// Validate quotes code against subtotal. It never changes an order.
func (s *PromotionService) Validate(ctx context.Context, code string, subtotal int64) (*Quote, error) {
	p, err := s.promos.GetByCode(ctx, normalizeCode(code))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPromotionInvalid
	}
	if err != nil {
		return nil, storeErr("promotion", err)
	}
	if !p.Live(s.now()) || subtotal < p.MinOrder {
		return nil, ErrPromotionInvalid
	}
	d := Discount(p.DiscountType, p.Value, subtotal)
	return &Quote{Code: p.Code, Subtotal: subtotal, Discount: d, Total: subtotal - d}, nil
}

// Discount computes the amount taken off subtotal, never more than subtotal.
// Percentages round half away from zero to the smallest currency unit.
func Discount(kind entity.DiscountType, value, subtotal int64) int64 {
	if subtotal <= 0 || value <= 0 {
		return 0
	}
	var d int64
	switch kind {
	case entity.DiscountPercent:
		d = decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromInt(value)).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	case entity.DiscountFixed:
		d = value
	}
	if d > subtotal {
		d = subtotal
	}
	return d
}

func (in PromotionInput) check() error {
	if err := check(in); err != nil {
		return err
	}
	if in.DiscountType == string(entity.DiscountPercent) && in.Value > 100 {
		return invalid("value", "value must be at most 100 for a percent discount")
	}
	if in.StartsAt != nil && in.EndsAt != nil && in.EndsAt.Before(*in.StartsAt) {
		return invalid("endsAt", "endsAt must be after startsAt")
	}
	return nil
}

func (in PromotionInput) apply(p *entity.Promotion) {
	p.Code = normalizeCode(in.Code)
	p.Description = strings.TrimSpace(in.Description)
	p.DiscountType = entity.DiscountType(in.DiscountType)
	p.Value = in.Value
	p.MinOrder = in.MinOrder
	p.StartsAt = in.StartsAt
	p.EndsAt = in.EndsAt
	p.Active = in.Active
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

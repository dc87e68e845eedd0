package entity

import "time"

type Promotion struct {
	Model `bson:",inline"`

	Code         string       `gorm:"size:50;uniqueIndex;not null" bson:"code" json:"code"`
	Description  string       `bson:"description" json:"description"`
	DiscountType DiscountType `gorm:"size:16" bson:"discountType" json:"discountType"`
	// Value is a percentage for DiscountPercent and an amount for DiscountFixed.
	Value    int64      `bson:"value" json:"value"`
	MinOrder int64      `bson:"minOrder" json:"minOrder"`
	StartsAt *time.Time `bson:"startsAt,omitempty" json:"startsAt,omitempty"`
	EndsAt   *time.Time `bson:"endsAt,omitempty" json:"endsAt,omitempty"`
	Active   bool       `bson:"active" json:"active"`
}

// Live reports whether the promotion can be used at t.
func (p *Promotion) Live(t time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartsAt != nil && t.Before(*p.StartsAt) {
		return false
	}
	if p.EndsAt != nil && t.After(*p.EndsAt) {
		return false
	}
	return true
}

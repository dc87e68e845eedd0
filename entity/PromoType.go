package entity

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

func (d DiscountType) Valid() bool { return d == DiscountPercent || d == DiscountFixed }

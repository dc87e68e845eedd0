package repository

import (
	"context"
	"strings"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"gorm.io/gorm"
)

type promotionRepo struct {
	db *gorm.DB
}

func (r *promotionRepo) List(ctx context.Context) ([]entity.Promotion, error) {
	var promos []entity.Promotion
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&promos).Error
	return promos, translate(err)
}

func (r *promotionRepo) Get(ctx context.Context, id string) (*entity.Promotion, error) {
	var p entity.Promotion
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// GetByCode matches codes case-insensitively; codes are stored upper case.
func (r *promotionRepo) GetByCode(ctx context.Context, code string) (*entity.Promotion, error) {
	var p entity.Promotion
	err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *promotionRepo) Create(ctx context.Context, p *entity.Promotion) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *promotionRepo) Update(ctx context.Context, p *entity.Promotion) error {
	res := r.db.WithContext(ctx).Model(&entity.Promotion{}).
		Where("id = ?", p.ID).
		Select("code", "description", "discount_type", "value", "min_order",
			"starts_at", "ends_at", "active", "updated_at").
		Updates(p)
	return affected(res)
}

// Delete removes the promotion for good.
func (r *promotionRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&entity.Promotion{}))
}

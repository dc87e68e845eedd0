package repository

import (
	"context"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"gorm.io/gorm"
)

type menuRepo struct {
	db *gorm.DB
}

func (r *menuRepo) ListByRestaurant(ctx context.Context, restaurantID string, availableOnly bool) ([]entity.MenuItem, error) {
	q := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if availableOnly {
		q = q.Where("is_available = ?", true)
	}
	var items []entity.MenuItem
	err := q.Order("category ASC, name ASC").Find(&items).Error
	return items, translate(err)
}

func (r *menuRepo) Get(ctx context.Context, id string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *menuRepo) Create(ctx context.Context, m *entity.MenuItem) error {
	return translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *menuRepo) Update(ctx context.Context, m *entity.MenuItem) error {
	res := r.db.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("id = ?", m.ID).
		Select("restaurant_id", "name", "description", "price", "category", "image", "is_available", "updated_at").
		Updates(m)
	return affected(res)
}

func (r *menuRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.MenuItem{}))
}

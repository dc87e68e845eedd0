package repository

import (
	"context"
	"strings"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"gorm.io/gorm"
)

type restaurantRepo struct {
	db *gorm.DB
}

// List matches Search against name and cuisine.
func (r *restaurantRepo) List(ctx context.Context, f RestaurantFilter) ([]entity.Restaurant, error) {
	q := r.db.WithContext(ctx).Model(&entity.Restaurant{})
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(cuisine) LIKE ?", like, like)
	}
	if f.Cuisine != "" {
		q = q.Where("cuisine = ?", f.Cuisine)
	}
	if f.OpenOnly {
		q = q.Where("is_open = ?", true)
	}
	var rests []entity.Restaurant
	err := q.Order("rating DESC, name ASC").Find(&rests).Error
	return rests, translate(err)
}

func (r *restaurantRepo) Get(ctx context.Context, id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rest).Error; err != nil {
		return nil, translate(err)
	}
	return &rest, nil
}

func (r *restaurantRepo) Create(ctx context.Context, rest *entity.Restaurant) error {
	return translate(r.db.WithContext(ctx).Create(rest).Error)
}

// Update leaves rating and reviewCount alone; they belong to UpdateRating.
func (r *restaurantRepo) Update(ctx context.Context, rest *entity.Restaurant) error {
	res := r.db.WithContext(ctx).Model(&entity.Restaurant{}).
		Where("id = ?", rest.ID).
		Select("name", "description", "address", "image", "cuisine",
			"delivery_fee", "delivery_time", "is_open", "owner_id", "updated_at").
		Updates(rest)
	return affected(res)
}

func (r *restaurantRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Restaurant{}))
}

func (r *restaurantRepo) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	res := r.db.WithContext(ctx).Model(&entity.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]any{"rating": rating, "review_count": count})
	return affected(res)
}

package repository

import (
	"context"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"gorm.io/gorm"
)

type reviewRepo struct {
	db *gorm.DB
}

func (r *reviewRepo) Create(ctx context.Context, rev *entity.Review) error {
	return translate(r.db.WithContext(ctx).Create(rev).Error)
}

func (r *reviewRepo) Get(ctx context.Context, id string) (*entity.Review, error) {
	var rev entity.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rev).Error; err != nil {
		return nil, translate(err)
	}
	return &rev, nil
}

func (r *reviewRepo) Update(ctx context.Context, rev *entity.Review) error {
	res := r.db.WithContext(ctx).Model(&entity.Review{}).
		Where("id = ?", rev.ID).
		Select("rating", "comment", "user_name", "user_avatar", "updated_at").
		Updates(rev)
	return affected(res)
}

func (r *reviewRepo) Delete(ctx context.Context, id string) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Review{}))
}

func (r *reviewRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, translate(err)
}

func (r *reviewRepo) ListByUser(ctx context.Context, userID string) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, translate(err)
}

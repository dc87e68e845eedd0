package repository

import (
	"context"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

// Create writes the order and its items in one transaction.
func (r *orderRepo) Create(ctx context.Context, o *entity.Order) error {
	return translate(r.db.WithContext(ctx).Create(o).Error)
}

func (r *orderRepo) Get(ctx context.Context, id string) (*entity.Order, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *orderRepo) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	return r.first(ctx, "order_number = ?", number)
}

func (r *orderRepo) first(ctx context.Context, cond string, arg any) (*entity.Order, error) {
	var o entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where(cond, arg).
		First(&o).Error
	if err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (r *orderRepo) List(ctx context.Context, f OrderFilter) ([]entity.Order, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if f.UserID != "" {
			db = db.Where("user_id = ?", f.UserID)
		}
		if f.RestaurantID != "" {
			db = db.Where("restaurant_id = ?", f.RestaurantID)
		}
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.PaymentStatus != "" {
			db = db.Where("payment_status = ?", f.PaymentStatus)
		}
		if f.PaymentReference != "" {
			db = db.Where("payment_reference = ?", f.PaymentReference)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Order{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	q := r.db.WithContext(ctx).Scopes(filter).Preload("Items").Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	var orders []entity.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, 0, translate(err)
	}
	return orders, total, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, from []entity.OrderStatus, to entity.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missingOrConflict(ctx, id)
	}
	return nil
}

func (r *orderRepo) UpdatePaymentStatus(ctx context.Context, id string, status entity.PaymentStatus) error {
	res := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("payment_status", status)
	return affected(res)
}

func (r *orderRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return translate(err)
		}
		return affected(tx.Where("id = ?", id).Delete(&entity.Order{}))
	})
}

func (r *orderRepo) missingOrConflict(ctx context.Context, id string) error {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return translate(err)
	}
	if cnt == 0 {
		return ErrNotFound
	}
	return ErrConflict
}

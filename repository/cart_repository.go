package repository

import (
	"context"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const cartStorageTimeout = 5 * time.Second

// cartStorage keeps cart snapshots in the cart_snapshots table.
type cartStorage struct {
	db *gorm.DB
}

func (s *cartStorage) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cartStorageTimeout)
	defer cancel()

	var snap entity.CartSnapshot
	err := s.db.WithContext(ctx).Where("storage_key = ?", key).First(&snap).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	return snap.Payload, true, nil
}

func (s *cartStorage) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cartStorageTimeout)
	defer cancel()

	snap := entity.CartSnapshot{Key: key, Payload: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snap).Error
}

func (s *cartStorage) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cartStorageTimeout)
	defer cancel()
	return s.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&entity.CartSnapshot{}).Error
}

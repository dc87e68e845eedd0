package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/cart"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore serves every repository from one gorm connection.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// AutoMigrate creates or updates the tables used by the gorm backend.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
		&entity.Promotion{},
		&entity.CartSnapshot{},
	)
}

func (s *gormStore) Restaurants() RestaurantRepository { return &restaurantRepo{db: s.db} }
func (s *gormStore) Menus() MenuRepository             { return &menuRepo{db: s.db} }
func (s *gormStore) Orders() OrderRepository           { return &orderRepo{db: s.db} }
func (s *gormStore) Reviews() ReviewRepository         { return &reviewRepo{db: s.db} }
func (s *gormStore) Users() UserRepository             { return &userRepo{db: s.db} }
func (s *gormStore) Promotions() PromotionRepository   { return &promotionRepo{db: s.db} }
func (s *gormStore) CartStorage() cart.Storage         { return &cartStorage{db: s.db} }

func (s *gormStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translate maps gorm errors onto the repository errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	// sqlite without TranslateError only reports the constraint in the message
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return ErrDuplicate
	}
	return err
}

// affected turns a write that touched no rows into ErrNotFound.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

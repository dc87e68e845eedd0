// Package repository is the persistence collaborator. Every backend exposes the
// same Store so services never know which database serves them.
package repository

import (
	"context"
	"errors"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/cart"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	// ErrConflict means a guarded update found the record in another state.
	ErrConflict = errors.New("record changed state")
)

type RestaurantFilter struct {
	Search   string
	Cuisine  string
	OpenOnly bool
}

type OrderFilter struct {
	UserID        string
	RestaurantID  string
	Status        entity.OrderStatus
	PaymentStatus entity.PaymentStatus
	// PaymentReference matches orders paid with that provider reference.
	PaymentReference string
	Limit            int
	Offset           int
}

type RestaurantRepository interface {
	List(ctx context.Context, f RestaurantFilter) ([]entity.Restaurant, error)
	Get(ctx context.Context, id string) (*entity.Restaurant, error)
	Create(ctx context.Context, r *entity.Restaurant) error
	Update(ctx context.Context, r *entity.Restaurant) error
	Delete(ctx context.Context, id string) error
	UpdateRating(ctx context.Context, id string, rating float64, count int) error
}

type MenuRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID string, availableOnly bool) ([]entity.MenuItem, error)
	Get(ctx context.Context, id string) (*entity.MenuItem, error)
	Create(ctx context.Context, m *entity.MenuItem) error
	Update(ctx context.Context, m *entity.MenuItem) error
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	Get(ctx context.Context, id string) (*entity.Order, error)
	GetByNumber(ctx context.Context, number string) (*entity.Order, error)
	List(ctx context.Context, f OrderFilter) ([]entity.Order, int64, error)
	// UpdateStatus moves the order to `to` only while its status is one of from.
	UpdateStatus(ctx context.Context, id string, from []entity.OrderStatus, to entity.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id string, status entity.PaymentStatus) error
	Delete(ctx context.Context, id string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	Get(ctx context.Context, id string) (*entity.Review, error)
	Update(ctx context.Context, r *entity.Review) error
	Delete(ctx context.Context, id string) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]entity.Review, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Review, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	Get(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	UpdateRole(ctx context.Context, id, role string) error
}

type PromotionRepository interface {
	List(ctx context.Context) ([]entity.Promotion, error)
	Get(ctx context.Context, id string) (*entity.Promotion, error)
	GetByCode(ctx context.Context, code string) (*entity.Promotion, error)
	Create(ctx context.Context, p *entity.Promotion) error
	Update(ctx context.Context, p *entity.Promotion) error
	Delete(ctx context.Context, id string) error
}

type Store interface {
	Restaurants() RestaurantRepository
	Menus() MenuRepository
	Orders() OrderRepository
	Reviews() ReviewRepository
	Users() UserRepository
	Promotions() PromotionRepository
	// CartStorage is the durable storage carts are mirrored to.
	CartStorage() cart.Storage
	Close(ctx context.Context) error
}

package services

import (
	"context"
	"strings"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"
)

type MenuItemInput struct {
	RestaurantID string `json:"restaurantId" validate:"notblank"`
	Name         string `json:"name" validate:"notblank,max=120"`
	Description  string `json:"description" validate:"max=1000"`
	Price        int64  `json:"price" validate:"min=0"`
	Category     string `json:"category"`
	Image        string `json:"image"`
	IsAvailable  bool   `json:"isAvailable"`
}

type MenuService struct {
	menus repository.MenuRepository
	rests repository.RestaurantRepository
}

func NewMenuService(store repository.Store) *MenuService {
	return &MenuService{menus: store.Menus(), rests: store.Restaurants()}
}

// List returns every item of a restaurant, unavailable ones included.
func (s *MenuService) List(ctx context.Context, restaurantID string) ([]entity.MenuItem, error) {
	out, err := s.menus.ListByRestaurant(ctx, restaurantID, false)
	return out, storeErr("menu", err)
}

func (s *MenuService) Get(ctx context.Context, id string) (*entity.MenuItem, error) {
	m, err := s.menus.Get(ctx, id)
	return m, storeErr("menu item", err)
}

func (s *MenuService) Create(ctx context.Context, in MenuItemInput) (*entity.MenuItem, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	if _, err := s.rests.Get(ctx, in.RestaurantID); err != nil {
		return nil, storeErr("restaurant", err)
	}
	m := &entity.MenuItem{}
	in.apply(m)
	if err := s.menus.Create(ctx, m); err != nil {
		return nil, storeErr("create menu item", err)
	}
	return m, nil
}

func (s *MenuService) Update(ctx context.Context, id string, in MenuItemInput) (*entity.MenuItem, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	m, err := s.menus.Get(ctx, id)
	if err != nil {
		return nil, storeErr("menu item", err)
	}
	if in.RestaurantID != m.RestaurantID {
		if _, err := s.rests.Get(ctx, in.RestaurantID); err != nil {
			return nil, storeErr("restaurant", err)
		}
	}
	in.apply(m)
	if err := s.menus.Update(ctx, m); err != nil {
		return nil, storeErr("update menu item", err)
	}
	return m, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	return storeErr("delete menu item", s.menus.Delete(ctx, id))
}

func (in MenuItemInput) apply(m *entity.MenuItem) {
	m.RestaurantID = in.RestaurantID
	m.Name = strings.TrimSpace(in.Name)
	m.Description = strings.TrimSpace(in.Description)
	m.Price = in.Price
	m.Category = strings.TrimSpace(in.Category)
	m.Image = in.Image
	m.IsAvailable = in.IsAvailable
}

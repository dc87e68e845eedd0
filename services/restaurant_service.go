package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"
)

type RestaurantInput struct {
	Name         string `json:"name" validate:"notblank,max=120"`
	Description  string `json:"description" validate:"max=2000"`
	Address      string `json:"address" validate:"notblank"`
	Image        string `json:"image"`
	Cuisine      string `json:"cuisine"`
	DeliveryFee  int64  `json:"deliveryFee" validate:"min=0"`
	DeliveryTime string `json:"deliveryTime"`
	IsOpen       bool   `json:"isOpen"`
	OwnerID      string `json:"ownerId"`
}

type RestaurantService struct {
	rests repository.RestaurantRepository
	menus repository.MenuRepository
}

func NewRestaurantService(store repository.Store) *RestaurantService {
	return &RestaurantService{rests: store.Restaurants(), menus: store.Menus()}
}

func (s *RestaurantService) List(ctx context.Context, f repository.RestaurantFilter) ([]entity.Restaurant, error) {
	out, err := s.rests.List(ctx, f)
	return out, storeErr("list restaurants", err)
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*entity.Restaurant, error) {
	r, err := s.rests.Get(ctx, id)
	return r, storeErr("restaurant", err)
}

// Menu lists the items customers can order from a restaurant.
func (s *RestaurantService) Menu(ctx context.Context, id string) ([]entity.MenuItem, error) {
	if _, err := s.rests.Get(ctx, id); err != nil {
		return nil, storeErr("restaurant", err)
	}
	out, err := s.menus.ListByRestaurant(ctx, id, true)
	return out, storeErr("menu", err)
}

func (s *RestaurantService) Create(ctx context.Context, in RestaurantInput) (*entity.Restaurant, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	r := &entity.Restaurant{}
	in.apply(r)
	if err := s.rests.Create(ctx, r); err != nil {
		return nil, storeErr("create restaurant", err)
	}
	return r, nil
}

// Update replaces the editable fields. Rating and review count stay derived.
func (s *RestaurantService) Update(ctx context.Context, id string, in RestaurantInput) (*entity.Restaurant, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	r, err := s.rests.Get(ctx, id)
	if err != nil {
		return nil, storeErr("restaurant", err)
	}
	in.apply(r)
	if err := s.rests.Update(ctx, r); err != nil {
		return nil, storeErr("update restaurant", err)
	}
	return r, nil
}

// Delete removes the restaurant and its menu items.
func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	items, err := s.menus.ListByRestaurant(ctx, id, false)
	if err != nil {
		return storeErr("menu", err)
	}
	for _, m := range items {
		if err := s.menus.Delete(ctx, m.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return storeErr("delete menu item", err)
		}
	}
	return storeErr("delete restaurant", s.rests.Delete(ctx, id))
}

func (in RestaurantInput) apply(r *entity.Restaurant) {
	r.Name = strings.TrimSpace(in.Name)
	r.Description = strings.TrimSpace(in.Description)
	r.Address = strings.TrimSpace(in.Address)
	r.Image = in.Image
	r.Cuisine = strings.TrimSpace(in.Cuisine)
	r.DeliveryFee = in.DeliveryFee
	r.DeliveryTime = strings.TrimSpace(in.DeliveryTime)
	r.IsOpen = in.IsOpen
	r.OwnerID = in.OwnerID
}

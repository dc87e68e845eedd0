package services

import (
	"context"
	"strings"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/cart"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"
)

// CartService fronts the per user cart stores with catalog lookups.
type CartService struct {
	sessions *cart.Sessions
	menus    repository.MenuRepository
	rests    repository.RestaurantRepository
}

func NewCartService(sessions *cart.Sessions, store repository.Store) *CartService {
	return &CartService{sessions: sessions, menus: store.Menus(), rests: store.Restaurants()}
}

type CartView struct {
	Items      []cart.LineItem  `json:"items"`
	Restaurant *cart.Restaurant `json:"restaurant"`
	cart.Summary
}

type AddToCartIn struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Notes      string `json:"notes"`
	// Replace confirms dropping a cart that holds another restaurant's items.
	Replace bool `json:"replace"`
}

func view(s *cart.Store) CartView {
	items := s.Items()
	v := CartView{Items: items, Summary: cart.Summarize(items)}
	if r, ok := s.Restaurant(); ok {
		v.Restaurant = &r
	}
	return v
}

func (s *CartService) Get(userID string) (CartView, error) {
	if userID == "" {
		return CartView{}, ErrUnauthenticated
	}
	return view(s.sessions.For(userID)), nil
}

// Add puts one unit of a menu item into the caller's cart.
// A different restaurant fails with cart.ErrDifferentRestaurant unless in.Replace.
func (s *CartService) Add(ctx context.Context, userID string, in *AddToCartIn) (CartView, error) {
	if userID == "" {
		return CartView{}, ErrUnauthenticated
	}
	m, err := s.menus.Get(ctx, in.MenuItemID)
	if err != nil {
		return CartView{}, storeErr("menu item", err)
	}
	if !m.IsAvailable {
		return CartView{}, ErrItemUnavailable
	}
	r, err := s.rests.Get(ctx, m.RestaurantID)
	if err != nil {
		return CartView{}, storeErr("restaurant", err)
	}
	if !r.IsOpen {
		return CartView{}, ErrRestaurantClosed
	}

	line := cart.LineItem{
		ID:         m.ID,
		Name:       m.Name,
		UnitPrice:  m.Price,
		Restaurant: cart.Restaurant{ID: r.ID, Name: r.Name, DeliveryFee: r.DeliveryFee},
		Notes:      strings.TrimSpace(in.Notes),
		Image:      m.Image,
	}
	var confirm cart.ConfirmFunc
	if in.Replace {
		confirm = cart.AlwaysReplace
	}

	store := s.sessions.For(userID)
	if err := store.AddItem(line, confirm); err != nil {
		return view(store), err
	}
	return view(store), nil
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
func (s *CartService) UpdateQuantity(userID, itemID string, qty int) (CartView, error) {
	if userID == "" {
		return CartView{}, ErrUnauthenticated
	}
	store := s.sessions.For(userID)
	store.UpdateQuantity(itemID, qty)
	return view(store), nil
}

func (s *CartService) Remove(userID, itemID string) (CartView, error) {
	if userID == "" {
		return CartView{}, ErrUnauthenticated
	}
	store := s.sessions.For(userID)
	store.RemoveItem(itemID)
	return view(store), nil
}

func (s *CartService) Clear(userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	s.sessions.For(userID).Clear()
	s.sessions.Forget(userID)
	return nil
}

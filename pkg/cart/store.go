// Package cart holds the cart state container: the set of line items a caller is
// assembling into one order, locked to a single restaurant.
package cart

import (
	"errors"
	"sync"
)

var (
	ErrDifferentRestaurant = errors.New("cart has another restaurant")
	ErrInvalidItem         = errors.New("cart item needs an id and a restaurant")
)

type Restaurant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DeliveryFee int64  `json:"deliveryFee"`
}

type LineItem struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	UnitPrice  int64      `json:"unitPrice"`
	Quantity   int        `json:"quantity"`
	Restaurant Restaurant `json:"restaurant"`
	Notes      string     `json:"notes,omitempty"`
	Image      string     `json:"image,omitempty"`
}

// ConfirmFunc is asked before a cart holding items of current is replaced
// by an item of incoming. Returning false keeps the cart as it is.
type ConfirmFunc func(current, incoming Restaurant) bool

// AlwaysReplace confirms every replacement.
func AlwaysReplace(Restaurant, Restaurant) bool { return true }

// Listener receives a copy of the line items after every state change.
type Listener func(items []LineItem)

type Store struct {
	mu        sync.Mutex
	items     []LineItem
	listeners map[int]Listener
	nextSub   int
	version   uint64

	// notifyMu keeps listeners seeing states in the order they happened
	notifyMu  sync.Mutex
	delivered uint64
}

func New(items ...LineItem) *Store {
	return &Store{items: sanitize(items), listeners: map[int]Listener{}}
}

// AddItem puts one unit of item in the cart. An item from another restaurant
// replaces the whole cart only when confirm agrees.
func (s *Store) AddItem(item LineItem, confirm ConfirmFunc) error {
	if item.ID == "" || item.Restaurant.ID == "" {
		return ErrInvalidItem
	}

	err := s.Dispatch(Action{Kind: ActionAdd, Item: item})
	if !errors.Is(err, ErrDifferentRestaurant) {
		return err
	}

	current, ok := s.Restaurant()
	if !ok || current.ID == item.Restaurant.ID {
		// emptied or switched over meanwhile, try the plain add again
		return s.Dispatch(Action{Kind: ActionAdd, Item: item})
	}
	// confirm may block on the caller, never hold the lock across it
	if confirm == nil || !confirm(current, item.Restaurant) {
		return ErrDifferentRestaurant
	}
	return s.Dispatch(Action{Kind: ActionReplace, Item: item, Expect: current.ID})
}

func (s *Store) UpdateQuantity(itemID string, quantity int) {
	_ = s.Dispatch(Action{Kind: ActionSetQuantity, ItemID: itemID, Quantity: quantity})
}

func (s *Store) RemoveItem(itemID string) {
	_ = s.Dispatch(Action{Kind: ActionRemove, ItemID: itemID})
}

func (s *Store) Clear() {
	_ = s.Dispatch(Action{Kind: ActionClear})
}

// Deduct takes the quantities of ordered out of the cart and keeps anything
// that was added after ordered was read.
func (s *Store) Deduct(ordered []LineItem) {
	_ = s.Dispatch(Action{Kind: ActionDeduct, Lines: ordered})
}

// Dispatch runs an action through Reduce and notifies listeners. The
// restaurant checks of ActionAdd and ActionReplace happen under the same
// lock as the state change; a failed check changes nothing.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	a, err := settle(s.items, a)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.items = Reduce(s.items, a)
	s.version++
	version := s.version
	snapshot := clone(s.items)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	// a later state was already delivered
	if version <= s.delivered {
		return nil
	}
	s.delivered = version
	for _, l := range listeners {
		l(clone(snapshot))
	}
	return nil
}

// settle checks a against the restaurant the cart holds right now.
func settle(items []LineItem, a Action) (Action, error) {
	if len(items) == 0 {
		return a, nil
	}
	held := items[0].Restaurant.ID
	switch a.Kind {
	case ActionAdd:
		if held != a.Item.Restaurant.ID {
			return a, ErrDifferentRestaurant
		}
	case ActionReplace:
		switch {
		case held == a.Item.Restaurant.ID:
			// the cart already moved to this restaurant, keep its lines
			a.Kind = ActionAdd
		case a.Expect != "" && held != a.Expect:
			return a, ErrDifferentRestaurant
		}
	}
	return a, nil
}

// Subscribe registers l and returns a func that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.items)
}

// Restaurant returns the restaurant the cart is locked to, false when empty.
func (s *Store) Restaurant() (Restaurant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return Restaurant{}, false
	}
	return s.items[0].Restaurant, true
}

func (s *Store) Summary() Summary { return Summarize(s.Items()) }

func (s *Store) Subtotal() int64    { return s.Summary().Subtotal }
func (s *Store) DeliveryFee() int64 { return s.Summary().DeliveryFee }
func (s *Store) Total() int64       { return s.Summary().Total }
func (s *Store) ItemCount() int     { return s.Summary().ItemCount }
func (s *Store) IsEmpty() bool      { return s.ItemCount() == 0 }

func clone(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

// sanitize drops lines that break the single restaurant rule or carry no quantity.
func sanitize(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.ID == "" || it.Restaurant.ID == "" || it.Quantity <= 0 {
			continue
		}
		if len(out) > 0 && out[0].Restaurant.ID != it.Restaurant.ID {
			continue
		}
		out = append(out, it)
	}
	return out
}

package services

import (
	"context"
	"sort"
	"sync"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/cart"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"
)

// fakeStore is an in-memory repository.Store that counts writes.
type fakeStore struct {
	mu          sync.Mutex
	restaurants map[string]entity.Restaurant
	menus       map[string]entity.MenuItem
	orders      map[string]entity.Order
	reviews     map[string]entity.Review
	users       map[string]entity.User
	promos      map[string]entity.Promotion
	carts       *cart.MemoryStorage

	orderWrites int
	failOrders  error
	failRating  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		restaurants: map[string]entity.Restaurant{},
		menus:       map[string]entity.MenuItem{},
		orders:      map[string]entity.Order{},
		reviews:     map[string]entity.Review{},
		users:       map[string]entity.User{},
		promos:      map[string]entity.Promotion{},
		carts:       cart.NewMemoryStorage(),
	}
}

func (f *fakeStore) Restaurants() repository.RestaurantRepository { return fakeRestaurants{f} }
func (f *fakeStore) Menus() repository.MenuRepository             { return fakeMenus{f} }
func (f *fakeStore) Orders() repository.OrderRepository           { return fakeOrders{f} }
func (f *fakeStore) Reviews() repository.ReviewRepository         { return fakeReviews{f} }
func (f *fakeStore) Users() repository.UserRepository             { return fakeUsers{f} }
func (f *fakeStore) Promotions() repository.PromotionRepository   { return fakePromos{f} }
func (f *fakeStore) CartStorage() cart.Storage                    { return f.carts }
func (f *fakeStore) Close(context.Context) error                  { return nil }

func (f *fakeStore) id(m *entity.Model) {
	if m.ID == "" {
		m.ID = entity.NewID()
	}
}

type fakeRestaurants struct{ f *fakeStore }

func (r fakeRestaurants) List(_ context.Context, flt repository.RestaurantFilter) ([]entity.Restaurant, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	out := []entity.Restaurant{}
	for _, v := range r.f.restaurants {
		if flt.OpenOnly && !v.IsOpen {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r fakeRestaurants) Get(_ context.Context, id string) (*entity.Restaurant, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	v, ok := r.f.restaurants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (r fakeRestaurants) Create(_ context.Context, v *entity.Restaurant) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.id(&v.Model)
	r.f.restaurants[v.ID] = *v
	return nil
}

func (r fakeRestaurants) Update(_ context.Context, v *entity.Restaurant) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	old, ok := r.f.restaurants[v.ID]
	if !ok {
		return repository.ErrNotFound
	}
	v.Rating, v.ReviewCount = old.Rating, old.ReviewCount
	r.f.restaurants[v.ID] = *v
	return nil
}

func (r fakeRestaurants) Delete(_ context.Context, id string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if _, ok := r.f.restaurants[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.f.restaurants, id)
	return nil
}

func (r fakeRestaurants) UpdateRating(_ context.Context, id string, rating float64, count int) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.f.failRating != nil {
		return r.f.failRating
	}
	v, ok := r.f.restaurants[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.Rating, v.ReviewCount = rating, count
	r.f.restaurants[id] = v
	return nil
}

type fakeMenus struct{ f *fakeStore }

func (m fakeMenus) ListByRestaurant(_ context.Context, rid string, availableOnly bool) ([]entity.MenuItem, error) {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	out := []entity.MenuItem{}
	for _, v := range m.f.menus {
		if v.RestaurantID == rid && (!availableOnly || v.IsAvailable) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m fakeMenus) Get(_ context.Context, id string) (*entity.MenuItem, error) {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	v, ok := m.f.menus[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (m fakeMenus) Create(_ context.Context, v *entity.MenuItem) error {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	m.f.id(&v.Model)
	m.f.menus[v.ID] = *v
	return nil
}

func (m fakeMenus) Update(_ context.Context, v *entity.MenuItem) error {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	if _, ok := m.f.menus[v.ID]; !ok {
		return repository.ErrNotFound
	}
	m.f.menus[v.ID] = *v
	return nil
}

func (m fakeMenus) Delete(_ context.Context, id string) error {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	if _, ok := m.f.menus[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.f.menus, id)
	return nil
}

type fakeOrders struct{ f *fakeStore }

func (o fakeOrders) Create(_ context.Context, v *entity.Order) error {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	o.f.orderWrites++
	if o.f.failOrders != nil {
		return o.f.failOrders
	}
	for _, existing := range o.f.orders {
		if v.PaymentReference != "" && existing.PaymentReference == v.PaymentReference {
			return repository.ErrDuplicate
		}
	}
	o.f.id(&v.Model)
	o.f.orders[v.ID] = *v
	return nil
}

func (o fakeOrders) Get(_ context.Context, id string) (*entity.Order, error) {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	v, ok := o.f.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (o fakeOrders) GetByNumber(_ context.Context, number string) (*entity.Order, error) {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	for _, v := range o.f.orders {
		if v.OrderNumber == number {
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (o fakeOrders) List(_ context.Context, flt repository.OrderFilter) ([]entity.Order, int64, error) {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	out := []entity.Order{}
	for _, v := range o.f.orders {
		if flt.UserID != "" && v.UserID != flt.UserID {
			continue
		}
		if flt.Status != "" && v.Status != flt.Status {
			continue
		}
		if flt.PaymentStatus != "" && v.PaymentStatus != flt.PaymentStatus {
			continue
		}
		if flt.PaymentReference != "" && v.PaymentReference != flt.PaymentReference {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, int64(len(out)), nil
}

func (o fakeOrders) UpdateStatus(_ context.Context, id string, from []entity.OrderStatus, to entity.OrderStatus) error {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	v, ok := o.f.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	for _, s := range from {
		if v.Status == s {
			v.Status = to
			o.f.orders[id] = v
			return nil
		}
	}
	return repository.ErrConflict
}

func (o fakeOrders) UpdatePaymentStatus(_ context.Context, id string, status entity.PaymentStatus) error {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	v, ok := o.f.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.PaymentStatus = status
	o.f.orders[id] = v
	return nil
}

func (o fakeOrders) Delete(_ context.Context, id string) error {
	o.f.mu.Lock()
	defer o.f.mu.Unlock()
	if _, ok := o.f.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(o.f.orders, id)
	return nil
}

type fakeReviews struct{ f *fakeStore }

func (r fakeReviews) Create(_ context.Context, v *entity.Review) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.id(&v.Model)
	r.f.reviews[v.ID] = *v
	return nil
}

func (r fakeReviews) Get(_ context.Context, id string) (*entity.Review, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	v, ok := r.f.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (r fakeReviews) Update(_ context.Context, v *entity.Review) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if _, ok := r.f.reviews[v.ID]; !ok {
		return repository.ErrNotFound
	}
	r.f.reviews[v.ID] = *v
	return nil
}

func (r fakeReviews) Delete(_ context.Context, id string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if _, ok := r.f.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.f.reviews, id)
	return nil
}

func (r fakeReviews) ListByRestaurant(_ context.Context, rid string) ([]entity.Review, error) {
	return r.list(func(v entity.Review) bool { return v.RestaurantID == rid }), nil
}

func (r fakeReviews) ListByUser(_ context.Context, uid string) ([]entity.Review, error) {
	return r.list(func(v entity.Review) bool { return v.UserID == uid }), nil
}

func (r fakeReviews) list(keep func(entity.Review) bool) []entity.Review {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	out := []entity.Review{}
	for _, v := range r.f.reviews {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

type fakeUsers struct{ f *fakeStore }

func (u fakeUsers) Create(_ context.Context, v *entity.User) error {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	for _, x := range u.f.users {
		if x.Email == v.Email {
			return repository.ErrDuplicate
		}
	}
	u.f.id(&v.Model)
	u.f.users[v.ID] = *v
	return nil
}

func (u fakeUsers) Get(_ context.Context, id string) (*entity.User, error) {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	v, ok := u.f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (u fakeUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	for _, v := range u.f.users {
		if v.Email == email {
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (u fakeUsers) List(context.Context) ([]entity.User, error) {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	out := []entity.User{}
	for _, v := range u.f.users {
		out = append(out, v)
	}
	return out, nil
}

func (u fakeUsers) UpdateRole(_ context.Context, id, role string) error {
	u.f.mu.Lock()
	defer u.f.mu.Unlock()
	v, ok := u.f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	v.Role = role
	u.f.users[id] = v
	return nil
}

type fakePromos struct{ f *fakeStore }

func (p fakePromos) List(context.Context) ([]entity.Promotion, error) {
	p.f.mu.Lock()
	defer p.f.mu.Unlock()
	out := []entity.Promotion{}
	for _, v := range p.f.promos {
		out = append(out, v)
	}
	return out, nil
}

func (p fakePromos) Get(_ context.Context, id string) (*entity.Promotion, error) {
	p.f.mu.Lock()
	defer p.f.mu.Unlock()
	v, ok := p.f.promos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (p fakePromos) GetByCode(_ context.Context, code string) (*entity.Promotion, error) {
	p.f.mu.Lock()
	defer p.f.mu.Unlock()
	for _, v := range p.f.promos {
		if v.Code == code {
			return &v, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (p fakePromos) Create(_ context.Context, v *entity.Promotion) error {
	p.f.mu.Lock()
	defer p.f.mu.Unlock()
	for _, x := range p.f.promos {
		if x.Code == v.Code {
			return repository.ErrDuplicate
		}
	}
	p.f.id(&v.Model)
	p.f.promos[v.ID] = *v
	return nil
}

func (p fakePromos) Update(_ context.Context, v *entity.Promotion) error {
	p.f.mu.Lock()
	defer p.f.mu.Unlock()
	if _, ok := p.f.promos[v.ID]; !ok {
		return repository.ErrNotFound
	}
	p.f.promos[v.ID] = *v
	return nil
}

func (p fakePromos) Delete(_ context.Context, id string) error {
	p.f.mu.Lock()
	defer p.f.mu.Unlock()
	if _, ok := p.f.promos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(p.f.promos, id)
	return nil
}

package services

import (
	"context"
	"sort"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"
)

type RestaurantSales struct {
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
	Orders         int    `json:"orders"`
	Revenue        int64  `json:"revenue"`
}

type Analytics struct {
	TotalOrders       int                          `json:"totalOrders"`
	Revenue           int64                        `json:"revenue"`
	AverageOrderValue int64                        `json:"averageOrderValue"`
	ByStatus          map[entity.OrderStatus]int   `json:"byStatus"`
	ByPaymentStatus   map[entity.PaymentStatus]int `json:"byPaymentStatus"`
	TopRestaurants    []RestaurantSales            `json:"topRestaurants"`
	Restaurants       int                          `json:"restaurants"`
	Users             int                          `json:"users"`
}

const topRestaurants = 5

type AnalyticsService struct {
	orders repository.OrderRepository
	rests  repository.RestaurantRepository
	users  repository.UserRepository
}

func NewAnalyticsService(store repository.Store) *AnalyticsService {
	return &AnalyticsService{orders: store.Orders(), rests: store.Restaurants(), users: store.Users()}
}

// Summary aggregates every order. Revenue only counts paid orders.
func (s *AnalyticsService) Summary(ctx context.Context) (*Analytics, error) {
	orders, _, err := s.orders.List(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, storeErr("list orders", err)
	}
	rests, err := s.rests.List(ctx, repository.RestaurantFilter{})
	if err != nil {
		return nil, storeErr("list restaurants", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeErr("list users", err)
	}

	a := Summarize(orders)
	a.Restaurants = len(rests)
	a.Users = len(users)
	return a, nil
}

func Summarize(orders []entity.Order) *Analytics {
	a := &Analytics{
		TotalOrders:     len(orders),
		ByStatus:        map[entity.OrderStatus]int{},
		ByPaymentStatus: map[entity.PaymentStatus]int{},
		TopRestaurants:  []RestaurantSales{},
	}
	sales := map[string]*RestaurantSales{}
	paid := 0
	for _, o := range orders {
		a.ByStatus[o.Status]++
		a.ByPaymentStatus[o.PaymentStatus]++
		if o.PaymentStatus != entity.PaymentPaid {
			continue
		}
		paid++
		a.Revenue += o.Total
		rs, ok := sales[o.RestaurantID]
		if !ok {
			rs = &RestaurantSales{RestaurantID: o.RestaurantID, RestaurantName: o.RestaurantName}
			sales[o.RestaurantID] = rs
		}
		rs.Orders++
		rs.Revenue += o.Total
	}
	if paid > 0 {
		a.AverageOrderValue = a.Revenue / int64(paid)
	}

	for _, rs := range sales {
		a.TopRestaurants = append(a.TopRestaurants, *rs)
	}
	sort.Slice(a.TopRestaurants, func(i, j int) bool {
		x, y := a.TopRestaurants[i], a.TopRestaurants[j]
		if x.Revenue != y.Revenue {
			return x.Revenue > y.Revenue
		}
		return x.RestaurantName < y.RestaurantName
	})
	if len(a.TopRestaurants) > topRestaurants {
		a.TopRestaurants = a.TopRestaurants[:topRestaurants]
	}
	return a
}

// Package mongostore serves the repository Store from a MongoDB database.
package mongostore

import (
	"context"
	"errors"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/cart"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	restaurantsColl = "restaurants"
	menuItemsColl   = "menu_items"
	ordersColl      = "orders"
	reviewsColl     = "reviews"
	usersColl       = "users"
	promotionsColl  = "promotions"
	cartsColl       = "cart_snapshots"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// Connect dials uri and returns a store on database name.
func Connect(ctx context.Context, uri, name string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return New(client.Database(name)), nil
}

// New wraps an already connected database.
func New(db *mongo.Database) *Store {
	return &Store{client: db.Client(), db: db, now: time.Now}
}

// EnsureIndexes creates the unique indexes the repositories rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	// cash orders carry no reference, the field is omitted for them
	paidOnce := options.Index().SetUnique(true).
		SetPartialFilterExpression(bson.D{{Key: "paymentReference", Value: bson.D{{Key: "$type", Value: "string"}}}})
	indexes := map[string][]mongo.IndexModel{
		usersColl: {{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		ordersColl: {
			{Keys: bson.D{{Key: "orderNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "userId", Value: 1}}},
			{Keys: bson.D{{Key: "paymentReference", Value: 1}}, Options: paidOnce},
		},
		promotionsColl: {{Keys: bson.D{{Key: "code", Value: 1}}, Options: unique}},
		reviewsColl:    {{Keys: bson.D{{Key: "restaurantId", Value: 1}}}},
		menuItemsColl:  {{Keys: bson.D{{Key: "restaurantId", Value: 1}}}},
	}
	for coll, models := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Restaurants() repository.RestaurantRepository {
	return &restaurants{coll: s.db.Collection(restaurantsColl), now: s.now}
}

func (s *Store) Menus() repository.MenuRepository {
	return &menus{coll: s.db.Collection(menuItemsColl), now: s.now}
}

func (s *Store) Orders() repository.OrderRepository {
	return &orders{coll: s.db.Collection(ordersColl), now: s.now}
}

func (s *Store) Reviews() repository.ReviewRepository {
	return &reviews{coll: s.db.Collection(reviewsColl), now: s.now}
}

func (s *Store) Users() repository.UserRepository {
	return &users{coll: s.db.Collection(usersColl), now: s.now}
}

func (s *Store) Promotions() repository.PromotionRepository {
	return &promotions{coll: s.db.Collection(promotionsColl), now: s.now}
}

func (s *Store) CartStorage() cart.Storage {
	return &cartStorage{coll: s.db.Collection(cartsColl), now: s.now}
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	}
	return err
}

// matched turns an update or delete that matched nothing into ErrNotFound.
func matched(n int64, err error) error {
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, translate(err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

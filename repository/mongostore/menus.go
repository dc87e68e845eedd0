package mongostore

import (
	"context"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type menus struct {
	coll *mongo.Collection
	now  func() time.Time
}

func (r *menus) ListByRestaurant(ctx context.Context, restaurantID string, availableOnly bool) ([]entity.MenuItem, error) {
	filter := bson.M{"restaurantId": restaurantID}
	if availableOnly {
		filter["isAvailable"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	return findAll[entity.MenuItem](ctx, r.coll, filter, opts)
}

func (r *menus) Get(ctx context.Context, id string) (*entity.MenuItem, error) {
	return findOne[entity.MenuItem](ctx, r.coll, bson.M{"_id": id})
}

func (r *menus) Create(ctx context.Context, m *entity.MenuItem) error {
	m.Stamp(r.now())
	_, err := r.coll.InsertOne(ctx, m)
	return translate(err)
}

func (r *menus) Update(ctx context.Context, m *entity.MenuItem) error {
	m.UpdatedAt = r.now()
	res, err := r.coll.UpdateByID(ctx, m.ID, bson.M{"$set": bson.M{
		"restaurantId": m.RestaurantID,
		"name":         m.Name,
		"description":  m.Description,
		"price":        m.Price,
		"category":     m.Category,
		"image":        m.Image,
		"isAvailable":  m.IsAvailable,
		"updatedAt":    m.UpdatedAt,
	}})
	if err != nil {
		return translate(err)
	}
	return matched(res.MatchedCount, nil)
}

func (r *menus) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	return matched(res.DeletedCount, nil)
}

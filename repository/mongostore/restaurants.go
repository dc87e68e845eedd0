package mongostore

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type restaurants struct {
	coll *mongo.Collection
	now  func() time.Time
}

func (r *restaurants) List(ctx context.Context, f repository.RestaurantFilter) ([]entity.Restaurant, error) {
	filter := bson.M{}
	if s := strings.TrimSpace(f.Search); s != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
		filter["$or"] = bson.A{bson.M{"name": re}, bson.M{"cuisine": re}}
	}
	if f.Cuisine != "" {
		filter["cuisine"] = f.Cuisine
	}
	if f.OpenOnly {
		filter["isOpen"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "name", Value: 1}})
	return findAll[entity.Restaurant](ctx, r.coll, filter, opts)
}

func (r *restaurants) Get(ctx context.Context, id string) (*entity.Restaurant, error) {
	return findOne[entity.Restaurant](ctx, r.coll, bson.M{"_id": id})
}

func (r *restaurants) Create(ctx context.Context, rest *entity.Restaurant) error {
	rest.Stamp(r.now())
	_, err := r.coll.InsertOne(ctx, rest)
	return translate(err)
}

func (r *restaurants) Update(ctx context.Context, rest *entity.Restaurant) error {
	rest.UpdatedAt = r.now()
	res, err := r.coll.UpdateByID(ctx, rest.ID, bson.M{"$set": bson.M{
		"name":         rest.Name,
		"description":  rest.Description,
		"address":      rest.Address,
		"image":        rest.Image,
		"cuisine":      rest.Cuisine,
		"deliveryFee":  rest.DeliveryFee,
		"deliveryTime": rest.DeliveryTime,
		"isOpen":       rest.IsOpen,
		"ownerId":      rest.OwnerID,
		"updatedAt":    rest.UpdatedAt,
	}})
	if err != nil {
		return translate(err)
	}
	return matched(res.MatchedCount, nil)
}

func (r *restaurants) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	return matched(res.DeletedCount, nil)
}

func (r *restaurants) UpdateRating(ctx context.Context, id string, rating float64, count int) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"rating":      rating,
		"reviewCount": count,
	}})
	if err != nil {
		return translate(err)
	}
	return matched(res.MatchedCount, nil)
}

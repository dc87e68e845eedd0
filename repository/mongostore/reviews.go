package mongostore

import (
	"context"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type reviews struct {
	coll *mongo.Collection
	now  func() time.Time
}

func (r *reviews) Create(ctx context.Context, rev *entity.Review) error {
	rev.Stamp(r.now())
	_, err := r.coll.InsertOne(ctx, rev)
	return translate(err)
}

func (r *reviews) Get(ctx context.Context, id string) (*entity.Review, error) {
	return findOne[entity.Review](ctx, r.coll, bson.M{"_id": id})
}

func (r *reviews) Update(ctx context.Context, rev *entity.Review) error {
	rev.UpdatedAt = r.now()
	res, err := r.coll.UpdateByID(ctx, rev.ID, bson.M{"$set": bson.M{
		"rating":     rev.Rating,
		"comment":    rev.Comment,
		"userName":   rev.UserName,
		"userAvatar": rev.UserAvatar,
		"updatedAt":  rev.UpdatedAt,
	}})
	if err != nil {
		return translate(err)
	}
	return matched(res.MatchedCount, nil)
}

func (r *reviews) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	return matched(res.DeletedCount, nil)
}

func (r *reviews) ListByRestaurant(ctx context.Context, restaurantID string) ([]entity.Review, error) {
	return findAll[entity.Review](ctx, r.coll, bson.M{"restaurantId": restaurantID}, newestFirst())
}

func (r *reviews) ListByUser(ctx context.Context, userID string) ([]entity.Review, error) {
	return findAll[entity.Review](ctx, r.coll, bson.M{"userId": userID}, newestFirst())
}

package mongostore

import (
	"context"
	"strings"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type promotions struct {
	coll *mongo.Collection
	now  func() time.Time
}

func (r *promotions) List(ctx context.Context) ([]entity.Promotion, error) {
	return findAll[entity.Promotion](ctx, r.coll, bson.M{}, newestFirst())
}

func (r *promotions) Get(ctx context.Context, id string) (*entity.Promotion, error) {
	return findOne[entity.Promotion](ctx, r.coll, bson.M{"_id": id})
}

func (r *promotions) GetByCode(ctx context.Context, code string) (*entity.Promotion, error) {
	return findOne[entity.Promotion](ctx, r.coll, bson.M{"code": strings.ToUpper(strings.TrimSpace(code))})
}

func (r *promotions) Create(ctx context.Context, p *entity.Promotion) error {
	p.Stamp(r.now())
	_, err := r.coll.InsertOne(ctx, p)
	return translate(err)
}

func (r *promotions) Update(ctx context.Context, p *entity.Promotion) error {
	p.UpdatedAt = r.now()
	res, err := r.coll.UpdateByID(ctx, p.ID, bson.M{"$set": bson.M{
		"code":         p.Code,
		"description":  p.Description,
		"discountType": p.DiscountType,
		"value":        p.Value,
		"minOrder":     p.MinOrder,
		"startsAt":     p.StartsAt,
		"endsAt":       p.EndsAt,
		"active":       p.Active,
		"updatedAt":    p.UpdatedAt,
	}})
	if err != nil {
		return translate(err)
	}
	return matched(res.MatchedCount, nil)
}

func (r *promotions) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	return matched(res.DeletedCount, nil)
}

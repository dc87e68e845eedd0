package mongostore

import (
	"context"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type orders struct {
	coll *mongo.Collection
	now  func() time.Time
}

// Create stores the order with its items embedded.
func (r *orders) Create(ctx context.Context, o *entity.Order) error {
	o.Stamp(r.now())
	if o.Items == nil {
		o.Items = []entity.OrderItem{}
	}
	_, err := r.coll.InsertOne(ctx, o)
	return translate(err)
}

func (r *orders) Get(ctx context.Context, id string) (*entity.Order, error) {
	return findOne[entity.Order](ctx, r.coll, bson.M{"_id": id})
}

func (r *orders) GetByNumber(ctx context.Context, number string) (*entity.Order, error) {
	return findOne[entity.Order](ctx, r.coll, bson.M{"orderNumber": number})
}

func (r *orders) List(ctx context.Context, f repository.OrderFilter) ([]entity.Order, int64, error) {
	filter := bson.M{}
	if f.UserID != "" {
		filter["userId"] = f.UserID
	}
	if f.RestaurantID != "" {
		filter["restaurantId"] = f.RestaurantID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.PaymentStatus != "" {
		filter["paymentStatus"] = f.PaymentStatus
	}
	if f.PaymentReference != "" {
		filter["paymentReference"] = f.PaymentReference
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translate(err)
	}

	opts := newestFirst()
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit)).SetSkip(int64(f.Offset))
	}
	out, err := findAll[entity.Order](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *orders) UpdateStatus(ctx context.Context, id string, from []entity.OrderStatus, to entity.OrderStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$in": from}},
		bson.M{"$set": bson.M{"status": to, "updatedAt": r.now()}},
	)
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return repository.ErrConflict
}

func (r *orders) UpdatePaymentStatus(ctx context.Context, id string, status entity.PaymentStatus) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"paymentStatus": status, "updatedAt": r.now()}})
	if err != nil {
		return translate(err)
	}
	return matched(res.MatchedCount, nil)
}

func (r *orders) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	return matched(res.DeletedCount, nil)
}

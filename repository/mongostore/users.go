package mongostore

import (
	"context"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type users struct {
	coll *mongo.Collection
	now  func() time.Time
}

func (r *users) Create(ctx context.Context, u *entity.User) error {
	u.Stamp(r.now())
	if u.Role == "" {
		u.Role = entity.RoleCustomer
	}
	_, err := r.coll.InsertOne(ctx, u)
	return translate(err)
}

func (r *users) Get(ctx context.Context, id string) (*entity.User, error) {
	return findOne[entity.User](ctx, r.coll, bson.M{"_id": id})
}

func (r *users) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return findOne[entity.User](ctx, r.coll, bson.M{"email": email})
}

func (r *users) List(ctx context.Context) ([]entity.User, error) {
	return findAll[entity.User](ctx, r.coll, bson.M{}, newestFirst())
}

func (r *users) UpdateRole(ctx context.Context, id, role string) error {
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": role, "updatedAt": r.now()}})
	if err != nil {
		return translate(err)
	}
	return matched(res.MatchedCount, nil)
}

package mongostore

import (
	"context"
	"errors"
	"time"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const cartTimeout = 5 * time.Second

type cartStorage struct {
	coll *mongo.Collection
	now  func() time.Time
}

func (s *cartStorage) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cartTimeout)
	defer cancel()

	var snap entity.CartSnapshot
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return snap.Payload, true, nil
}

func (s *cartStorage) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cartTimeout)
	defer cancel()

	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		entity.CartSnapshot{Key: key, Payload: value, UpdatedAt: s.now()},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *cartStorage) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), cartTimeout)
	defer cancel()

	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore implements Store over a single shared *mongo.Database. The
// client is opened once in main and reused by every request.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (s *MongoStore) FindAll(ctx context.Context, collection string, out any) error {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc any) (*InsertResult, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: res.InsertedID}, nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, collection string, filter, set bson.M) (*UpdateResult, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names in surveyDb.
const (
	Users        = "users"
	Surveys      = "surveys"
	Participates = "participates"
	Payments     = "payments"
	Comments     = "comments"
	Reports      = "reports"
)

var ErrNotFound = errors.New("document not found")

// InsertResult and UpdateResult mirror the response shape the frontend
// already parses (node driver field names).
type InsertResult struct {
	InsertedID any `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// Store is the narrow gateway over the document collections. Filters are
// always by _id or by email equality.
type Store interface {
	FindOne(ctx context.Context, collection string, filter bson.M, out any) error
	FindAll(ctx context.Context, collection string, out any) error
	InsertOne(ctx context.Context, collection string, doc any) (*InsertResult, error)
	UpdateOne(ctx context.Context, collection string, filter, set bson.M) (*UpdateResult, error)
}

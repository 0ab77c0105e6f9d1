package testutil

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/alamin6688/survey-quest-server/db"
)

// FakeStore is an in-memory db.Store for handler and engine tests. It
// counts gateway calls so tests can assert that rejected requests never
// reach the store.
type FakeStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M

	FindOneCalls int
	FindAllCalls int
	InsertCalls  int
	UpdateCalls  int

	// When set, the matching operation fails with this error.
	FindOneErr error
	FindAllErr error
	InsertErr  error
	UpdateErr  error
}

func NewFakeStore() *FakeStore {
	return &FakeStore{collections: map[string][]bson.M{}}
}

// Seed inserts a document without bumping the call counters.
func (s *FakeStore) Seed(collection string, doc any) primitive.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := toDoc(doc)
	oid, ok := m["_id"].(primitive.ObjectID)
	if !ok || oid.IsZero() {
		oid = primitive.NewObjectID()
		m["_id"] = oid
	}
	s.collections[collection] = append(s.collections[collection], m)
	return oid
}

// Calls is the total number of gateway operations performed.
func (s *FakeStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.FindOneCalls + s.FindAllCalls + s.InsertCalls + s.UpdateCalls
}

// Count returns the number of documents in a collection.
func (s *FakeStore) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

func (s *FakeStore) FindOne(_ context.Context, collection string, filter bson.M, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FindOneCalls++

	if s.FindOneErr != nil {
		return s.FindOneErr
	}
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return decode(doc, out)
		}
	}
	return db.ErrNotFound
}

func (s *FakeStore) FindAll(_ context.Context, collection string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FindAllCalls++

	if s.FindAllErr != nil {
		return s.FindAllErr
	}

	docs := s.collections[collection]
	outv := reflect.ValueOf(out).Elem()
	slice := reflect.MakeSlice(outv.Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(outv.Type().Elem())
		if err := decode(doc, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	outv.Set(slice)
	return nil
}

func (s *FakeStore) InsertOne(_ context.Context, collection string, doc any) (*db.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.InsertCalls++

	if s.InsertErr != nil {
		return nil, s.InsertErr
	}

	m := toDoc(doc)
	oid, ok := m["_id"].(primitive.ObjectID)
	if !ok || oid.IsZero() {
		oid = primitive.NewObjectID()
		m["_id"] = oid
	}
	s.collections[collection] = append(s.collections[collection], m)
	return &db.InsertResult{InsertedID: oid}, nil
}

func (s *FakeStore) UpdateOne(_ context.Context, collection string, filter, set bson.M) (*db.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls++

	if s.UpdateErr != nil {
		return nil, s.UpdateErr
	}

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			modified := int64(0)
			for k, v := range set {
				if !reflect.DeepEqual(doc[k], v) {
					doc[k] = v
					modified++
				}
			}
			if modified > 1 {
				modified = 1
			}
			return &db.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &db.UpdateResult{}, nil
}

func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

func toDoc(v any) bson.M {
	data, err := bson.Marshal(v)
	if err != nil {
		panic(err)
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		panic(err)
	}
	return m
}

func decode(m bson.M, out any) error {
	data, err := bson.Marshal(m)
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, out)
}

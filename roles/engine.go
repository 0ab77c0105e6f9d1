package roles

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/alamin6688/survey-quest-server/cache"
	"github.com/alamin6688/survey-quest-server/db"
	"github.com/alamin6688/survey-quest-server/kafka"
	"github.com/alamin6688/survey-quest-server/model"
)

// Engine applies automatic role transitions as a single atomic update on
// the user document.
type Engine struct {
	store    db.Store
	roles    *cache.RoleCache
	producer *kafka.Producer
}

func NewEngine(store db.Store, roles *cache.RoleCache, producer *kafka.Producer) *Engine {
	return &Engine{store: store, roles: roles, producer: producer}
}

// Apply looks up the user for the triggering event's email and updates the
// role if a transition applies. A missing user is a no-op, not an error:
// surveys and payments may arrive for identities that never registered,
// and that must not abort the write that triggered the event.
func (e *Engine) Apply(ctx context.Context, email string, ev Event) (*db.UpdateResult, error) {
	var user model.User
	err := e.store.FindOne(ctx, db.Users, bson.M{"email": email}, &user)
	if err == db.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	newRole, ok := Decide(user.Role, ev)
	if !ok {
		return nil, nil
	}

	res, err := e.store.UpdateOne(ctx, db.Users, bson.M{"email": email}, bson.M{"role": newRole})
	if err != nil {
		return nil, err
	}

	e.roles.Invalidate(ctx, email)
	e.producer.Publish(kafka.TopicRoleUpdated, "user_role_updated", map[string]any{
		"email": email,
		"role":  newRole,
		"event": string(ev),
	})
	return res, nil
}

package controller_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/alamin6688/survey-quest-server/db"
	"github.com/alamin6688/survey-quest-server/model"
	"github.com/alamin6688/survey-quest-server/testutil"
)

func TestRegisterIsIdempotent(t *testing.T) {
	store := testutil.NewFakeStore()
	app, _ := newTestApp(store)

	resp, err := app.Test(jsonRequest(t, "POST", "/users", model.User{Email: "alice@example.com", Name: "Alice", Role: model.RoleUser}))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["insertedId"])

	// second registration reports the existing user and changes nothing
	resp, err = app.Test(jsonRequest(t, "POST", "/users", model.User{Email: "alice@example.com", Name: "Someone Else", Role: model.RoleAdmin}))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "User already exist", body["message"])

	assert.Equal(t, 1, store.Count(db.Users))
	var user model.User
	require.NoError(t, store.FindOne(context.Background(), db.Users, bson.M{"email": "alice@example.com"}, &user))
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestRolePredicates(t *testing.T) {
	store := testutil.NewFakeStore()
	store.Seed(db.Users, model.User{Email: "root@example.com", Role: model.RoleAdmin})
	store.Seed(db.Users, model.User{Email: "sue@example.com", Role: model.RoleSurveyor})
	app, codec := newTestApp(store)

	tests := []struct {
		path  string
		email string
		key   string
		want  bool
	}{
		{"/users/admin/root@example.com", "root@example.com", "admin", true},
		{"/users/proUser/root@example.com", "root@example.com", "proUser", false},
		{"/users/surveyor/sue@example.com", "sue@example.com", "surveyor", true},
		{"/users/user/sue@example.com", "sue@example.com", "user", false},
	}
	for _, tt := range tests {
		resp, err := app.Test(withToken(t, httptest.NewRequest("GET", tt.path, nil), codec, tt.email))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, tt.want, body[tt.key], tt.path)
	}
}

func TestRolePredicateMissingUserIsFalse(t *testing.T) {
	store := testutil.NewFakeStore()
	app, codec := newTestApp(store)

	resp, err := app.Test(withToken(t, httptest.NewRequest("GET", "/users/admin/ghost@example.com", nil), codec, "ghost@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["admin"])
}

func TestRolePredicateIdentityMismatch(t *testing.T) {
	store := testutil.NewFakeStore()
	store.Seed(db.Users, model.User{Email: "root@example.com", Role: model.RoleAdmin})
	app, codec := newTestApp(store)

	// a valid token for a different email must not learn root's role
	resp, err := app.Test(withToken(t, httptest.NewRequest("GET", "/users/admin/root@example.com", nil), codec, "alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestRolePredicateUnauthenticated(t *testing.T) {
	store := testutil.NewFakeStore()
	app, _ := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/users/admin/root@example.com", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// rejected before any store access
	assert.Zero(t, store.Calls())
}

func TestListUsersIsAdminGated(t *testing.T) {
	store := testutil.NewFakeStore()
	store.Seed(db.Users, model.User{Email: "root@example.com", Role: model.RoleAdmin})
	store.Seed(db.Users, model.User{Email: "alice@example.com", Role: model.RoleUser})
	app, codec := newTestApp(store)

	resp, err := app.Test(withToken(t, httptest.NewRequest("GET", "/users", nil), codec, "alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	resp, err = app.Test(withToken(t, httptest.NewRequest("GET", "/users", nil), codec, "root@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAdminOverridesSetRoleUnconditionally(t *testing.T) {
	store := testutil.NewFakeStore()
	id := store.Seed(db.Users, model.User{Email: "root@example.com", Role: model.RoleAdmin})
	app, _ := newTestApp(store)

	// the override path has no admin guard: it can demote an admin
	resp, err := app.Test(jsonRequest(t, "PATCH", "/users/"+id.Hex()+"/make-user", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["matchedCount"])

	var user model.User
	require.NoError(t, store.FindOne(context.Background(), db.Users, bson.M{"email": "root@example.com"}, &user))
	assert.Equal(t, model.RoleUser, user.Role)

	resp, err = app.Test(jsonRequest(t, "PATCH", "/users/"+id.Hex()+"/make-pro-user", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	require.NoError(t, store.FindOne(context.Background(), db.Users, bson.M{"email": "root@example.com"}, &user))
	assert.Equal(t, model.RoleProUser, user.Role)
}

func TestAdminOverrideLookupFailureSkipsWrite(t *testing.T) {
	store := testutil.NewFakeStore()
	id := store.Seed(db.Users, model.User{Email: "root@example.com", Role: model.RoleAdmin})
	store.FindOneErr = errors.New("store down")
	app, _ := newTestApp(store)

	// without the email from the lookup the cached role could not be
	// invalidated, so the write must not happen either
	resp, err := app.Test(jsonRequest(t, "PATCH", "/users/"+id.Hex()+"/make-user", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Zero(t, store.UpdateCalls)
}

func TestAdminOverrideBadID(t *testing.T) {
	store := testutil.NewFakeStore()
	app, _ := newTestApp(store)

	resp, err := app.Test(jsonRequest(t, "PATCH", "/users/nope/make-user", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

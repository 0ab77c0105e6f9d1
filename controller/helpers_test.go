package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/alamin6688/survey-quest-server/auth"
	"github.com/alamin6688/survey-quest-server/controller"
	"github.com/alamin6688/survey-quest-server/db"
	"github.com/alamin6688/survey-quest-server/middleware"
	"github.com/alamin6688/survey-quest-server/roles"
	"github.com/alamin6688/survey-quest-server/routes"
)

const testSecret = "test-secret"

// newTestApp wires the full route table the way main does, on a fake
// store with no cache and no producer.
func newTestApp(store db.Store) (*fiber.App, *auth.Codec) {
	codec := auth.NewCodec(testSecret, false)
	engine := roles.NewEngine(store, nil, nil)

	app := fiber.New()
	authRequired := middleware.AuthRequired(codec)
	adminRequired := middleware.AdminRequired(store)

	routes.RegisterAuthRoutes(app, controller.NewAuthController(codec))
	routes.RegisterUserRoutes(app, controller.NewUserController(store, nil, nil), authRequired, adminRequired)
	routes.RegisterSurveyRoutes(app, controller.NewSurveyController(store, engine, nil))
	routes.RegisterPaymentRoutes(app, controller.NewPaymentController(store, engine, nil))
	routes.RegisterFeedbackRoutes(app, controller.NewFeedbackController(store))

	return app, codec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withToken(t *testing.T, req *http.Request, codec *auth.Codec, email string) *http.Request {
	t.Helper()
	token, err := codec.Issue(email, "")
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ArinDixit06/prod-app/internal/auth"
	"github.com/ArinDixit06/prod-app/internal/store"
	"github.com/ArinDixit06/prod-app/internal/sync"
)

func newTestApp(t *testing.T) (*fiber.App, store.Stores) {
	t.Helper()
	stores := store.NewMemoryStores()
	tokens := auth.NewTokens("test-secret", time.Hour)
	coord := sync.New(stores, zerolog.Nop())
	app := New(stores, tokens, coord, zerolog.Nop()).App()
	return app, stores
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// registerUser creates an account through the API and returns its id and a
// valid bearer token.
func registerUser(t *testing.T, app *fiber.App, email string) (string, string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		map[string]string{"email": email, "password": "hunter2"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.ID)
	require.NotEmpty(t, body.Token)
	return body.ID, body.Token
}

package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	id, _ := registerUser(t, app, "a@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "a@example.com", "password": "hunter2"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	assert.Equal(t, id, body.ID)
	assert.Equal(t, "a@example.com", body.Email)
	assert.NotEmpty(t, body.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "a@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register",
		map[string]string{"email": "a@example.com", "password": "other"}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Msg string `json:"msg"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "User already exists", body.Msg)
}

func TestRegisterMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	for _, creds := range []map[string]string{
		{"email": "a@example.com"},
		{"password": "hunter2"},
		{},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/auth/register", creds, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "a@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "a@example.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "nobody@example.com", "password": "hunter2"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

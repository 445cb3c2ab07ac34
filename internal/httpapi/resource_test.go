package httpapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArinDixit06/prod-app/internal/domain"
)

func TestResourcesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/todos", "/api/notes", "/api/calendar-tasks"} {
		resp := doJSON(t, app, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()

		resp = doJSON(t, app, http.MethodGet, path, nil, "bogus-token")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestTodoCRUD(t *testing.T) {
	app, _ := newTestApp(t)
	userID, token := registerUser(t, app, "a@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/todos",
		map[string]any{"title": "buy milk", "description": "2l"}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created domain.Task
	decode(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, "buy milk", created.Title)
	assert.False(t, created.UpdatedAt.IsZero())

	resp = doJSON(t, app, http.MethodGet, "/api/todos", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed []domain.Task
	decode(t, resp, &listed)
	require.Len(t, listed, 1)

	resp = doJSON(t, app, http.MethodPut, "/api/todos/"+created.ID,
		map[string]any{"completed": true}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated domain.Task
	decode(t, resp, &updated)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Title, "omitted fields keep their stored value")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	resp = doJSON(t, app, http.MethodDelete, "/api/todos/"+created.ID, nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var msg struct {
		Msg string `json:"msg"`
	}
	decode(t, resp, &msg)
	assert.Equal(t, "Todo removed", msg.Msg)

	resp = doJSON(t, app, http.MethodGet, "/api/todos", nil, token)
	decode(t, resp, &listed)
	assert.Empty(t, listed)
}

func TestCreateValidatesFields(t *testing.T) {
	app, _ := newTestApp(t)
	_, token := registerUser(t, app, "a@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/todos",
		map[string]any{"description": "no title"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/notes",
		map[string]any{"title": "no content"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/calendar-tasks",
		map[string]any{"title": "no times"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// A record owned by someone else answers exactly like a missing one.
func TestForeignRecordsLookMissing(t *testing.T) {
	app, _ := newTestApp(t)
	_, tokenA := registerUser(t, app, "a@example.com")
	_, tokenB := registerUser(t, app, "b@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/notes",
		map[string]any{"title": "secret", "content": "text"}, tokenA)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var note domain.Note
	decode(t, resp, &note)

	var notFound struct {
		Msg string `json:"msg"`
	}

	resp = doJSON(t, app, http.MethodPut, "/api/notes/"+note.ID,
		map[string]any{"title": "stolen"}, tokenB)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	decode(t, resp, &notFound)

	resp = doJSON(t, app, http.MethodDelete, "/api/notes/"+note.ID, nil, tokenB)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var missing struct {
		Msg string `json:"msg"`
	}
	decode(t, resp, &missing)
	assert.Equal(t, notFound.Msg, missing.Msg)

	resp = doJSON(t, app, http.MethodDelete, "/api/notes/does-not-exist", nil, tokenB)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	decode(t, resp, &missing)
	assert.Equal(t, notFound.Msg, missing.Msg, "foreign and missing records must be indistinguishable")

	// B's list never shows A's note.
	resp = doJSON(t, app, http.MethodGet, "/api/notes", nil, tokenB)
	var listed []domain.Note
	decode(t, resp, &listed)
	assert.Empty(t, listed)
}

// A sync can land a future-dated updatedAt; a later PUT must still move the
// stamp forward, never backwards.
func TestUpdateNeverRewindsUpdatedAt(t *testing.T) {
	app, stores := newTestApp(t)
	userID, token := registerUser(t, app, "a@example.com")

	future := time.Now().UTC().Add(time.Hour)
	seeded, err := stores.Tasks.Create(context.Background(),
		&domain.Task{UserID: userID, Title: "ahead", UpdatedAt: future})
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodPut, "/api/todos/"+seeded.ID,
		map[string]any{"completed": true}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated domain.Task
	decode(t, resp, &updated)
	assert.True(t, updated.UpdatedAt.After(future),
		"the stamp must advance past the stored value")
}

func TestCalendarEntryRejectsBackwardsRange(t *testing.T) {
	app, _ := newTestApp(t)
	_, token := registerUser(t, app, "a@example.com")

	resp := doJSON(t, app, http.MethodPost, "/api/calendar-tasks", map[string]any{
		"title":     "meeting",
		"startTime": "2024-05-01T10:00:00Z",
		"endTime":   "2024-05-01T09:00:00Z",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

package blog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elevated-studio/core"
	"elevated-studio/notify"
	"elevated-studio/studio"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(state *studio.State) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/blog", HandleList(state))
	r.Get("/blog/{id}", HandleGet(state))
	r.Post("/blog", HandlePublish(state))
	r.Delete("/blog/{id}", HandleDelete(state))
	return r
}

func newTestState() *studio.State {
	return studio.NewState(notify.New(time.Minute))
}

func TestListEmptyIsArrayNotNull(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(newTestState()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestPublishThenGet(t *testing.T) {
	state := newTestState()
	router := newRouter(state)

	body, _ := json.Marshal(map[string]any{
		"title":    "Aftercare 101",
		"author":   "Sarah Johnson",
		"content":  "Be gentle with your lashes.",
		"category": "Tutorials",
		"readTime": 4,
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/blog", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created core.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Date)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got core.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestPublishValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	body, _ := json.Marshal(map[string]any{"title": "no author or content"})
	newRouter(newTestState()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/blog", bytes.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnknownPost(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(newTestState()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blog/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteIsIdempotent(t *testing.T) {
	state := newTestState()
	router := newRouter(state)
	post := state.AddBlogPost(core.BlogPost{Title: "T", Author: "A", Content: "C"})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/blog/"+post.ID, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Empty(t, state.BlogPosts())
}

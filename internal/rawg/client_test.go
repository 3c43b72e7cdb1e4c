package rawg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient(Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
	return client, srv
}

func TestClient_Search(t *testing.T) {
	var gotQuery, gotKey string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games", r.URL.Path)
		gotQuery = r.URL.Query().Get("search")
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":2,"results":[
			{"id":1,"name":"Zelda","released":"1986-02-21","background_image":"http://img/1"},
			{"id":2,"name":"Zelda II","released":"1987-01-14","background_image":"http://img/2"}
		]}`))
	}))
	defer srv.Close()

	results, err := client.Search(context.Background(), "zelda")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "zelda", gotQuery)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, int64(1), results[0].ID)
	assert.Equal(t, "Zelda", results[0].Name)
}

func TestClient_FilterParams(t *testing.T) {
	var got map[string]string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		got = map[string]string{
			"dates":     q.Get("dates"),
			"platforms": q.Get("platforms"),
			"genres":    q.Get("genres"),
		}
		w.Write([]byte(`{"count":0,"results":[]}`))
	}))
	defer srv.Close()

	_, err := client.Filter(context.Background(), FilterParams{
		ReleaseDate: "2010-01-01",
		Platform:    4,
	})
	require.NoError(t, err)
	assert.Equal(t, "2010-01-01", got["dates"])
	assert.Equal(t, "4", got["platforms"])
	assert.Equal(t, "", got["genres"])
}

func TestClient_GetByID(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/games/123", r.URL.Path)
		w.Write([]byte(`{"id":123,"name":"Portal","description":"A puzzle game.","released":"2007-10-09","background_image":"http://img/p"}`))
	}))
	defer srv.Close()

	detail, err := client.GetByID(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, int64(123), detail.ID)
	assert.Equal(t, "Portal", detail.Name)
	assert.Equal(t, "A puzzle game.", detail.Description)
}

func TestClient_UpstreamErrorPropagatesStatusAndReason(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := client.Search(context.Background(), "anything")
	require.Error(t, err)

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusServiceUnavailable, ue.StatusCode)
	assert.Equal(t, "Service Unavailable", ue.Reason)
	assert.False(t, IsNotFound(err))
}

func TestClient_NotFound(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := client.GetByID(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

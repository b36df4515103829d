package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chaugames/backend/internal/apperr"
	"chaugames/backend/internal/collection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
	"games": [
		{
			"game_id": 42,
			"title": "Chrono Trigger",
			"platforms": [
				{"platform_name": "SNES", "first_release_date": "1995-03-11"},
				{"platform_name": "Nintendo DS", "first_release_date": "2008-11-20"}
			],
			"sample_cover": {"image": "https://cdn.example.com/chrono.png"}
		},
		{
			"game_id": 7,
			"title": "Obscure Prototype"
		}
	]
}`

func TestSearch_TransformsResults(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"title":   r.URL.Query().Get("title"),
			"limit":   r.URL.Query().Get("limit"),
			"api_key": r.URL.Query().Get("api_key"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)
	results, err := client.Search(context.Background(), "chrono", 10)
	require.NoError(t, err)

	assert.Equal(t, "chrono", gotQuery["title"])
	assert.Equal(t, "10", gotQuery["limit"])
	assert.Equal(t, "test-key", gotQuery["api_key"])

	require.Len(t, results, 2)

	// First listed platform wins.
	assert.Equal(t, int64(42), results[0].MobyID)
	assert.Equal(t, "Chrono Trigger", results[0].Title)
	assert.Equal(t, "SNES", results[0].Platform)
	require.NotNil(t, results[0].ReleaseDate)
	assert.Equal(t, "1995-03-11", *results[0].ReleaseDate)
	require.NotNil(t, results[0].ImageURL)
	assert.Equal(t, "https://cdn.example.com/chrono.png", *results[0].ImageURL)

	// No platform or cover falls back cleanly.
	assert.Equal(t, collection.UnknownPlatform, results[1].Platform)
	assert.Nil(t, results[1].ReleaseDate)
	assert.Nil(t, results[1].ImageURL)
}

func TestSearch_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"games": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)
	results, err := client.Search(context.Background(), "nothing", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", 5*time.Second)
	_, err := client.Search(context.Background(), "chrono", 10)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestSearch_UnreachableHost(t *testing.T) {
	// Grab a port that is guaranteed closed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "test-key", time.Second)
	_, err := client.Search(context.Background(), "chrono", 10)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestSearch_MissingAPIKey(t *testing.T) {
	client := NewClient("http://localhost:1", "", time.Second)
	_, err := client.Search(context.Background(), "chrono", 10)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

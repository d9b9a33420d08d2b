package youtube_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubemark/tubemark-core/internal/youtube"
)

const searchBody = `{
	"kind": "youtube#searchListResponse",
	"pageInfo": {"totalResults": 1, "resultsPerPage": 10},
	"items": [
		{
			"kind": "youtube#searchResult",
			"id": {"kind": "youtube#video", "videoId": "abc123"},
			"snippet": {
				"publishedAt": "2024-01-15T10:00:00Z",
				"channelId": "UCxyz",
				"title": "Test Video",
				"description": "A video",
				"channelTitle": "Test Channel",
				"thumbnails": {"default": {"url": "https://i.ytimg.com/vi/abc123/default.jpg"}}
			}
		}
	]
}`

// fakeUpstream records the queries the client sends.
func fakeUpstream(t *testing.T, body string) (*httptest.Server, *[]map[string]string) {
	t.Helper()
	var calls []map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := map[string]string{"path": r.URL.Path}
		for k, v := range r.URL.Query() {
			params[k] = v[0]
		}
		calls = append(calls, params)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newClient(srv *httptest.Server) *youtube.Client {
	return youtube.NewClient(youtube.Config{APIKey: "test-key", BaseURL: srv.URL})
}

func TestSearch(t *testing.T) {
	srv, calls := fakeUpstream(t, searchBody)
	c := newClient(srv)

	res, err := c.Search(context.Background(), "gophers", 5)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "abc123", res.Items[0].ID.VideoID)
	assert.Equal(t, "Test Channel", res.Items[0].Snippet.ChannelTitle)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/search", call["path"])
	assert.Equal(t, "gophers", call["q"])
	assert.Equal(t, "5", call["maxResults"])
	assert.Equal(t, "video", call["type"])
	assert.Equal(t, "test-key", call["key"])
}

func TestSearchDefaultMaxResults(t *testing.T) {
	srv, calls := fakeUpstream(t, searchBody)
	c := newClient(srv)

	_, err := c.Search(context.Background(), "gophers", 0)
	require.NoError(t, err)
	assert.Equal(t, "10", (*calls)[0]["maxResults"])
}

func TestTrendingDefaults(t *testing.T) {
	srv, calls := fakeUpstream(t, `{"items": []}`)
	c := newClient(srv)

	_, err := c.Trending(context.Background(), "", 0)
	require.NoError(t, err)

	call := (*calls)[0]
	assert.Equal(t, "/videos", call["path"])
	assert.Equal(t, "mostPopular", call["chart"])
	assert.Equal(t, "US", call["regionCode"])
	assert.Equal(t, "10", call["maxResults"])
}

func TestChannelVideos(t *testing.T) {
	srv, calls := fakeUpstream(t, searchBody)
	c := newClient(srv)

	_, err := c.ChannelVideos(context.Background(), "UCxyz", 10)
	require.NoError(t, err)

	call := (*calls)[0]
	assert.Equal(t, "/search", call["path"])
	assert.Equal(t, "UCxyz", call["channelId"])
	assert.Equal(t, "date", call["order"])
}

func TestUpstreamErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "quotaExceeded"})
	}))
	t.Cleanup(srv.Close)
	c := newClient(srv)

	_, err := c.Search(context.Background(), "gophers", 5)
	require.Error(t, err)
	// the upstream body must not leak through the error
	assert.NotContains(t, err.Error(), "quotaExceeded")
}

func TestUpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := newClient(srv)

	_, err := c.VideoDetails(context.Background(), "abc123")
	assert.Error(t, err)
}

package odesli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    srv.URL,
	}, srv
}

func TestResolveCollectsKnownPlatforms(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://open.spotify.com/track/abc", r.URL.Query().Get("url"))
		w.Write([]byte(`{
			"entityUniqueId": "SPOTIFY_SONG::abc",
			"entitiesByUniqueId": {
				"SPOTIFY_SONG::abc": {"title": "Song", "artistName": "Artist", "thumbnailUrl": "http://img", "apiProvider": "spotify"}
			},
			"linksByPlatform": {
				"spotify":      {"url": "https://open.spotify.com/track/abc"},
				"itunes":       {"url": "https://itunes.apple.com/track/abc"},
				"yandexMusic":  {"url": "https://music.yandex.ru/track/abc"},
				"napster":      {"url": "https://napster.example/abc"}
			}
		}`))
	})
	defer srv.Close()

	res, err := client.Resolve(context.Background(), "https://open.spotify.com/track/abc")
	require.NoError(t, err)

	assert.Equal(t, "Song", res.Title)
	assert.Equal(t, "Artist", res.Artist)
	assert.Equal(t, "http://img", res.Cover)

	ids := make([]string, 0, len(res.Platforms))
	for _, p := range res.Platforms {
		ids = append(ids, p.Platform)
		assert.True(t, p.Visible)
		assert.NotEmpty(t, p.URL)
	}
	// itunes maps to appleMusic, yandexMusic to yandex, napster is dropped
	assert.ElementsMatch(t, []string{"spotify", "appleMusic", "yandex"}, ids)
}

func TestResolveOrderIsCatalogOrder(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"entityUniqueId": "x",
			"entitiesByUniqueId": {"x": {"title": "T", "artistName": "A", "apiProvider": "spotify"}},
			"linksByPlatform": {
				"deezer":  {"url": "https://deezer.com/1"},
				"spotify": {"url": "https://open.spotify.com/1"},
				"vk":      {"url": "https://vk.com/1"}
			}
		}`))
	})
	defer srv.Close()

	for i := 0; i < 5; i++ {
		res, err := client.Resolve(context.Background(), "any")
		require.NoError(t, err)

		ids := make([]string, 0, len(res.Platforms))
		for _, p := range res.Platforms {
			ids = append(ids, p.Platform)
		}
		assert.Equal(t, []string{"spotify", "vk", "deezer"}, ids)
	}
}

func TestResolvePrefersStoreMetadataOverYouTube(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"entityUniqueId": "YOUTUBE_VIDEO::v",
			"entitiesByUniqueId": {
				"YOUTUBE_VIDEO::v": {"title": "Song (Official Video) HD", "artistName": "SomeChannel", "apiProvider": "youtube"},
				"SPOTIFY_SONG::s":  {"title": "Song", "artistName": "Artist", "apiProvider": "spotify"}
			},
			"linksByPlatform": {
				"youtube": {"url": "https://youtu.be/v"},
				"spotify": {"url": "https://open.spotify.com/track/s"}
			}
		}`))
	})
	defer srv.Close()

	res, err := client.Resolve(context.Background(), "https://youtu.be/v")
	require.NoError(t, err)

	assert.Equal(t, "Song", res.Title)
	assert.Equal(t, "Artist", res.Artist)
}

func TestResolveErrorStatus(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := client.Resolve(context.Background(), "anything")
	assert.Error(t, err)
}

func TestResolveFallbackMetadata(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"entityUniqueId": "x",
			"entitiesByUniqueId": {"x": {"apiProvider": "youtube"}},
			"linksByPlatform": {"youtube": {"url": "https://youtu.be/v"}}
		}`))
	})
	defer srv.Close()

	res, err := client.Resolve(context.Background(), "https://youtu.be/v")
	require.NoError(t, err)

	assert.Equal(t, "Unknown", res.Title)
	assert.Equal(t, "Unknown", res.Artist)
}

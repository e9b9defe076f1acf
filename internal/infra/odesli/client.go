package odesli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"linkpage-app/internal/domain/platform"
)

const defaultBaseURL = "https://api.song.link/v1-alpha.1/links"

// platformMap normalizes Odesli provider ids to the catalog ids the music
// block understands. Unmapped providers pass through and get filtered
// against the catalog afterwards.
var platformMap = map[string]string{
	"appleMusic":   "appleMusic",
	"itunes":       "appleMusic",
	"spotify":      "spotify",
	"youtube":      "youtube",
	"youtubeMusic": "youtubeMusic",
	"yandex":       "yandex",
	"yandexMusic":  "yandex",
	"vk":           "vk",
	"deezer":       "deezer",
	"tidal":        "tidal",
	"amazonMusic":  "amazonMusic",
	"amazon":       "amazonMusic",
	"pandora":      "pandora",
	"bandcamp":     "bandcamp",
	"soundcloud":   "soundcloud",
	"anghami":      "anghami",
	"boomplay":     "boomplay",
	"audiomack":    "audiomack",
	"audius":       "audius",
	"tiktok":       "tiktok",
}

// metadataProviders, in preference order, decide which entity supplies
// title/artist/cover. YouTube metadata is noisy, so richer stores win.
var metadataProviders = []string{"spotify", "itunes", "apple", "deezer", "tidal"}

// Resolved is the resolver output consumed by the music merge.
type Resolved struct {
	Title     string          `json:"title"`
	Artist    string          `json:"artist"`
	Cover     string          `json:"cover,omitempty"`
	Platforms []platform.Link `json:"platforms"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

type apiEntity struct {
	Title        string `json:"title"`
	ArtistName   string `json:"artistName"`
	ThumbnailURL string `json:"thumbnailUrl"`
	APIProvider  string `json:"apiProvider"`
}

type apiResponse struct {
	EntityUniqueID     string               `json:"entityUniqueId"`
	EntitiesByUniqueID map[string]apiEntity `json:"entitiesByUniqueId"`
	LinksByPlatform    map[string]struct {
		URL string `json:"url"`
	} `json:"linksByPlatform"`
}

// Resolve asks the song.link API for every known streaming link of the
// given track URL.
func (c *Client) Resolve(ctx context.Context, trackURL string) (*Resolved, error) {
	endpoint := c.baseURL + "?url=" + url.QueryEscape(trackURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resolver returned status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	entity := pickMetadataEntity(body)
	out := &Resolved{
		Title:  entity.Title,
		Artist: entity.ArtistName,
		Cover:  entity.ThumbnailURL,
	}
	if out.Title == "" {
		out.Title = "Unknown"
	}
	if out.Artist == "" {
		out.Artist = "Unknown"
	}

	// linksByPlatform is a JSON object; emit in catalog priority order so
	// discovery order is deterministic for the merge downstream.
	byID := make(map[string]string, len(body.LinksByPlatform))
	for provider, link := range body.LinksByPlatform {
		if link.URL == "" {
			continue
		}
		id := provider
		if mapped, ok := platformMap[provider]; ok {
			id = mapped
		}
		if !platform.IsMusicPlatform(id) {
			continue
		}
		if _, exists := byID[id]; !exists {
			byID[id] = link.URL
		}
	}
	for _, entry := range platform.MusicCatalog {
		if u, ok := byID[entry.ID]; ok {
			out.Platforms = append(out.Platforms, platform.Link{
				Platform: entry.ID,
				URL:      u,
				Visible:  true,
			})
		}
	}
	return out, nil
}

// pickMetadataEntity prefers store entities over YouTube for title/artist.
func pickMetadataEntity(body apiResponse) apiEntity {
	entity := body.EntitiesByUniqueID[body.EntityUniqueID]
	current := strings.ToLower(entity.APIProvider)

	preferred := false
	for _, p := range metadataProviders {
		if strings.Contains(current, p) {
			preferred = true
			break
		}
	}
	if preferred {
		return entity
	}

	for _, candidate := range body.EntitiesByUniqueID {
		provider := strings.ToLower(candidate.APIProvider)
		for _, p := range metadataProviders {
			if strings.Contains(provider, p) {
				return candidate
			}
		}
	}
	return entity
}

// Package catalog is the client for the external MobyGames-style game
// catalog. Search failures are non-fatal: ingestion accepts caller-supplied
// fields whether or not a search ever happened.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"chaugames/backend/internal/apperr"
	"chaugames/backend/internal/collection"
)

// Result is one candidate game returned by the catalog.
type Result struct {
	MobyID      int64   `json:"game_id"`
	Title       string  `json:"title"`
	Platform    string  `json:"platform"`
	ReleaseDate *string `json:"release_date"`
	ImageURL    *string `json:"image_url"`
}

// Client talks to the catalog HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a catalog client. An empty apiKey is allowed at
// construction time; Search reports it as an upstream failure.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// catalog wire format: each game carries per-platform releases and an
// optional sample cover image.
type searchResponse struct {
	Games []struct {
		GameID    int64  `json:"game_id"`
		Title     string `json:"title"`
		Platforms []struct {
			PlatformName     string `json:"platform_name"`
			FirstReleaseDate string `json:"first_release_date"`
		} `json:"platforms"`
		SampleCover *struct {
			Image string `json:"image"`
		} `json:"sample_cover"`
	} `json:"games"`
}

// Search queries the catalog by title and returns at most limit candidates.
// The first listed platform wins; games with no platform fall back to
// "Unknown Platform".
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if c.apiKey == "" {
		return nil, apperr.Upstream("Game catalog is not configured", nil)
	}

	params := url.Values{}
	params.Set("title", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games?"+params.Encode(), nil)
	if err != nil {
		return nil, apperr.Upstream("Failed to fetch games from catalog", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream("Failed to fetch games from catalog", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream("Failed to fetch games from catalog",
			fmt.Errorf("catalog API error: %d", resp.StatusCode))
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperr.Upstream("Failed to fetch games from catalog", err)
	}

	results := make([]Result, 0, len(body.Games))
	for _, g := range body.Games {
		r := Result{
			MobyID:   g.GameID,
			Title:    g.Title,
			Platform: collection.UnknownPlatform,
		}
		if len(g.Platforms) > 0 {
			first := g.Platforms[0]
			r.Platform = first.PlatformName
			if first.FirstReleaseDate != "" {
				d := first.FirstReleaseDate
				r.ReleaseDate = &d
			}
		}
		if g.SampleCover != nil && g.SampleCover.Image != "" {
			img := g.SampleCover.Image
			r.ImageURL = &img
		}
		results = append(results, r)
	}
	return results, nil
}

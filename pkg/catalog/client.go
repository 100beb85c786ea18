// Package catalog resolves artist/album pairs to ordered tracklists via the
// Last.fm catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/scrobloop/scrobloop/pkg/titlenorm"
)

const (
	// DefaultBaseURL is the default catalog API endpoint.
	DefaultBaseURL = "https://ws.audioscrobbler.com/2.0/"
)

// ErrNotFound is returned when no candidate encoding of the album title
// yields a non-empty tracklist.
var ErrNotFound = errors.New("album or tracks not found")

// Logger is an optional interface for debug logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Config holds client configuration.
type Config struct {
	APIKey     string       // Required: catalog API key
	HTTPClient *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL    string       // Optional: endpoint override, used for testing
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Client looks up album metadata from the catalog API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     Logger
}

// NewClient creates a new catalog client.
//
// Returns an error if the required APIKey is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("catalog: APIKey is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     cfg.Logger,
	}, nil
}

// AlbumTracks resolves an artist and album title to an ordered tracklist.
//
// The album title is tried in several candidate encodings because the
// upstream catalog indexes titles inconsistently by Unicode normalization
// form. The first candidate whose response is successful and carries a
// non-empty track field wins; failures on individual candidates are
// swallowed and the next candidate is tried. When every candidate has been
// exhausted the returned error wraps ErrNotFound.
func (c *Client) AlbumTracks(ctx context.Context, artist, album string) ([]Track, error) {
	for i, candidate := range titlenorm.Candidates(album) {
		tracks, err := c.albumInfo(ctx, artist, candidate)
		if err != nil {
			c.logDebugf("catalog: album candidate %d (%s) failed: %v", i+1, candidate, err)
			continue
		}
		c.logDebugf("catalog: album candidate %d accepted with %d tracks", i+1, len(tracks))
		return tracks, nil
	}
	return nil, fmt.Errorf("lookup %q by %q: %w", album, artist, ErrNotFound)
}

// albumInfo issues one album.getinfo request with a pre-encoded album title.
func (c *Client) albumInfo(ctx context.Context, artist, albumCandidate string) ([]Track, error) {
	// The candidate arrives already encoded, so the query string is
	// assembled by hand; url.Values would escape it a second time.
	query := "method=album.getinfo" +
		"&api_key=" + url.QueryEscape(c.apiKey) +
		"&artist=" + url.QueryEscape(artist) +
		"&album=" + albumCandidate +
		"&format=json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var decoded albumInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode album info: %w", err)
	}

	tracks := decoded.Album.Tracks.Track
	if len(tracks) == 0 {
		return nil, fmt.Errorf("no tracks in response")
	}
	return tracks, nil
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}

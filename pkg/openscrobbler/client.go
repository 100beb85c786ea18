// Package openscrobbler submits scrobble batches to the OpenScrobbler API.
//
// The client performs exactly one network round trip per call and reports
// failures as typed errors (*HTTPError, *DailyLimitError) so a caller can
// drive its own retry policy. A response that the service accepted but
// credited with zero scrobbles is not an error; it is returned as a Result
// with Accepted == 0 for the caller to classify.
package openscrobbler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the default submission endpoint.
	DefaultBaseURL = "https://openscrobbler.com/api/v2/scrobble.php"

	// DefaultUserAgent mimics a browser. The endpoint serves the site's
	// own frontend and expects browser-shaped requests.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	sessionCookie = "PHPSESSID"
)

// Logger is an optional interface for debug logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Config holds client configuration.
type Config struct {
	SessionID  string       // Required: session credential sent as the PHPSESSID cookie
	HTTPClient *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL    string       // Optional: endpoint override, used for testing
	UserAgent  string       // Optional: User-Agent override (defaults to DefaultUserAgent)
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Client submits scrobble batches.
type Client struct {
	sessionID  string
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     Logger
}

// Result is a well-formed submission response.
type Result struct {
	Accepted int    // Number of scrobbles the service credited
	Body     string // Raw response body, for operator display
}

// NewClient creates a new submission client.
//
// Returns an error if the required SessionID is missing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.SessionID == "" {
		return nil, fmt.Errorf("openscrobbler: SessionID is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		sessionID:  cfg.SessionID,
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     cfg.Logger,
	}, nil
}

// Scrobble submits one batch covering the whole tracklist in a single POST.
//
// Each track is stamped one second after the previous, so timestamps
// within a batch are unique and strictly increasing. The call makes
// exactly one round trip; retrying is the caller's concern.
func (c *Client) Scrobble(ctx context.Context, artist, album string, tracks []string) (*Result, error) {
	if len(tracks) == 0 {
		return nil, fmt.Errorf("openscrobbler: empty tracklist")
	}

	now := time.Now().Unix()
	form := url.Values{}
	for i, name := range tracks {
		idx := "[" + strconv.Itoa(i) + "]"
		form.Set("artist"+idx, artist)
		form.Set("track"+idx, name)
		form.Set("album"+idx, album)
		form.Set("timestamp"+idx, strconv.FormatInt(now+int64(i), 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: c.sessionID})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logDebugf("openscrobbler: %d track(s) submitted, status %s, %d byte body", len(tracks), resp.Status, len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return parseResult(body)
}

// scrobbleResponse covers both shapes the endpoint returns: an error object
// or a scrobbles envelope with a string-valued accepted count.
type scrobbleResponse struct {
	Error     int    `json:"error"`
	Message   string `json:"message"`
	Scrobbles struct {
		Attr struct {
			Accepted string `json:"accepted"`
		} `json:"@attr"`
	} `json:"scrobbles"`
}

func parseResult(body []byte) (*Result, error) {
	var decoded scrobbleResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if decoded.Error == errCodeRateLimit && strings.Contains(decoded.Message, dailyLimitMarker) {
		return nil, &DailyLimitError{Code: decoded.Error, Message: decoded.Message}
	}

	accepted, _ := strconv.Atoi(decoded.Scrobbles.Attr.Accepted)
	if accepted < 0 {
		accepted = 0
	}
	return &Result{Accepted: accepted, Body: string(body)}, nil
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}

// Package nflapi is a Go client for the api-sports American Football API.
//
// Every operation validates and normalizes its arguments locally, then
// performs a single GET against the fixed endpoint for that operation
// and returns the body's "response" payload untouched. Validation
// failures surface before any network call as *Error values of kind
// ErrInvalidArgument; upstream failures are classified by HTTP status.
package nflapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	apiSportsHost = "v1.american-football.api-sports.io"
	rapidAPIHost  = "api-nfl-v1.p.rapidapi.com"

	defaultTimezone = "America/New_York"
)

// endpoints maps operation names to URL paths.
var endpoints = map[string]string{
	"status":                   "/status",
	"timezone":                 "/timezone",
	"seasons":                  "/seasons",
	"leagues":                  "/leagues",
	"teams":                    "/teams",
	"players":                  "/players",
	"players_statistics":       "/players/statistics",
	"injuries":                 "/injuries",
	"games":                    "/games",
	"games_events":             "/games/events",
	"games_teams_statistics":   "/games/statistics/teams",
	"games_players_statistics": "/games/statistics/players",
	"standings":                "/standings",
	"standings_conferences":    "/standings/conferences",
	"standings_divisions":      "/standings/divisions",
	"odds":                     "/odds",
	"odds_bets":                "/odds/bets",
	"odds_bookmakers":          "/odds/bookmakers",
}

// Client issues requests against the API. All configuration is set at
// construction and never mutated, so a single Client is safe to share
// across goroutines.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
	timezone   string
	headers    map[string]string
	logger     *slog.Logger
}

// Options tunes a Client beyond the required API key. The zero value
// selects the api-sports host, the America/New_York timezone, a
// 30-second HTTP timeout, and the default authentication headers.
type Options struct {
	// UseRapidAPI selects the RapidAPI host instead of the api-sports one.
	UseRapidAPI bool
	// Timezone is the default timezone sent with games queries that
	// omit an explicit one.
	Timezone string
	// Headers, when set, replaces the default authentication headers
	// on every request.
	Headers map[string]string
	// BaseURL overrides scheme and host, for tests against local servers.
	BaseURL string
	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// New creates a Client with the given API key.
func New(apiKey string, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	host := apiSportsHost
	if opts.UseRapidAPI {
		host = rapidAPIHost
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = "https://" + host
	}
	tz := opts.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		host:       host,
		apiKey:     apiKey,
		timezone:   tz,
		headers:    opts.Headers,
		logger:     logger,
	}
}

// envelope is the common api-sports response wrapper.
type envelope struct {
	Errors   json.RawMessage `json:"errors"`
	Response json.RawMessage `json:"response"`
}

// get performs a GET request and returns the response payload.
func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.headers != nil {
		for k, v := range c.headers {
			req.Header.Set(k, v)
		}
	} else {
		req.Header.Set("x-rapidapi-host", c.host)
		req.Header.Set("x-rapidapi-key", c.apiKey)
	}

	c.logger.Debug("api request", "path", path, "params", params.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode, env.Errors)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if hasErrors(env.Errors) {
		return nil, apiError(env.Errors)
	}
	return env.Response, nil
}

// hasErrors reports whether the decoded errors value is truthy. The API
// sends an empty array on success and a populated array or object on
// failure even with status 200.
func hasErrors(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return true
	}
	switch t := v.(type) {
	case nil:
		return false
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	}
	return true
}

package nflapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// Status calls the status endpoint, which reports the account,
// subscription, and request usage for the configured API key.
func (c *Client) Status(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, endpoints["status"], nil)
}

// Timezone calls the timezone endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Timezone/operation/get-timezone
func (c *Client) Timezone(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, endpoints["timezone"], nil)
}

// Seasons calls the seasons endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Seasons
func (c *Client) Seasons(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, endpoints["seasons"], nil)
}

// LeaguesQuery filters the leagues endpoint. All fields are optional and
// an empty query is legal.
type LeaguesQuery struct {
	// ID is a league id: 1 for NFL, 2 for NCAA. Accepts a League
	// constant, an int, or a numeric string.
	ID any
	// Season is a season year, e.g. 2023.
	Season any
	// Current, when true, restricts each league to its current season.
	// Accepts a bool or the strings "true"/"false".
	Current any
}

func (q LeaguesQuery) params() (url.Values, error) {
	params := url.Values{}
	if q.ID != nil {
		id, err := asLeague("id", q.ID)
		if err != nil {
			return nil, err
		}
		params.Set("id", strconv.Itoa(id))
	}
	if q.Season != nil {
		season, err := asSeason(q.Season)
		if err != nil {
			return nil, err
		}
		params.Set("season", strconv.Itoa(season))
	}
	if q.Current != nil {
		current, err := asBool("current", q.Current)
		if err != nil {
			return nil, err
		}
		params.Set("current", strconv.FormatBool(current))
	}
	return params, nil
}

// Leagues calls the leagues endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Leagues
func (c *Client) Leagues(ctx context.Context, q LeaguesQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["leagues"], params)
}

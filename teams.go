package nflapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// TeamsQuery filters the teams endpoint. At least one field must be set,
// and League and Season are mutually required.
type TeamsQuery struct {
	// ID is a team id. Accepts an int or a numeric string.
	ID any
	// League is a league id: 1 for NFL, 2 for NCAA. Requires Season.
	League any
	// Season is a season year, e.g. 2023. Requires League.
	Season any
	// Name is an exact team name, e.g. "Las Vegas Raiders".
	Name string
	// Code is a team code, e.g. "LV".
	Code string
	// Search is a free-text team search term, minimum 3 characters.
	Search string
}

func (q TeamsQuery) params() (url.Values, error) {
	params := url.Values{}
	met := false
	if q.ID != nil {
		id, err := asInt("id", q.ID)
		if err != nil {
			return nil, err
		}
		params.Set("id", strconv.Itoa(id))
		met = true
	}
	if q.League != nil {
		league, err := asLeague("league", q.League)
		if err != nil {
			return nil, err
		}
		if q.Season == nil {
			return nil, invalidArg("season must be provided if league is provided")
		}
		params.Set("league", strconv.Itoa(league))
		met = true
	}
	if q.Season != nil {
		season, err := asSeason(q.Season)
		if err != nil {
			return nil, err
		}
		if q.League == nil {
			return nil, invalidArg("league must be provided if season is provided")
		}
		params.Set("season", strconv.Itoa(season))
		met = true
	}
	if q.Name != "" {
		params.Set("name", q.Name)
		met = true
	}
	if q.Code != "" {
		params.Set("code", q.Code)
		met = true
	}
	if q.Search != "" {
		search, err := asSearch(q.Search)
		if err != nil {
			return nil, err
		}
		params.Set("search", search)
		met = true
	}
	if !met {
		return nil, invalidArg("Must provide at least one of: id, league, season, name, code, search")
	}
	return params, nil
}

// Teams calls the teams endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Teams/operation/get-teams
func (c *Client) Teams(ctx context.Context, q TeamsQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["teams"], params)
}

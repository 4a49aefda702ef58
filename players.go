package nflapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// PlayersQuery filters the players endpoint. At least one field must be
// set, and Team and Season are mutually required.
type PlayersQuery struct {
	// ID is a player id. Accepts an int or a numeric string.
	ID any
	// Name is an exact player name.
	Name string
	// Team is a team id. Requires Season.
	Team any
	// Season is a season year, e.g. 2023. Requires Team.
	Season any
	// Search is a free-text player search term, minimum 3 characters.
	Search string
}

func (q PlayersQuery) params() (url.Values, error) {
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
	if q.Name != "" {
		params.Set("name", q.Name)
		met = true
	}
	if q.Team != nil {
		team, err := asInt("team", q.Team)
		if err != nil {
			return nil, err
		}
		if q.Season == nil {
			return nil, invalidArg("season must be provided if team is provided")
		}
		params.Set("team", strconv.Itoa(team))
		met = true
	}
	if q.Season != nil {
		season, err := asSeason(q.Season)
		if err != nil {
			return nil, err
		}
		if q.Team == nil {
			return nil, invalidArg("team must be provided if season is provided")
		}
		params.Set("season", strconv.Itoa(season))
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
		return nil, invalidArg("Must provide at least one of: id, name, team, season, search")
	}
	return params, nil
}

// Players calls the players endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Players
func (c *Client) Players(ctx context.Context, q PlayersQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["players"], params)
}

// PlayersStatisticsQuery filters the players statistics endpoint. No
// field may appear alone: ID needs Team or Season, Team needs Season,
// and Season needs ID or Team.
type PlayersStatisticsQuery struct {
	// ID is a player id.
	ID any
	// Team is a team id. Requires Season.
	Team any
	// Season is a season year, e.g. 2023.
	Season any
}

func (q PlayersStatisticsQuery) params() (url.Values, error) {
	params := url.Values{}
	met := false
	if q.ID != nil {
		id, err := asInt("id", q.ID)
		if err != nil {
			return nil, err
		}
		params.Set("id", strconv.Itoa(id))
		if q.Team == nil && q.Season == nil {
			return nil, invalidArg("team or season must be provided if id is provided")
		}
		met = true
	}
	if q.Team != nil {
		team, err := asInt("team", q.Team)
		if err != nil {
			return nil, err
		}
		if q.Season == nil {
			return nil, invalidArg("season must be provided if team is provided")
		}
		params.Set("team", strconv.Itoa(team))
		met = true
	}
	if q.Season != nil {
		season, err := asSeason(q.Season)
		if err != nil {
			return nil, err
		}
		if q.Team == nil && q.ID == nil {
			return nil, invalidArg("id or team must be provided if season is provided")
		}
		params.Set("season", strconv.Itoa(season))
		met = true
	}
	if !met {
		return nil, invalidArg("Must provide at least one of: id, team, season")
	}
	return params, nil
}

// PlayersStatistics calls the players statistics endpoint. Statistics
// are not available for every season; check the leagues endpoint for
// availability info.
//
// https://api-sports.io/documentation/nfl/v1#tag/Players/operation/get-players-statistics
func (c *Client) PlayersStatistics(ctx context.Context, q PlayersStatisticsQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["players_statistics"], params)
}

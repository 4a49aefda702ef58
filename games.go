package nflapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// GamesQuery filters the games endpoint. At least one field other than
// Timezone must be set. League and Team each require Season; Season by
// itself requires at least one of ID, League, Team, Date, H2H, or Live.
type GamesQuery struct {
	// ID is a game id. Accepts an int or a numeric string.
	ID any
	// Date is a game date. Accepts a "YYYY-MM-DD" string or a time.Time.
	Date any
	// League is a league id: 1 for NFL, 2 for NCAA. Requires Season.
	League any
	// Season is a season year, e.g. 2023.
	Season any
	// Team is a team id. Requires Season.
	Team any
	// H2H is two team ids separated by a dash, e.g. "1-2".
	H2H string
	// Live restricts results to live games. Accepts a bool or the
	// strings "true"/"false"; false drops the filter entirely.
	Live any
	// Timezone overrides the client's default timezone for game times.
	Timezone string
}

func (q GamesQuery) params(defaultTZ string) (url.Values, error) {
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
	if q.Date != nil {
		date, err := asDate("date", q.Date)
		if err != nil {
			return nil, err
		}
		params.Set("date", date)
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
		params.Set("season", strconv.Itoa(season))
		if q.ID == nil && q.League == nil && q.Team == nil && q.Date == nil && q.H2H == "" && q.Live == nil {
			return nil, invalidArg("one of id, league, team, date, h2h, or live must be provided if season is provided")
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
	if q.H2H != "" {
		h2h, err := asH2H(q.H2H)
		if err != nil {
			return nil, err
		}
		params.Set("h2h", h2h)
		met = true
	}
	if q.Live != nil {
		live, err := asBool("live", q.Live)
		if err != nil {
			return nil, err
		}
		// The API only understands live=all; a false filter is dropped
		// and does not count toward the at-least-one rule.
		if live {
			params.Set("live", "all")
			met = true
		}
	}
	if q.Timezone != "" {
		params.Set("timezone", q.Timezone)
	} else {
		params.Set("timezone", defaultTZ)
	}
	if !met {
		return nil, invalidArg("Must provide at least one of: id, date, league, season, team, h2h, live, timezone")
	}
	return params, nil
}

// Games calls the games endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Games/operation/get-games
func (c *Client) Games(ctx context.Context, q GamesQuery) (json.RawMessage, error) {
	params, err := q.params(c.timezone)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["games"], params)
}

// GamesEventsQuery selects the game whose events to fetch.
type GamesEventsQuery struct {
	// ID is the game id. Required.
	ID any
}

func (q GamesEventsQuery) params() (url.Values, error) {
	if q.ID == nil {
		return nil, invalidArg("id must be provided")
	}
	id, err := asInt("id", q.ID)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("id", strconv.Itoa(id))
	return params, nil
}

// GamesEvents calls the games events endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Games/operation/get-games-events
func (c *Client) GamesEvents(ctx context.Context, q GamesEventsQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["games_events"], params)
}

// GamesTeamsStatisticsQuery selects the game, and optionally one team,
// whose team statistics to fetch.
type GamesTeamsStatisticsQuery struct {
	// ID is the game id. Required.
	ID any
	// Team is a team id.
	Team any
}

func (q GamesTeamsStatisticsQuery) params() (url.Values, error) {
	if q.ID == nil {
		return nil, invalidArg("id must be provided")
	}
	id, err := asInt("id", q.ID)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("id", strconv.Itoa(id))
	if q.Team != nil {
		team, err := asInt("team", q.Team)
		if err != nil {
			return nil, err
		}
		params.Set("team", strconv.Itoa(team))
	}
	return params, nil
}

// GamesTeamsStatistics calls the games teams statistics endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Games/operation/get-games-statistics-teams
func (c *Client) GamesTeamsStatistics(ctx context.Context, q GamesTeamsStatisticsQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["games_teams_statistics"], params)
}

// GamesPlayersStatisticsQuery selects the game, and optional
// group/team/player refinements, for per-player game statistics.
type GamesPlayersStatisticsQuery struct {
	// ID is the game id. Required.
	ID any
	// Group is a statistics group, e.g. "passing". Accepts a
	// StatisticsGroup constant or its string value.
	Group any
	// Team is a team id.
	Team any
	// Player is a player id.
	Player any
}

func (q GamesPlayersStatisticsQuery) params() (url.Values, error) {
	if q.ID == nil {
		return nil, invalidArg("id must be provided")
	}
	id, err := asInt("id", q.ID)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("id", strconv.Itoa(id))
	if q.Group != nil {
		group, err := asEnum("group", q.Group, statisticsGroupValues())
		if err != nil {
			return nil, err
		}
		params.Set("group", group)
	}
	if q.Team != nil {
		team, err := asInt("team", q.Team)
		if err != nil {
			return nil, err
		}
		params.Set("team", strconv.Itoa(team))
	}
	if q.Player != nil {
		player, err := asInt("player", q.Player)
		if err != nil {
			return nil, err
		}
		params.Set("player", strconv.Itoa(player))
	}
	return params, nil
}

// GamesPlayersStatistics calls the games players statistics endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Games/operation/get-games-statistics-players
func (c *Client) GamesPlayersStatistics(ctx context.Context, q GamesPlayersStatisticsQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["games_players_statistics"], params)
}

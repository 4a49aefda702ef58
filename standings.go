package nflapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// StandingsQuery filters the standings endpoint. League and Season are
// required; Team, Conference, and Division are independent refinements.
type StandingsQuery struct {
	// League is a league id: 1 for NFL, 2 for NCAA. Required.
	League any
	// Season is a season year, e.g. 2023. Required.
	Season any
	// Team is a team id.
	Team any
	// Conference is a conference name. Accepts a Conference constant or
	// its string value.
	Conference any
	// Division is a division name. Accepts a Division constant or its
	// string value.
	Division any
}

func (q StandingsQuery) params() (url.Values, error) {
	if q.League == nil {
		return nil, invalidArg("league must be provided")
	}
	league, err := asLeague("league", q.League)
	if err != nil {
		return nil, err
	}
	if q.Season == nil {
		return nil, invalidArg("season must be provided")
	}
	season, err := asSeason(q.Season)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("league", strconv.Itoa(league))
	params.Set("season", strconv.Itoa(season))
	if q.Team != nil {
		team, err := asInt("team", q.Team)
		if err != nil {
			return nil, err
		}
		params.Set("team", strconv.Itoa(team))
	}
	if q.Conference != nil {
		conference, err := asEnum("conference", q.Conference, conferenceValues())
		if err != nil {
			return nil, err
		}
		params.Set("conference", conference)
	}
	if q.Division != nil {
		division, err := asEnum("division", q.Division, divisionValues())
		if err != nil {
			return nil, err
		}
		params.Set("division", division)
	}
	return params, nil
}

// Standings calls the standings endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Standings/operation/get-standings
func (c *Client) Standings(ctx context.Context, q StandingsQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["standings"], params)
}

// StandingsConferencesQuery selects the league and season whose
// conferences to fetch. Both fields are required.
type StandingsConferencesQuery struct {
	League any
	Season any
}

func (q StandingsConferencesQuery) params() (url.Values, error) {
	return leagueSeasonParams(q.League, q.Season)
}

// StandingsConferences calls the conferences endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Standings/operation/get-standings-conferences
func (c *Client) StandingsConferences(ctx context.Context, q StandingsConferencesQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["standings_conferences"], params)
}

// Conferences is an alias for StandingsConferences.
func (c *Client) Conferences(ctx context.Context, q StandingsConferencesQuery) (json.RawMessage, error) {
	return c.StandingsConferences(ctx, q)
}

// StandingsDivisionsQuery selects the league and season whose divisions
// to fetch. Both fields are required.
type StandingsDivisionsQuery struct {
	League any
	Season any
}

func (q StandingsDivisionsQuery) params() (url.Values, error) {
	return leagueSeasonParams(q.League, q.Season)
}

// StandingsDivisions calls the divisions endpoint. Divisions are not
// enumerated by conference in the API, so this endpoint is of limited
// use by itself.
//
// https://api-sports.io/documentation/nfl/v1#tag/Standings/operation/get-standings-divisions
func (c *Client) StandingsDivisions(ctx context.Context, q StandingsDivisionsQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["standings_divisions"], params)
}

// Divisions is an alias for StandingsDivisions.
func (c *Client) Divisions(ctx context.Context, q StandingsDivisionsQuery) (json.RawMessage, error) {
	return c.StandingsDivisions(ctx, q)
}

// leagueSeasonParams validates the required league+season pair shared by
// the conferences and divisions endpoints.
func leagueSeasonParams(league, season any) (url.Values, error) {
	if league == nil {
		return nil, invalidArg("league must be provided")
	}
	l, err := asLeague("league", league)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, invalidArg("season must be provided")
	}
	s, err := asSeason(season)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("league", strconv.Itoa(l))
	params.Set("season", strconv.Itoa(s))
	return params, nil
}

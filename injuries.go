package nflapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// InjuriesQuery filters the injuries endpoint. At least one field must
// be set.
type InjuriesQuery struct {
	// Player is a player id. Accepts an int or a numeric string.
	Player any
	// Team is a team id.
	Team any
}

func (q InjuriesQuery) params() (url.Values, error) {
	params := url.Values{}
	met := false
	if q.Player != nil {
		player, err := asInt("player", q.Player)
		if err != nil {
			return nil, err
		}
		params.Set("player", strconv.Itoa(player))
		met = true
	}
	if q.Team != nil {
		team, err := asInt("team", q.Team)
		if err != nil {
			return nil, err
		}
		params.Set("team", strconv.Itoa(team))
		met = true
	}
	if !met {
		return nil, invalidArg("Must provide at least one of: player, team")
	}
	return params, nil
}

// Injuries calls the injuries endpoint. Only current injuries are
// returned; the API keeps no historic data.
//
// https://api-sports.io/documentation/nfl/v1#tag/Injuries/operation/get-teams
func (c *Client) Injuries(ctx context.Context, q InjuriesQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["injuries"], params)
}

package nflapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// OddsQuery filters the odds endpoint. Game is required; Bookmaker and
// Bet are optional refinements.
type OddsQuery struct {
	// Game is a game id. Required.
	Game any
	// Bookmaker is a bookmaker id.
	Bookmaker any
	// Bet is a bet id.
	Bet any
}

func (q OddsQuery) params() (url.Values, error) {
	if q.Game == nil {
		return nil, invalidArg("game must be provided")
	}
	game, err := asInt("game", q.Game)
	if err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("game", strconv.Itoa(game))
	if q.Bookmaker != nil {
		bookmaker, err := asInt("bookmaker", q.Bookmaker)
		if err != nil {
			return nil, err
		}
		params.Set("bookmaker", strconv.Itoa(bookmaker))
	}
	if q.Bet != nil {
		bet, err := asInt("bet", q.Bet)
		if err != nil {
			return nil, err
		}
		params.Set("bet", strconv.Itoa(bet))
	}
	return params, nil
}

// Odds calls the odds endpoint. Odds are only retained for 7 days after
// the closure of an event.
//
// https://api-sports.io/documentation/nfl/v1#tag/Odds
func (c *Client) Odds(ctx context.Context, q OddsQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["odds"], params)
}

// OddsBetsQuery filters the odds bets endpoint. At least one field must
// be set.
type OddsBetsQuery struct {
	// ID is a bet id. Accepts an int or a numeric string.
	ID any
	// Search is a free-text bet search term, minimum 3 characters.
	Search string
}

func (q OddsBetsQuery) params() (url.Values, error) {
	return idSearchParams(q.ID, q.Search)
}

// OddsBets calls the odds bets endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Odds/operation/get-odds-bets
func (c *Client) OddsBets(ctx context.Context, q OddsBetsQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["odds_bets"], params)
}

// Bets is an alias for OddsBets.
func (c *Client) Bets(ctx context.Context, q OddsBetsQuery) (json.RawMessage, error) {
	return c.OddsBets(ctx, q)
}

// OddsBookmakersQuery filters the odds bookmakers endpoint. At least one
// field must be set.
type OddsBookmakersQuery struct {
	// ID is a bookmaker id. Accepts an int or a numeric string.
	ID any
	// Search is a free-text bookmaker search term, minimum 3 characters.
	Search string
}

func (q OddsBookmakersQuery) params() (url.Values, error) {
	return idSearchParams(q.ID, q.Search)
}

// OddsBookmakers calls the odds bookmakers endpoint.
//
// https://api-sports.io/documentation/nfl/v1#tag/Odds/operation/get-odds-bookmakers
func (c *Client) OddsBookmakers(ctx context.Context, q OddsBookmakersQuery) (json.RawMessage, error) {
	params, err := q.params()
	if err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints["odds_bookmakers"], params)
}

// Bookmakers is an alias for OddsBookmakers.
func (c *Client) Bookmakers(ctx context.Context, q OddsBookmakersQuery) (json.RawMessage, error) {
	return c.OddsBookmakers(ctx, q)
}

// idSearchParams validates the id+search pair shared by the bets and
// bookmakers endpoints.
func idSearchParams(idArg any, search string) (url.Values, error) {
	params := url.Values{}
	met := false
	if idArg != nil {
		id, err := asInt("id", idArg)
		if err != nil {
			return nil, err
		}
		params.Set("id", strconv.Itoa(id))
		met = true
	}
	if search != "" {
		s, err := asSearch(search)
		if err != nil {
			return nil, err
		}
		params.Set("search", s)
		met = true
	}
	if !met {
		return nil, invalidArg("Must provide at least one of: id, search")
	}
	return params, nil
}

// Package proxy exposes the client's operations over a local HTTP
// surface, one route per upstream endpoint. Each handler translates the
// query string into the operation's query struct, so the same validation
// rules apply before anything is forwarded. Responses pass through
// verbatim: no caching, no reshaping, no state.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"

	"github.com/albapepper/nflapi"
	"github.com/albapepper/nflapi/internal/config"
)

// Server holds the handler dependencies.
type Server struct {
	client *nflapi.Client
	logger *slog.Logger
}

// NewRouter creates and configures the Chi router with all middleware
// and routes.
func NewRouter(client *nflapi.Client, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		ExposedHeaders:   []string{"X-Process-Time"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	s := &Server{client: client, logger: logger}

	// --- Routes: one per upstream endpoint ---
	r.Get("/status", s.handleStatus)
	r.Get("/timezone", s.handleTimezone)
	r.Get("/seasons", s.handleSeasons)
	r.Get("/leagues", s.handleLeagues)
	r.Get("/teams", s.handleTeams)
	r.Get("/players", s.handlePlayers)
	r.Get("/players/statistics", s.handlePlayersStatistics)
	r.Get("/injuries", s.handleInjuries)
	r.Get("/games", s.handleGames)
	r.Get("/games/events", s.handleGamesEvents)
	r.Get("/games/statistics/teams", s.handleGamesTeamsStatistics)
	r.Get("/games/statistics/players", s.handleGamesPlayersStatistics)
	r.Get("/standings", s.handleStandings)
	r.Get("/standings/conferences", s.handleStandingsConferences)
	r.Get("/standings/divisions", s.handleStandingsDivisions)
	r.Get("/odds", s.handleOdds)
	r.Get("/odds/bets", s.handleOddsBets)
	r.Get("/odds/bookmakers", s.handleOddsBookmakers)

	return r
}

// proxy runs one upstream call and maps its outcome onto the local
// response: validation failures become 422, classified upstream errors
// keep their status family, anything else is a 502.
func (s *Server) proxy(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context) (json.RawMessage, error)) {
	response, err := fn(r.Context())
	if err != nil {
		var apiErr *nflapi.Error
		if errors.As(err, &apiErr) {
			writeError(w, httpStatus(apiErr), apiErr.Kind.String(), apiErr.Message)
			return
		}
		s.logger.Error("upstream call failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	writeResponse(w, response)
}

func httpStatus(e *nflapi.Error) int {
	switch e.Kind {
	case nflapi.ErrInvalidArgument:
		return http.StatusUnprocessableEntity
	case nflapi.ErrUnauthorized:
		return http.StatusUnauthorized
	case nflapi.ErrBadParameters:
		return http.StatusNotFound
	case nflapi.ErrRateLimited:
		return http.StatusTooManyRequests
	case nflapi.ErrServer:
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

// qp returns a query parameter as an any-typed value, nil when absent,
// so coercion happens in the client's validators rather than here.
func qp(r *http.Request, name string) any {
	if v, ok := r.URL.Query()[name]; ok && len(v) > 0 {
		return v[0]
	}
	return nil
}

func qs(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}

// --------------------------------------------------------------------------
// Handlers
// --------------------------------------------------------------------------

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Status(ctx)
	})
}

func (s *Server) handleTimezone(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Timezone(ctx)
	})
}

func (s *Server) handleSeasons(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Seasons(ctx)
	})
}

func (s *Server) handleLeagues(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Leagues(ctx, nflapi.LeaguesQuery{
			ID:      qp(r, "id"),
			Season:  qp(r, "season"),
			Current: qp(r, "current"),
		})
	})
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Teams(ctx, nflapi.TeamsQuery{
			ID:     qp(r, "id"),
			League: qp(r, "league"),
			Season: qp(r, "season"),
			Name:   qs(r, "name"),
			Code:   qs(r, "code"),
			Search: qs(r, "search"),
		})
	})
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Players(ctx, nflapi.PlayersQuery{
			ID:     qp(r, "id"),
			Name:   qs(r, "name"),
			Team:   qp(r, "team"),
			Season: qp(r, "season"),
			Search: qs(r, "search"),
		})
	})
}

func (s *Server) handlePlayersStatistics(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.PlayersStatistics(ctx, nflapi.PlayersStatisticsQuery{
			ID:     qp(r, "id"),
			Team:   qp(r, "team"),
			Season: qp(r, "season"),
		})
	})
}

func (s *Server) handleInjuries(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Injuries(ctx, nflapi.InjuriesQuery{
			Player: qp(r, "player"),
			Team:   qp(r, "team"),
		})
	})
}

func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Games(ctx, nflapi.GamesQuery{
			ID:       qp(r, "id"),
			Date:     qp(r, "date"),
			League:   qp(r, "league"),
			Season:   qp(r, "season"),
			Team:     qp(r, "team"),
			H2H:      qs(r, "h2h"),
			Live:     qp(r, "live"),
			Timezone: qs(r, "timezone"),
		})
	})
}

func (s *Server) handleGamesEvents(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.GamesEvents(ctx, nflapi.GamesEventsQuery{ID: qp(r, "id")})
	})
}

func (s *Server) handleGamesTeamsStatistics(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.GamesTeamsStatistics(ctx, nflapi.GamesTeamsStatisticsQuery{
			ID:   qp(r, "id"),
			Team: qp(r, "team"),
		})
	})
}

func (s *Server) handleGamesPlayersStatistics(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.GamesPlayersStatistics(ctx, nflapi.GamesPlayersStatisticsQuery{
			ID:     qp(r, "id"),
			Group:  qp(r, "group"),
			Team:   qp(r, "team"),
			Player: qp(r, "player"),
		})
	})
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Standings(ctx, nflapi.StandingsQuery{
			League:     qp(r, "league"),
			Season:     qp(r, "season"),
			Team:       qp(r, "team"),
			Conference: qp(r, "conference"),
			Division:   qp(r, "division"),
		})
	})
}

func (s *Server) handleStandingsConferences(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.StandingsConferences(ctx, nflapi.StandingsConferencesQuery{
			League: qp(r, "league"),
			Season: qp(r, "season"),
		})
	})
}

func (s *Server) handleStandingsDivisions(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.StandingsDivisions(ctx, nflapi.StandingsDivisionsQuery{
			League: qp(r, "league"),
			Season: qp(r, "season"),
		})
	})
}

func (s *Server) handleOdds(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Odds(ctx, nflapi.OddsQuery{
			Game:      qp(r, "game"),
			Bookmaker: qp(r, "bookmaker"),
			Bet:       qp(r, "bet"),
		})
	})
}

func (s *Server) handleOddsBets(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.OddsBets(ctx, nflapi.OddsBetsQuery{
			ID:     qp(r, "id"),
			Search: qs(r, "search"),
		})
	})
}

func (s *Server) handleOddsBookmakers(w http.ResponseWriter, r *http.Request) {
	s.proxy(w, r, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.OddsBookmakers(ctx, nflapi.OddsBookmakersQuery{
			ID:     qp(r, "id"),
			Search: qs(r, "search"),
		})
	})
}

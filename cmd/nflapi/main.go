// Command nflapi is the api-sports American Football client CLI.
//
// Usage:
//
//	nflapi status
//	nflapi teams --league 1 --season 2023
//	nflapi games --date 2023-09-10
//	nflapi games --live
//	nflapi standings --league 1 --season 2023 --division North
//	nflapi odds --game 7820
//	nflapi serve
//	nflapi export --league 1 --seasons 2022,2023 --out snapshot.json
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/albapepper/nflapi"
	"github.com/albapepper/nflapi/internal/config"
	"github.com/albapepper/nflapi/internal/proxy"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "nflapi",
		Short: "api-sports American Football API client",
	}

	root.AddCommand(statusCmd())
	root.AddCommand(timezoneCmd())
	root.AddCommand(seasonsCmd())
	root.AddCommand(leaguesCmd())
	root.AddCommand(teamsCmd())
	root.AddCommand(playersCmd())
	root.AddCommand(injuriesCmd())
	root.AddCommand(gamesCmd())
	root.AddCommand(standingsCmd())
	root.AddCommand(oddsCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(exportCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newClient builds the configured client shared by all subcommands.
func newClient() (*nflapi.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	client := nflapi.New(cfg.APIKey, &nflapi.Options{
		UseRapidAPI: cfg.UseRapidAPI,
		Timezone:    cfg.Timezone,
		Logger:      logger,
	})
	return client, cfg, nil
}

// run executes one API call with interrupt handling and prints the
// response payload as indented JSON.
func run(cmd *cobra.Command, fn func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error)) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	response, err := fn(ctx, client)
	if err != nil {
		return err
	}
	return printJSON(cmd, response)
}

func printJSON(cmd *cobra.Command, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// Not JSON we can pretty-print; emit as-is.
		buf.Write(raw)
	}
	fmt.Fprintln(cmd.OutOrStdout(), buf.String())
	return nil
}

// anyFlag returns the flag value when it was set on the command line and
// nil otherwise, so absent flags stay absent in the query.
func anyFlag[T any](cmd *cobra.Command, name string, v T) any {
	if cmd.Flags().Changed(name) {
		return v
	}
	return nil
}

// --------------------------------------------------------------------------
// Parameterless endpoints
// --------------------------------------------------------------------------

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show account, subscription, and request usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error) {
				return client.Status(ctx)
			})
		},
	}
}

func timezoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timezone",
		Short: "List supported timezones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error) {
				return client.Timezone(ctx)
			})
		},
	}
}

func seasonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seasons",
		Short: "List available seasons",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error) {
				return client.Seasons(ctx)
			})
		},
	}
}

// --------------------------------------------------------------------------
// Query endpoints
// --------------------------------------------------------------------------

func leaguesCmd() *cobra.Command {
	var (
		id, season int
		current    bool
	)
	cmd := &cobra.Command{
		Use:   "leagues",
		Short: "List leagues and their season coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error) {
				return client.Leagues(ctx, nflapi.LeaguesQuery{
					ID:      anyFlag(cmd, "id", id),
					Season:  anyFlag(cmd, "season", season),
					Current: anyFlag(cmd, "current", current),
				})
			})
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "League ID (1=NFL, 2=NCAA)")
	cmd.Flags().IntVar(&season, "season", 0, "Season year")
	cmd.Flags().BoolVar(&current, "current", false, "Only current seasons")
	return cmd
}

func teamsCmd() *cobra.Command {
	var (
		id, league, season int
		name, code, search string
	)
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Look up teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error) {
				return client.Teams(ctx, nflapi.TeamsQuery{
					ID:     anyFlag(cmd, "id", id),
					League: anyFlag(cmd, "league", league),
					Season: anyFlag(cmd, "season", season),
					Name:   name,
					Code:   code,
					Search: search,
				})
			})
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "Team ID")
	cmd.Flags().IntVar(&league, "league", 0, "League ID (1=NFL, 2=NCAA)")
	cmd.Flags().IntVar(&season, "season", 0, "Season year")
	cmd.Flags().StringVar(&name, "name", "", "Exact team name")
	cmd.Flags().StringVar(&code, "code", "", "Team code, e.g. LV")
	cmd.Flags().StringVar(&search, "search", "", "Search term (>= 3 chars)")
	return cmd
}

func playersCmd() *cobra.Command {
	var (
		id, team, season int
		name, search     string
		statistics       bool
	)
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Look up players or their season statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error) {
				if statistics {
					return client.PlayersStatistics(ctx, nflapi.PlayersStatisticsQuery{
						ID:     anyFlag(cmd, "id", id),
						Team:   anyFlag(cmd, "team", team),
						Season: anyFlag(cmd, "season", season),
					})
				}
				return client.Players(ctx, nflapi.PlayersQuery{
					ID:     anyFlag(cmd, "id", id),
					Name:   name,
					Team:   anyFlag(cmd, "team", team),
					Season: anyFlag(cmd, "season", season),
					Search: search,
				})
			})
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "Player ID")
	cmd.Flags().IntVar(&team, "team", 0, "Team ID")
	cmd.Flags().IntVar(&season, "season", 0, "Season year")
	cmd.Flags().StringVar(&name, "name", "", "Exact player name")
	cmd.Flags().StringVar(&search, "search", "", "Search term (>= 3 chars)")
	cmd.Flags().BoolVar(&statistics, "statistics", false, "Fetch season statistics instead of profiles")
	return cmd
}

func injuriesCmd() *cobra.Command {
	var player, team int
	cmd := &cobra.Command{
		Use:   "injuries",
		Short: "List current injuries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error) {
				return client.Injuries(ctx, nflapi.InjuriesQuery{
					Player: anyFlag(cmd, "player", player),
					Team:   anyFlag(cmd, "team", team),
				})
			})
		},
	}
	cmd.Flags().IntVar(&player, "player", 0, "Player ID")
	cmd.Flags().IntVar(&team, "team", 0, "Team ID")
	return cmd
}

func gamesCmd() *cobra.Command {
	var (
		id, league, season, team int
		date, h2h, timezone      string
		live, events             bool
		teamStats, playerStats   bool
		group                    string
		statsTeam, statsPlayer   int
	)
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Look up games, their events, or their statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error) {
				switch {
				case events:
					return client.GamesEvents(ctx, nflapi.GamesEventsQuery{ID: anyFlag(cmd, "id", id)})
				case teamStats:
					return client.GamesTeamsStatistics(ctx, nflapi.GamesTeamsStatisticsQuery{
						ID:   anyFlag(cmd, "id", id),
						Team: anyFlag(cmd, "stats-team", statsTeam),
					})
				case playerStats:
					return client.GamesPlayersStatistics(ctx, nflapi.GamesPlayersStatisticsQuery{
						ID:     anyFlag(cmd, "id", id),
						Group:  anyFlag(cmd, "group", group),
						Team:   anyFlag(cmd, "stats-team", statsTeam),
						Player: anyFlag(cmd, "stats-player", statsPlayer),
					})
				}
				return client.Games(ctx, nflapi.GamesQuery{
					ID:       anyFlag(cmd, "id", id),
					Date:     anyFlag(cmd, "date", date),
					League:   anyFlag(cmd, "league", league),
					Season:   anyFlag(cmd, "season", season),
					Team:     anyFlag(cmd, "team", team),
					H2H:      h2h,
					Live:     anyFlag(cmd, "live", live),
					Timezone: timezone,
				})
			})
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "Game ID")
	cmd.Flags().StringVar(&date, "date", "", "Game date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&league, "league", 0, "League ID (1=NFL, 2=NCAA)")
	cmd.Flags().IntVar(&season, "season", 0, "Season year")
	cmd.Flags().IntVar(&team, "team", 0, "Team ID")
	cmd.Flags().StringVar(&h2h, "h2h", "", "Two team IDs separated by a dash, e.g. 1-2")
	cmd.Flags().BoolVar(&live, "live", false, "Only live games")
	cmd.Flags().StringVar(&timezone, "timezone", "", "Timezone for game times")
	cmd.Flags().BoolVar(&events, "events", false, "Fetch game events")
	cmd.Flags().BoolVar(&teamStats, "team-statistics", false, "Fetch per-team game statistics")
	cmd.Flags().BoolVar(&playerStats, "player-statistics", false, "Fetch per-player game statistics")
	cmd.Flags().StringVar(&group, "group", "", "Statistics group, e.g. passing")
	cmd.Flags().IntVar(&statsTeam, "stats-team", 0, "Team ID filter for statistics")
	cmd.Flags().IntVar(&statsPlayer, "stats-player", 0, "Player ID filter for statistics")
	return cmd
}

func standingsCmd() *cobra.Command {
	var (
		league, season, team   int
		conference, division   string
		conferences, divisions bool
	)
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Look up standings, conferences, or divisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error) {
				switch {
				case conferences:
					return client.StandingsConferences(ctx, nflapi.StandingsConferencesQuery{
						League: anyFlag(cmd, "league", league),
						Season: anyFlag(cmd, "season", season),
					})
				case divisions:
					return client.StandingsDivisions(ctx, nflapi.StandingsDivisionsQuery{
						League: anyFlag(cmd, "league", league),
						Season: anyFlag(cmd, "season", season),
					})
				}
				return client.Standings(ctx, nflapi.StandingsQuery{
					League:     anyFlag(cmd, "league", league),
					Season:     anyFlag(cmd, "season", season),
					Team:       anyFlag(cmd, "team", team),
					Conference: anyFlag(cmd, "conference", conference),
					Division:   anyFlag(cmd, "division", division),
				})
			})
		},
	}
	cmd.Flags().IntVar(&league, "league", 0, "League ID (1=NFL, 2=NCAA)")
	cmd.Flags().IntVar(&season, "season", 0, "Season year")
	cmd.Flags().IntVar(&team, "team", 0, "Team ID")
	cmd.Flags().StringVar(&conference, "conference", "", "Conference name")
	cmd.Flags().StringVar(&division, "division", "", "Division name (North, South, East, West)")
	cmd.Flags().BoolVar(&conferences, "conferences", false, "Fetch conferences instead of standings")
	cmd.Flags().BoolVar(&divisions, "divisions", false, "Fetch divisions instead of standings")
	return cmd
}

func oddsCmd() *cobra.Command {
	var (
		game, bookmaker, bet, id int
		search                   string
		bets, bookmakers         bool
	)
	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Look up odds, bets, or bookmakers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, client *nflapi.Client) (json.RawMessage, error) {
				switch {
				case bets:
					return client.OddsBets(ctx, nflapi.OddsBetsQuery{
						ID:     anyFlag(cmd, "id", id),
						Search: search,
					})
				case bookmakers:
					return client.OddsBookmakers(ctx, nflapi.OddsBookmakersQuery{
						ID:     anyFlag(cmd, "id", id),
						Search: search,
					})
				}
				return client.Odds(ctx, nflapi.OddsQuery{
					Game:      anyFlag(cmd, "game", game),
					Bookmaker: anyFlag(cmd, "bookmaker", bookmaker),
					Bet:       anyFlag(cmd, "bet", bet),
				})
			})
		},
	}
	cmd.Flags().IntVar(&game, "game", 0, "Game ID")
	cmd.Flags().IntVar(&bookmaker, "bookmaker", 0, "Bookmaker ID")
	cmd.Flags().IntVar(&bet, "bet", 0, "Bet ID")
	cmd.Flags().IntVar(&id, "id", 0, "Bet or bookmaker ID")
	cmd.Flags().StringVar(&search, "search", "", "Search term (>= 3 chars)")
	cmd.Flags().BoolVar(&bets, "bets", false, "Fetch bet types")
	cmd.Flags().BoolVar(&bookmakers, "bookmakers", false, "Fetch bookmakers")
	return cmd
}

// --------------------------------------------------------------------------
// serve command
// --------------------------------------------------------------------------

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run a local passthrough proxy for the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			router := proxy.NewRouter(client, cfg, logger)

			addr := fmt.Sprintf("%s:%d", cfg.ProxyHost, cfg.ProxyPort)
			srv := &http.Server{
				Addr:         addr,
				Handler:      router,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				logger.Info("Starting proxy", "addr", addr, "rapidapi", cfg.UseRapidAPI)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Server failed", "error", err)
					os.Exit(1)
				}
			}()

			<-ctx.Done()
			logger.Info("Shutting down...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Shutdown error", "error", err)
			}
			logger.Info("Server stopped")
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// export command
// --------------------------------------------------------------------------

// exportCmd fetches a season snapshot (teams, standings, conferences,
// divisions per season) in one paced pass and writes it as one JSON
// document. Pacing keeps a multi-season export inside the upstream's
// per-minute quota.
func exportCmd() *cobra.Command {
	var (
		league  int
		seasons []int
		out     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a multi-season snapshot of teams and standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := newClient()
			if err != nil {
				return err
			}
			if len(seasons) == 0 {
				return fmt.Errorf("at least one --seasons year is required")
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			limiter := rate.NewLimiter(rate.Every(cfg.ExportInterval), 1)
			snapshot := make(map[string]map[string]json.RawMessage, len(seasons))
			start := time.Now()

			type part struct {
				name  string
				fetch func(context.Context) (json.RawMessage, error)
			}

			for _, season := range seasons {
				parts := []part{
					{"teams", func(ctx context.Context) (json.RawMessage, error) {
						return client.Teams(ctx, nflapi.TeamsQuery{League: league, Season: season})
					}},
					{"standings", func(ctx context.Context) (json.RawMessage, error) {
						return client.Standings(ctx, nflapi.StandingsQuery{League: league, Season: season})
					}},
					{"conferences", func(ctx context.Context) (json.RawMessage, error) {
						return client.StandingsConferences(ctx, nflapi.StandingsConferencesQuery{League: league, Season: season})
					}},
					{"divisions", func(ctx context.Context) (json.RawMessage, error) {
						return client.StandingsDivisions(ctx, nflapi.StandingsDivisionsQuery{League: league, Season: season})
					}},
				}

				seasonKey := fmt.Sprintf("%d", season)
				snapshot[seasonKey] = make(map[string]json.RawMessage, len(parts))
				for _, p := range parts {
					if err := limiter.Wait(ctx); err != nil {
						return err
					}
					payload, err := p.fetch(ctx)
					if err != nil {
						return fmt.Errorf("export %s season %d: %w", p.name, season, err)
					}
					snapshot[seasonKey][p.name] = payload
					logger.Info("Exported", "part", p.name, "season", season)
				}
			}

			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return fmt.Errorf("encode snapshot: %w", err)
			}

			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return fmt.Errorf("write snapshot: %w", err)
				}
				logger.Info("Export finished", "file", out, "seasons", len(seasons), "duration", time.Since(start).Round(time.Second))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&league, "league", 1, "League ID (1=NFL, 2=NCAA)")
	cmd.Flags().IntSliceVar(&seasons, "seasons", nil, "Season years, e.g. 2022,2023")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	return cmd
}

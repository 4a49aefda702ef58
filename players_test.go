package nflapi

import "testing"

func TestPlayersQuery_NoArguments(t *testing.T) {
	_, err := PlayersQuery{}.params()
	wantInvalid(t, err, "Must provide at least one of: id, name, team, season, search")
}

func TestPlayersQuery_TeamSeasonMutuallyRequired(t *testing.T) {
	_, err := PlayersQuery{Team: 12}.params()
	wantInvalid(t, err, "season must be provided if team is provided")

	_, err = PlayersQuery{Season: 2023}.params()
	wantInvalid(t, err, "team must be provided if season is provided")

	params, err := PlayersQuery{Team: 12, Season: 2023}.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := params.Encode(); got != "season=2023&team=12" {
		t.Fatalf("params: got %q, want %q", got, "season=2023&team=12")
	}
}

func TestPlayersQuery_IDAndSearchStandAlone(t *testing.T) {
	params, err := PlayersQuery{ID: "99"}.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := params.Encode(); got != "id=99" {
		t.Fatalf("params: got %q, want %q", got, "id=99")
	}

	params, err = PlayersQuery{Search: "mahomes"}.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := params.Encode(); got != "search=mahomes" {
		t.Fatalf("params: got %q, want %q", got, "search=mahomes")
	}
}

func TestPlayersStatisticsQuery_NoFieldStandsAlone(t *testing.T) {
	// The per-field dependency rules run before the at-least-one rule,
	// so a lone id fails with the dependency message.
	_, err := PlayersStatisticsQuery{ID: 99}.params()
	wantInvalid(t, err, "team or season must be provided if id is provided")

	_, err = PlayersStatisticsQuery{Team: 12}.params()
	wantInvalid(t, err, "season must be provided if team is provided")

	_, err = PlayersStatisticsQuery{Season: 2023}.params()
	wantInvalid(t, err, "id or team must be provided if season is provided")
}

func TestPlayersStatisticsQuery_ValidCombinations(t *testing.T) {
	tests := []struct {
		name string
		q    PlayersStatisticsQuery
		want string
	}{
		{"id+season", PlayersStatisticsQuery{ID: 99, Season: 2023}, "id=99&season=2023"},
		{"team+season", PlayersStatisticsQuery{Team: 12, Season: 2023}, "season=2023&team=12"},
		{"id+team+season", PlayersStatisticsQuery{ID: 99, Team: 12, Season: 2023}, "id=99&season=2023&team=12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := tt.q.params()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := params.Encode(); got != tt.want {
				t.Fatalf("params: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlayersStatisticsQuery_NoArguments(t *testing.T) {
	_, err := PlayersStatisticsQuery{}.params()
	wantInvalid(t, err, "Must provide at least one of: id, team, season")
}

func TestPlayersStatisticsQuery_IDWithTeamStillNeedsSeason(t *testing.T) {
	// team drags season in even when id is present.
	_, err := PlayersStatisticsQuery{ID: 99, Team: 12}.params()
	wantInvalid(t, err, "season must be provided if team is provided")
}

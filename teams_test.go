package nflapi

import (
	"testing"
)

func TestTeamsQuery_NoArguments(t *testing.T) {
	_, err := TeamsQuery{}.params()
	wantInvalid(t, err, "Must provide at least one of: id, league, season, name, code, search")
}

func TestTeamsQuery_LeagueSeasonMutuallyRequired(t *testing.T) {
	_, err := TeamsQuery{Season: 2023}.params()
	wantInvalid(t, err, "league must be provided if season is provided")

	_, err = TeamsQuery{League: LeagueNFL}.params()
	wantInvalid(t, err, "season must be provided if league is provided")

	params, err := TeamsQuery{League: LeagueNFL, Season: 2023}.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := params.Encode(); got != "league=1&season=2023" {
		t.Fatalf("params: got %q, want %q", got, "league=1&season=2023")
	}
}

func TestTeamsQuery_SingleFields(t *testing.T) {
	tests := []struct {
		name string
		q    TeamsQuery
		want string
	}{
		{"id int", TeamsQuery{ID: 1}, "id=1"},
		{"id string", TeamsQuery{ID: "1"}, "id=1"},
		{"name", TeamsQuery{Name: "Las Vegas Raiders"}, "name=Las+Vegas+Raiders"},
		{"code", TeamsQuery{Code: "LV"}, "code=LV"},
		{"search", TeamsQuery{Search: "raid"}, "search=raid"},
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

func TestTeamsQuery_ShortSearch(t *testing.T) {
	_, err := TeamsQuery{Search: "ab"}.params()
	wantInvalid(t, err, "search must be at least 3 characters")
}

func TestTeamsQuery_BadSeason(t *testing.T) {
	_, err := TeamsQuery{League: 1, Season: "2023-regular"}.params()
	wantInvalid(t, err, "season must be a valid year")
}

func TestTeamsQuery_Idempotent(t *testing.T) {
	q := TeamsQuery{League: LeagueNFL, Season: 2023, Code: "LV"}
	first, err := q.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := q.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Encode() != second.Encode() {
		t.Fatalf("params not idempotent: %q vs %q", first.Encode(), second.Encode())
	}
}

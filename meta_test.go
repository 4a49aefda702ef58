package nflapi

import "testing"

func TestLeaguesQuery_EmptyIsLegal(t *testing.T) {
	params, err := LeaguesQuery{}.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(params) != 0 {
		t.Fatalf("params: got %q, want empty", params.Encode())
	}
}

func TestLeaguesQuery_Fields(t *testing.T) {
	params, err := LeaguesQuery{ID: LeagueNFL, Season: 2023, Current: true}.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := params.Encode(); got != "current=true&id=1&season=2023" {
		t.Fatalf("params: got %q, want %q", got, "current=true&id=1&season=2023")
	}

	params, err = LeaguesQuery{Current: "false"}.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := params.Get("current"); got != "false" {
		t.Fatalf("current: got %q, want %q", got, "false")
	}
}

func TestLeaguesQuery_Rejections(t *testing.T) {
	_, err := LeaguesQuery{ID: "nfl"}.params()
	wantInvalid(t, err, "id must be an integer")

	_, err = LeaguesQuery{ID: 3}.params()
	wantInvalid(t, err, "id must be a valid league: 1 for NFL, 2 for NCAA")

	_, err = LeaguesQuery{Season: "2023-regular"}.params()
	wantInvalid(t, err, "season must be a valid year")

	_, err = LeaguesQuery{Current: "yes"}.params()
	wantInvalid(t, err, "current must be a boolean value")
}

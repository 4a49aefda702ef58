package nflapi

import "testing"

func TestInjuriesQuery_NoArguments(t *testing.T) {
	_, err := InjuriesQuery{}.params()
	wantInvalid(t, err, "Must provide at least one of: player, team")
}

func TestInjuriesQuery_Fields(t *testing.T) {
	tests := []struct {
		name string
		q    InjuriesQuery
		want string
	}{
		{"player", InjuriesQuery{Player: 99}, "player=99"},
		{"team", InjuriesQuery{Team: "12"}, "team=12"},
		{"both", InjuriesQuery{Player: 99, Team: 12}, "player=99&team=12"},
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

func TestInjuriesQuery_BadInteger(t *testing.T) {
	_, err := InjuriesQuery{Player: "mahomes"}.params()
	wantInvalid(t, err, "player must be an integer")
}

package nflapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient points a client at a stub server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", &Options{BaseURL: srv.URL})
}

func TestClient_SuccessPassthrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/teams" {
			t.Fatalf("path: got %q, want %q", r.URL.Path, "/teams")
		}
		if got := r.URL.Query().Get("league"); got != "1" {
			t.Fatalf("league param: got %q, want %q", got, "1")
		}
		if got := r.URL.Query().Get("season"); got != "2023" {
			t.Fatalf("season param: got %q, want %q", got, "2023")
		}
		w.Write([]byte(`{"errors":[],"results":1,"response":[{"id":1,"name":"Las Vegas Raiders"}]}`))
	})

	resp, err := client.Teams(context.Background(), TeamsQuery{League: LeagueNFL, Season: 2023})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `[{"id":1,"name":"Las Vegas Raiders"}]`
	if string(resp) != want {
		t.Fatalf("response: got %s, want %s", resp, want)
	}
}

func TestClient_DefaultHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-rapidapi-host"); got != "v1.american-football.api-sports.io" {
			t.Fatalf("host header: got %q", got)
		}
		if got := r.Header.Get("x-rapidapi-key"); got != "test-key" {
			t.Fatalf("key header: got %q", got)
		}
		w.Write([]byte(`{"errors":[],"response":[]}`))
	})

	if _, err := client.Status(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_ExplicitHeadersReplaceDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-rapidapi-key"); got != "" {
			t.Fatalf("default key header should be absent, got %q", got)
		}
		if got := r.Header.Get("x-apisports-key"); got != "direct-key" {
			t.Fatalf("explicit header: got %q", got)
		}
		w.Write([]byte(`{"errors":[],"response":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := New("test-key", &Options{
		BaseURL: srv.URL,
		Headers: map[string]string{"x-apisports-key": "direct-key"},
	})
	if _, err := client.Status(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_RapidAPIHostHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-rapidapi-host"); got != "api-nfl-v1.p.rapidapi.com" {
			t.Fatalf("host header: got %q", got)
		}
		w.Write([]byte(`{"errors":[],"response":[]}`))
	}))
	t.Cleanup(srv.Close)

	client := New("test-key", &Options{BaseURL: srv.URL, UseRapidAPI: true})
	if _, err := client.Seasons(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_StatusClassification(t *testing.T) {
	tests := []struct {
		status int
		kind   ErrorKind
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrBadParameters},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusTeapot, ErrAPI},
	}
	for _, tt := range tests {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte(`{"errors":{"token":"Error/Missing application key."}}`))
		})

		_, err := client.Timezone(context.Background())
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: error type %T", tt.status, err)
		}
		if apiErr.Kind != tt.kind {
			t.Fatalf("status %d: kind got %v, want %v", tt.status, apiErr.Kind, tt.kind)
		}
		if apiErr.StatusCode != tt.status {
			t.Fatalf("status %d: StatusCode got %d", tt.status, apiErr.StatusCode)
		}
		if len(apiErr.APIErrors) == 0 {
			t.Fatalf("status %d: APIErrors not captured", tt.status)
		}
	}
}

func TestClient_InBodyErrors(t *testing.T) {
	bodies := []string{
		`{"errors":{"league":"The league field is required."},"response":[]}`,
		`{"errors":["something went wrong"],"response":[]}`,
	}
	for _, body := range bodies {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		_, err := client.Seasons(context.Background())
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("body %s: error type %T", body, err)
		}
		if apiErr.Kind != ErrAPI {
			t.Fatalf("body %s: kind got %v, want %v", body, apiErr.Kind, ErrAPI)
		}
	}
}

func TestClient_EmptyErrorsIsSuccess(t *testing.T) {
	for _, body := range []string{
		`{"errors":[],"response":[2021,2022,2023]}`,
		`{"errors":{},"response":[2021,2022,2023]}`,
		`{"response":[2021,2022,2023]}`,
	} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})

		resp, err := client.Seasons(context.Background())
		if err != nil {
			t.Fatalf("body %s: unexpected error %v", body, err)
		}
		if string(resp) != `[2021,2022,2023]` {
			t.Fatalf("body %s: response got %s", body, resp)
		}
	}
}

func TestClient_ValidationFailsBeforeTransport(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`{"errors":[],"response":[]}`))
	})

	_, err := client.Teams(context.Background(), TeamsQuery{})
	wantInvalid(t, err, "Must provide at least one of: id, league, season, name, code, search")
	if called {
		t.Fatal("transport reached despite validation failure")
	}
}

func TestHasErrors(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{``, false},
		{`null`, false},
		{`[]`, false},
		{`{}`, false},
		{`""`, false},
		{`0`, false},
		{`false`, false},
		{`["boom"]`, true},
		{`{"token":"bad"}`, true},
		{`"boom"`, true},
		{`1`, true},
		{`true`, true},
	}
	for _, tt := range tests {
		if got := hasErrors([]byte(tt.raw)); got != tt.want {
			t.Fatalf("hasErrors(%q): got %v, want %v", tt.raw, got, tt.want)
		}
	}
}

package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teamline/api"
	"teamline/models"
	"teamline/storage"
	"teamline/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixture wires a service against a canned HTTP handler.
func fixture(t *testing.T, mux *http.ServeMux) (*Service, *store.Store) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	creds := storage.NewMemory()
	client := api.New(srv.URL+"/api", 5*time.Second, creds, zap.NewNop().Sugar())
	st := store.New(creds)
	return New(st, client, zap.NewNop().Sugar()), st
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

const teamsBody = `{"count":2,"next":null,"previous":null,"results":[
	{"id":7,"name":"Eagles","memberships":[{"id":1,"user":{"id":1,"username":"alice"},"role":"athlete","joined_at":"2026-01-01T00:00:00Z"}]},
	{"id":9,"name":"Hawks","memberships":[{"id":2,"user":{"id":1,"username":"alice"},"role":"athlete","joined_at":"2026-01-01T00:00:00Z"}]}
]}`

func TestLoginUserEndToEndState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"token":"abc","user_id":1,"username":"alice"}`)
	})
	svc, st := fixture(t, mux)

	ok := svc.LoginUser(context.Background(), "alice", "pw")
	require.True(t, ok)

	auth := st.State().Auth
	require.True(t, auth.IsAuthenticated)
	require.Equal(t, "abc", auth.Token)
	require.Equal(t, &models.User{ID: 1, Username: "alice"}, auth.User)
	require.False(t, auth.Loading)
	require.Empty(t, auth.Error)
}

func TestLoginFailureSurfacesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		writeJSON(w, `{"detail":"Invalid credentials. Please try again."}`)
	})
	svc, st := fixture(t, mux)

	ok := svc.LoginUser(context.Background(), "alice", "wrong")
	require.False(t, ok)

	auth := st.State().Auth
	require.False(t, auth.IsAuthenticated)
	require.Equal(t, "Invalid credentials. Please try again.", auth.Error)
}

func TestFetchTeamsPartitionsByMembership(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/teams/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"count":2,"next":null,"previous":null,"results":[
			{"id":1,"name":"A","memberships":[{"id":1,"user":{"id":1,"username":"alice"},"role":"athlete","joined_at":"2026-01-01T00:00:00Z"}]},
			{"id":2,"name":"B","memberships":[{"id":2,"user":{"id":9,"username":"coach"},"role":"trainer","joined_at":"2026-01-01T00:00:00Z"}]}
		]}`)
	})
	svc, st := fixture(t, mux)

	svc.FetchAllTeamsAndUserMemberships(context.Background(), 1)

	teams := st.State().Teams
	require.Empty(t, teams.Error)
	require.Len(t, teams.Teams, 1)
	require.Equal(t, 1, teams.Teams[0].ID)
	require.Len(t, teams.TeamsToJoin, 1)
	require.Equal(t, 2, teams.TeamsToJoin[0].ID)

	// Partitions are disjoint by id.
	ids := map[int]bool{}
	for _, team := range teams.Teams {
		ids[team.ID] = true
	}
	for _, team := range teams.TeamsToJoin {
		require.False(t, ids[team.ID])
	}
}

func TestPostsFeedToleratesSingleTeamFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/teams/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, teamsBody)
	})
	mux.HandleFunc("GET /api/teams/7/posts/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, `{"detail":"boom"}`)
	})
	mux.HandleFunc("GET /api/teams/9/posts/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[
			{"id":1,"team":9,"title":"older","created_at":"2026-08-01T10:00:00Z"},
			{"id":2,"team":9,"title":"newer","created_at":"2026-08-02T10:00:00Z"}
		]`)
	})
	svc, st := fixture(t, mux)

	svc.FetchPostsFeed(context.Background(), 1)

	posts := st.State().Posts
	require.Empty(t, posts.Error)
	require.Len(t, posts.Feed, 2)
	for _, p := range posts.Feed {
		require.NotEqual(t, 7, p.Team)
		require.Equal(t, "Hawks", p.TeamName)
	}
	// Newest first.
	require.Equal(t, "newer", posts.Feed[0].Title)
	require.Equal(t, "older", posts.Feed[1].Title)
}

func TestPostsFeedFailsWhenTeamListFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/teams/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, `{"detail":"teams down"}`)
	})
	svc, st := fixture(t, mux)

	svc.FetchPostsFeed(context.Background(), 1)

	posts := st.State().Posts
	require.Equal(t, "teams down", posts.Error)
	require.Empty(t, posts.Feed)
}

func TestEventsFeedSortedAscendingByStart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/teams/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, teamsBody)
	})
	mux.HandleFunc("GET /api/teams/7/events/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[{"id":1,"team":7,"title":"later","start_time":"2026-09-20T18:00:00Z"}]`)
	})
	mux.HandleFunc("GET /api/teams/9/events/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[{"id":2,"team":9,"title":"sooner","start_time":"2026-09-10T18:00:00Z"}]`)
	})
	svc, st := fixture(t, mux)

	svc.FetchEventsFeed(context.Background(), 1)

	events := st.State().Events
	require.Empty(t, events.Error)
	require.Len(t, events.Feed, 2)
	require.Equal(t, "sooner", events.Feed[0].Title)
	require.Equal(t, "later", events.Feed[1].Title)
	require.Equal(t, "Eagles", events.Feed[1].TeamName)
}

func TestJoinTeamRefetchesAndDispatchesBoth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/teams/2/add-member/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, `{"id":11,"user":{"id":1,"username":"alice"},"role":"athlete","joined_at":"2026-08-30T00:00:00Z"}`)
	})
	mux.HandleFunc("GET /api/teams/2/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":2,"name":"Hawks","memberships":[{"id":10,"user":{"id":9,"username":"coach"},"role":"trainer","joined_at":"2026-01-01T00:00:00Z"}]}`)
	})
	svc, st := fixture(t, mux)
	st.Dispatch(store.Action{Type: store.FetchTeamsSuccess, Payload: store.TeamsPartition{
		TeamsToJoin: []models.Team{{ID: 2, Name: "Hawks"}},
	}})

	ok := svc.JoinTeam(context.Background(), 2, "alice", "athlete")
	require.True(t, ok)

	teams := st.State().Teams
	require.True(t, teams.JoinTeamSuccess)
	require.Empty(t, teams.TeamsToJoin)
	require.Len(t, teams.Teams, 1)
	require.Len(t, teams.Teams[0].Memberships, 2)
}

func TestCreateEventRejectedClientSideNeverDispatches(t *testing.T) {
	mux := http.NewServeMux() // no handlers: any request would 404 and fail the test state
	svc, st := fixture(t, mux)

	ok := svc.CreateTeamEvent(context.Background(), 1, api.CreateEventRequest{
		Title:     "Training",
		StartTime: time.Now().Add(-time.Hour),
	})
	require.False(t, ok)

	events := st.State().Events
	require.False(t, events.Loading)
	require.Empty(t, events.Error)
}

func TestValidateEvent(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	start := now.Add(time.Hour)
	endBefore := start.Add(-time.Minute)

	verrs := ValidateEvent(api.CreateEventRequest{}, now)
	require.Contains(t, verrs, "title")
	require.Contains(t, verrs, "start_time")

	verrs = ValidateEvent(api.CreateEventRequest{Title: "x", StartTime: now.Add(-time.Hour)}, now)
	require.Equal(t, "Start time cannot be in the past", verrs["start_time"])

	verrs = ValidateEvent(api.CreateEventRequest{Title: "x", StartTime: start, EndTime: &endBefore}, now)
	require.Equal(t, "End time must be after start time", verrs["end_time"])

	end := start.Add(time.Hour)
	verrs = ValidateEvent(api.CreateEventRequest{Title: "x", StartTime: start, EndTime: &end}, now)
	require.Empty(t, verrs)
}

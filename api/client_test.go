package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"teamline/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *storage.Memory) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	creds := storage.NewMemory()
	return New(srv.URL+"/api", 5*time.Second, creds, zap.NewNop().Sugar()), creds
}

func TestRequestCarriesJSONContentTypeAndToken(t *testing.T) {
	var got http.Header
	client, creds := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))
	require.NoError(t, creds.SetToken("abc"))

	_, err := client.Teams(context.Background())
	require.NoError(t, err)
	require.Equal(t, "application/json", got.Get("Content-Type"))
	require.Equal(t, "Token abc", got.Get("Authorization"))
}

func TestNoAuthorizationHeaderWithoutCredential(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`[]`))
	}))

	_, err := client.Teams(context.Background())
	require.NoError(t, err)
	require.Empty(t, got.Get("Authorization"))
}

func TestHeaderOverrideReplacesAndRemoves(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))

	// Multipart upload: the caller supplies its own content type.
	err := client.Do(context.Background(), http.MethodPost, "/upload/", strings.NewReader("data"),
		http.Header{"Content-Type": {"multipart/form-data; boundary=xyz"}}, nil)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data; boundary=xyz", got.Get("Content-Type"))

	// An empty override value drops the header entirely.
	err = client.Do(context.Background(), http.MethodPost, "/upload/", strings.NewReader("data"),
		http.Header{"Content-Type": {""}}, nil)
	require.NoError(t, err)
	require.Empty(t, got.Get("Content-Type"))
}

func TestErrorMessagePriority(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"structured detail", `{"detail":"Invalid credentials. Please try again."}`, "Invalid credentials. Please try again."},
		{"structured error field", `{"error":"nope"}`, "nope"},
		{"unstructured body", `service unavailable`, "service unavailable"},
		{"empty body", ``, "Something went wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tt.body))
			}))

			_, err := client.Teams(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, http.StatusBadRequest, apiErr.Status)
			require.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestListUnwrapsPaginationEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[{"id":3,"name":"Eagles"}]}`))
	}))

	teams, err := client.Teams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, 3, teams[0].ID)
	require.Equal(t, "Eagles", teams[0].Name)
}

func TestListAcceptsBareArray(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":7,"title":"Kickoff","team":2}]`))
	}))

	posts, err := client.TeamPosts(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, 7, posts[0].ID)
	require.Equal(t, 2, posts[0].Team)
}

func TestSingleAttemptNoRetry(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Teams(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, calls)
}

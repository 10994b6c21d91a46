// store/store.go - one state tree, synchronous dispatch
package store

import (
	"sync"

	"teamline/models"
	"teamline/storage"
)

// PlaceholderUsername is what the session shows when it was hydrated from a
// stored token without asking the server who the token belongs to.
const PlaceholderUsername = "Authenticated User"

// State is the full tree, one slice per reducer.
type State struct {
	Auth   AuthState
	Teams  TeamsState
	Posts  PostsState
	Events EventsState
}

// Store combines the four slice reducers and exposes synchronous dispatch.
// State updates are visible to readers as soon as Dispatch returns; reducers
// never interleave because dispatch holds the lock.
type Store struct {
	mu      sync.Mutex
	state   State
	creds   storage.Credentials
	subs    map[int]func()
	nextSub int
}

// New builds a store. When a previously persisted credential exists the
// session is eagerly marked pending then authenticated with a placeholder
// identity; the token is never verified against the server.
func New(creds storage.Credentials) *Store {
	s := &Store{
		state: State{Auth: initialAuthState(creds)},
		creds: creds,
		subs:  make(map[int]func()),
	}

	if token := creds.Token(); token != "" {
		s.Dispatch(Action{Type: AuthRequest})
		s.Dispatch(Action{Type: LoginSuccess, Payload: models.AuthPayload{
			Token:    token,
			Username: PlaceholderUsername,
		}})
	}
	return s
}

// Dispatch runs every slice reducer against the action and notifies
// subscribers before returning.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = State{
		Auth:   reduceAuth(s.state.Auth, a, s.creds),
		Teams:  reduceTeams(s.state.Teams, a),
		Posts:  reducePosts(s.state.Posts, a),
		Events: reduceEvents(s.state.Events, a),
	}
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// State returns a snapshot of the tree. Slices inside it are shared and must
// be treated as read-only.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every dispatch. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Select reads a value from the current tree through a selector function.
func Select[T any](s *Store, sel func(State) T) T {
	return sel(s.State())
}

// services/service.go - async orchestrators for auth and teams
package services

import (
	"context"

	"teamline/api"
	"teamline/models"
	"teamline/store"

	"go.uber.org/zap"
)

// Service sequences the request announcement, the remote call and the
// outcome announcement for every operation. Methods that back a form return
// true on success so callers can chain UI behavior (close a modal, navigate).
type Service struct {
	store *store.Store
	api   *api.Client
	log   *zap.SugaredLogger
}

func New(st *store.Store, client *api.Client, log *zap.SugaredLogger) *Service {
	return &Service{store: st, api: client, log: log}
}

func (s *Service) LoginUser(ctx context.Context, username, password string) bool {
	s.store.Dispatch(store.Action{Type: store.AuthRequest})
	payload, err := s.api.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.LoginFailure, Err: err.Error()})
		return false
	}
	s.store.Dispatch(store.Action{Type: store.LoginSuccess, Payload: payload})
	return true
}

func (s *Service) RegisterUser(ctx context.Context, req api.RegisterRequest) bool {
	s.store.Dispatch(store.Action{Type: store.AuthRequest})
	payload, err := s.api.Register(ctx, req)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.RegisterFailure, Err: err.Error()})
		return false
	}
	s.store.Dispatch(store.Action{Type: store.RegisterSuccess, Payload: payload})
	return true
}

// LogoutUser always clears the session; an API failure is logged and ignored.
func (s *Service) LogoutUser(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Errorw("logout API failed", "error", err)
	}
	s.store.Dispatch(store.Action{Type: store.LogoutSuccess})
}

// FetchAllTeamsAndUserMemberships fetches every team and splits the list into
// the two disjoint partitions: teams the current user belongs to and teams
// available to join.
func (s *Service) FetchAllTeamsAndUserMemberships(ctx context.Context, currentUserID int) {
	s.store.Dispatch(store.Action{Type: store.FetchTeamsRequest})
	allTeams, err := s.api.Teams(ctx)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.FetchTeamsFailure, Err: err.Error()})
		return
	}

	var member, joinable []models.Team
	for _, t := range allTeams {
		if t.HasMember(currentUserID) {
			member = append(member, t)
		} else {
			joinable = append(joinable, t)
		}
	}

	s.store.Dispatch(store.Action{
		Type:    store.FetchTeamsSuccess,
		Payload: store.TeamsPartition{Teams: member, TeamsToJoin: joinable},
	})
}

func (s *Service) FetchTeamDetail(ctx context.Context, teamID int) {
	s.store.Dispatch(store.Action{Type: store.FetchTeamDetailRequest})
	team, err := s.api.Team(ctx, teamID)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.FetchTeamDetailFailure, Err: err.Error()})
		return
	}
	s.store.Dispatch(store.Action{Type: store.FetchTeamDetailSuccess, Payload: team})
}

func (s *Service) CreateNewTeam(ctx context.Context, name, description string) bool {
	if verrs := ValidateTeam(name); len(verrs) > 0 {
		s.log.Infow("create team rejected client-side", "errors", verrs)
		return false
	}
	s.store.Dispatch(store.Action{Type: store.CreateTeamRequest})
	team, err := s.api.CreateTeam(ctx, api.CreateTeamRequest{Name: name, Description: description})
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.CreateTeamFailure, Err: err.Error()})
		return false
	}
	s.store.Dispatch(store.Action{Type: store.CreateTeamSuccess, Payload: team})
	return true
}

// JoinTeam adds username to the team, then re-fetches the team so the success
// payload carries the up-to-date record alongside the new membership.
func (s *Service) JoinTeam(ctx context.Context, teamID int, username, role string) bool {
	s.store.Dispatch(store.Action{Type: store.JoinTeamRequest})
	membership, err := s.api.AddMember(ctx, teamID, username, role)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.JoinTeamFailure, Err: err.Error()})
		return false
	}
	team, err := s.api.Team(ctx, teamID)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.JoinTeamFailure, Err: err.Error()})
		return false
	}
	// The refetched record already contains the new membership; the reducer
	// owns the append, so drop it here to keep the list duplicate-free.
	kept := team.Memberships[:0:0]
	for _, m := range team.Memberships {
		if m.ID != membership.ID {
			kept = append(kept, m)
		}
	}
	team.Memberships = kept
	s.store.Dispatch(store.Action{
		Type:    store.JoinTeamSuccess,
		Payload: store.JoinResult{Team: team, Membership: membership},
	})
	return true
}

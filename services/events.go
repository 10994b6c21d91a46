// services/events.go - event orchestrators
package services

import (
	"context"
	"sort"
	"time"

	"teamline/api"
	"teamline/models"
	"teamline/store"
)

// FetchEventsFeed mirrors the posts feed with the opposite sort: upcoming
// events first, ascending by start time.
func (s *Service) FetchEventsFeed(ctx context.Context, currentUserID int) {
	s.store.Dispatch(store.Action{Type: store.FetchEventsFeedRequest})
	allTeams, err := s.api.Teams(ctx)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.FetchEventsFeedFailure, Err: err.Error()})
		return
	}

	var feed []models.Event
	for _, team := range allTeams {
		if !team.HasMember(currentUserID) {
			continue
		}
		events, err := s.api.TeamEvents(ctx, team.ID)
		if err != nil {
			s.log.Errorw("failed to fetch events for team", "team_id", team.ID, "error", err)
			continue
		}
		for _, e := range events {
			e.TeamName = team.Name
			feed = append(feed, e)
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].StartTime.Before(feed[j].StartTime)
	})
	s.store.Dispatch(store.Action{Type: store.FetchEventsFeedSuccess, Payload: feed})
}

func (s *Service) FetchTeamEvents(ctx context.Context, teamID int) {
	s.store.Dispatch(store.Action{Type: store.FetchTeamEventsRequest})
	events, err := s.api.TeamEvents(ctx, teamID)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.FetchTeamEventsFailure, Err: err.Error()})
		return
	}
	s.store.Dispatch(store.Action{Type: store.FetchTeamEventsSuccess, Payload: events})
}

func (s *Service) CreateTeamEvent(ctx context.Context, teamID int, req api.CreateEventRequest) bool {
	if verrs := ValidateEvent(req, time.Now()); len(verrs) > 0 {
		s.log.Infow("create event rejected client-side", "errors", verrs)
		return false
	}
	s.store.Dispatch(store.Action{Type: store.CreateEventRequest})
	event, err := s.api.CreateEvent(ctx, teamID, req)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.CreateEventFailure, Err: err.Error()})
		return false
	}
	s.store.Dispatch(store.Action{Type: store.CreateEventSuccess, Payload: event})
	return true
}

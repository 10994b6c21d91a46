// store/events.go - events slice
package store

import "teamline/models"

// EventsState mirrors the posts slice without comments.
type EventsState struct {
	Feed               []models.Event
	TeamEvents         []models.Event
	Loading            bool
	Error              string
	CreateEventSuccess bool
}

func reduceEvents(state EventsState, a Action) EventsState {
	switch a.Type {
	case FetchEventsFeedRequest, FetchTeamEventsRequest, CreateEventRequest:
		state.Loading = true
		state.Error = ""
		state.CreateEventSuccess = false
		return state

	case FetchEventsFeedSuccess:
		events, ok := a.Payload.([]models.Event)
		if !ok {
			return state
		}
		state.Loading = false
		state.Feed = events
		return state

	case FetchTeamEventsSuccess:
		events, ok := a.Payload.([]models.Event)
		if !ok {
			return state
		}
		state.Loading = false
		state.TeamEvents = events
		return state

	case CreateEventSuccess:
		event, ok := a.Payload.(models.Event)
		if !ok {
			return state
		}
		state.Loading = false
		state.CreateEventSuccess = true
		state.TeamEvents = append(append([]models.Event{}, state.TeamEvents...), event)
		return state

	case FetchEventsFeedFailure, FetchTeamEventsFailure, CreateEventFailure:
		state.Loading = false
		state.Error = a.Err
		return state

	default:
		return state
	}
}

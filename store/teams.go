// store/teams.go - teams slice
package store

import "teamline/models"

// TeamsState holds the two local partitions of the server's team list:
// teams the current user belongs to and teams available to join. The
// partition is recomputed by the orchestrator on every fetch, never persisted.
type TeamsState struct {
	Teams             []models.Team
	TeamsToJoin       []models.Team
	TeamDetail        *models.Team
	Loading           bool
	Error             string
	CreateTeamSuccess bool
	JoinTeamSuccess   bool
}

func reduceTeams(state TeamsState, a Action) TeamsState {
	switch a.Type {
	case FetchTeamsRequest, FetchTeamDetailRequest, CreateTeamRequest, JoinTeamRequest:
		state.Loading = true
		state.Error = ""
		state.CreateTeamSuccess = false
		state.JoinTeamSuccess = false
		return state

	case FetchTeamsSuccess:
		partition, ok := a.Payload.(TeamsPartition)
		if !ok {
			return state
		}
		state.Loading = false
		state.Teams = partition.Teams
		state.TeamsToJoin = partition.TeamsToJoin
		return state

	case FetchTeamDetailSuccess:
		team, ok := a.Payload.(models.Team)
		if !ok {
			return state
		}
		state.Loading = false
		state.TeamDetail = &team
		return state

	case CreateTeamSuccess:
		team, ok := a.Payload.(models.Team)
		if !ok {
			return state
		}
		state.Loading = false
		state.CreateTeamSuccess = true
		state.Teams = append(append([]models.Team{}, state.Teams...), team)
		return state

	case JoinTeamSuccess:
		result, ok := a.Payload.(JoinResult)
		if !ok {
			return state
		}
		joined := result.Team
		joined.Memberships = append(append([]models.Membership{}, result.Team.Memberships...), result.Membership)

		remaining := make([]models.Team, 0, len(state.TeamsToJoin))
		for _, t := range state.TeamsToJoin {
			if t.ID != result.Team.ID {
				remaining = append(remaining, t)
			}
		}

		state.Loading = false
		state.JoinTeamSuccess = true
		state.TeamsToJoin = remaining
		state.Teams = append(append([]models.Team{}, state.Teams...), joined)
		return state

	case FetchTeamsFailure, FetchTeamDetailFailure, CreateTeamFailure, JoinTeamFailure:
		state.Loading = false
		state.Error = a.Err
		return state

	default:
		return state
	}
}

// store/auth.go - auth slice
package store

import (
	"teamline/models"
	"teamline/storage"
)

// AuthState is the session slice. IsAuthenticated is true iff Token is
// non-empty; the reducer maintains that invariant on every transition.
type AuthState struct {
	IsAuthenticated bool
	Token           string
	User            *models.User
	Loading         bool
	Error           string
}

func initialAuthState(creds storage.Credentials) AuthState {
	token := creds.Token()
	return AuthState{
		IsAuthenticated: token != "",
		Token:           token,
	}
}

// reduceAuth is pure except for the explicit credential-persistence call on
// login/register outcomes and logout.
func reduceAuth(state AuthState, a Action, creds storage.Credentials) AuthState {
	switch a.Type {
	case AuthRequest:
		state.Loading = true
		state.Error = ""
		return state

	case LoginSuccess, RegisterSuccess:
		payload, ok := a.Payload.(models.AuthPayload)
		if !ok {
			return state
		}
		_ = creds.SetToken(payload.Token)
		return AuthState{
			IsAuthenticated: true,
			Token:           payload.Token,
			User:            &models.User{ID: payload.UserID, Username: payload.Username},
		}

	case LoginFailure, RegisterFailure:
		_ = creds.SetToken("")
		return AuthState{Error: a.Err}

	case LogoutSuccess:
		_ = creds.Clear()
		return AuthState{}

	default:
		return state
	}
}

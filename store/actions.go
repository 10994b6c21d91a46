// store/actions.go - the closed action vocabulary
package store

import "teamline/models"

// ActionType names one event in the closed vocabulary. Every remote operation
// has a Request/Success/Failure triple; auth shares one request event across
// login and register, and logout only ever announces success.
type ActionType string

const (
	AuthRequest     ActionType = "AUTH_REQUEST"
	LoginSuccess    ActionType = "LOGIN_SUCCESS"
	LoginFailure    ActionType = "LOGIN_FAILURE"
	RegisterSuccess ActionType = "REGISTER_SUCCESS"
	RegisterFailure ActionType = "REGISTER_FAILURE"
	LogoutSuccess   ActionType = "LOGOUT_SUCCESS"

	FetchTeamsRequest      ActionType = "FETCH_TEAMS_REQUEST"
	FetchTeamsSuccess      ActionType = "FETCH_TEAMS_SUCCESS"
	FetchTeamsFailure      ActionType = "FETCH_TEAMS_FAILURE"
	FetchTeamDetailRequest ActionType = "FETCH_TEAM_DETAIL_REQUEST"
	FetchTeamDetailSuccess ActionType = "FETCH_TEAM_DETAIL_SUCCESS"
	FetchTeamDetailFailure ActionType = "FETCH_TEAM_DETAIL_FAILURE"
	CreateTeamRequest      ActionType = "CREATE_TEAM_REQUEST"
	CreateTeamSuccess      ActionType = "CREATE_TEAM_SUCCESS"
	CreateTeamFailure      ActionType = "CREATE_TEAM_FAILURE"
	JoinTeamRequest        ActionType = "JOIN_TEAM_REQUEST"
	JoinTeamSuccess        ActionType = "JOIN_TEAM_SUCCESS"
	JoinTeamFailure        ActionType = "JOIN_TEAM_FAILURE"

	FetchPostsFeedRequest  ActionType = "FETCH_POSTS_FEED_REQUEST"
	FetchPostsFeedSuccess  ActionType = "FETCH_POSTS_FEED_SUCCESS"
	FetchPostsFeedFailure  ActionType = "FETCH_POSTS_FEED_FAILURE"
	FetchTeamPostsRequest  ActionType = "FETCH_TEAM_POSTS_REQUEST"
	FetchTeamPostsSuccess  ActionType = "FETCH_TEAM_POSTS_SUCCESS"
	FetchTeamPostsFailure  ActionType = "FETCH_TEAM_POSTS_FAILURE"
	FetchPostDetailRequest ActionType = "FETCH_POST_DETAIL_REQUEST"
	FetchPostDetailSuccess ActionType = "FETCH_POST_DETAIL_SUCCESS"
	FetchPostDetailFailure ActionType = "FETCH_POST_DETAIL_FAILURE"
	AddCommentRequest      ActionType = "ADD_COMMENT_REQUEST"
	AddCommentSuccess      ActionType = "ADD_COMMENT_SUCCESS"
	AddCommentFailure      ActionType = "ADD_COMMENT_FAILURE"
	CreatePostRequest      ActionType = "CREATE_POST_REQUEST"
	CreatePostSuccess      ActionType = "CREATE_POST_SUCCESS"
	CreatePostFailure      ActionType = "CREATE_POST_FAILURE"

	FetchEventsFeedRequest ActionType = "FETCH_EVENTS_FEED_REQUEST"
	FetchEventsFeedSuccess ActionType = "FETCH_EVENTS_FEED_SUCCESS"
	FetchEventsFeedFailure ActionType = "FETCH_EVENTS_FEED_FAILURE"
	FetchTeamEventsRequest ActionType = "FETCH_TEAM_EVENTS_REQUEST"
	FetchTeamEventsSuccess ActionType = "FETCH_TEAM_EVENTS_SUCCESS"
	FetchTeamEventsFailure ActionType = "FETCH_TEAM_EVENTS_FAILURE"
	CreateEventRequest     ActionType = "CREATE_EVENT_REQUEST"
	CreateEventSuccess     ActionType = "CREATE_EVENT_SUCCESS"
	CreateEventFailure     ActionType = "CREATE_EVENT_FAILURE"
)

// Action is one dispatched event. Request actions carry no payload, Success
// actions carry the operation result, Failure actions carry Err.
type Action struct {
	Type    ActionType
	Payload any
	Err     string
}

// TeamsPartition is the FetchTeamsSuccess payload: the member / joinable
// split computed by the orchestrator.
type TeamsPartition struct {
	Teams       []models.Team
	TeamsToJoin []models.Team
}

// JoinResult is the JoinTeamSuccess payload.
type JoinResult struct {
	Team       models.Team
	Membership models.Membership
}

// PostDetail is the FetchPostDetailSuccess payload.
type PostDetail struct {
	Post     models.Post
	Comments []models.Comment
}

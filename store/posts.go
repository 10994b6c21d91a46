// store/posts.go - posts slice
package store

import "teamline/models"

// PostsState holds three independent projections: the cross-team feed, the
// per-team list and the detail record with its comments. They are not kept
// consistent with one another; only AddCommentSuccess patches the detail's
// cached count.
type PostsState struct {
	Feed              []models.Post
	TeamPosts         []models.Post
	PostDetail        *models.Post
	Comments          []models.Comment
	Loading           bool
	Error             string
	CreatePostSuccess bool
}

func reducePosts(state PostsState, a Action) PostsState {
	switch a.Type {
	case FetchPostsFeedRequest, FetchTeamPostsRequest, FetchPostDetailRequest,
		AddCommentRequest, CreatePostRequest:
		state.Loading = true
		state.Error = ""
		state.CreatePostSuccess = false
		return state

	case FetchPostsFeedSuccess:
		posts, ok := a.Payload.([]models.Post)
		if !ok {
			return state
		}
		state.Loading = false
		state.Feed = posts
		return state

	case FetchTeamPostsSuccess:
		posts, ok := a.Payload.([]models.Post)
		if !ok {
			return state
		}
		state.Loading = false
		state.TeamPosts = posts
		return state

	case FetchPostDetailSuccess:
		detail, ok := a.Payload.(PostDetail)
		if !ok {
			return state
		}
		post := detail.Post
		state.Loading = false
		state.PostDetail = &post
		state.Comments = detail.Comments
		return state

	case AddCommentSuccess:
		comment, ok := a.Payload.(models.Comment)
		if !ok {
			return state
		}
		// Patch the cached count only when the detail on screen is the
		// comment's parent post; no re-fetch.
		if state.PostDetail != nil && state.PostDetail.ID == comment.Post {
			patched := *state.PostDetail
			patched.CommentsCount++
			state.PostDetail = &patched
		}
		state.Loading = false
		state.Comments = append(append([]models.Comment{}, state.Comments...), comment)
		return state

	case CreatePostSuccess:
		post, ok := a.Payload.(models.Post)
		if !ok {
			return state
		}
		state.Loading = false
		state.CreatePostSuccess = true
		state.TeamPosts = append(append([]models.Post{}, state.TeamPosts...), post)
		return state

	case FetchPostsFeedFailure, FetchTeamPostsFailure, FetchPostDetailFailure,
		AddCommentFailure, CreatePostFailure:
		state.Loading = false
		state.Error = a.Err
		return state

	default:
		return state
	}
}

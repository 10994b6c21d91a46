// services/posts.go - post orchestrators, including the cross-team feed
package services

import (
	"context"
	"sort"

	"teamline/api"
	"teamline/models"
	"teamline/store"
)

// FetchPostsFeed aggregates posts from every team the current user belongs
// to. The initial team-list call failing fails the feed; a single team's
// post fetch failing is logged and that team is skipped. The aggregate is
// sorted by creation time, newest first.
func (s *Service) FetchPostsFeed(ctx context.Context, currentUserID int) {
	s.store.Dispatch(store.Action{Type: store.FetchPostsFeedRequest})
	allTeams, err := s.api.Teams(ctx)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.FetchPostsFeedFailure, Err: err.Error()})
		return
	}

	var feed []models.Post
	for _, team := range allTeams {
		if !team.HasMember(currentUserID) {
			continue
		}
		posts, err := s.api.TeamPosts(ctx, team.ID)
		if err != nil {
			s.log.Errorw("failed to fetch posts for team", "team_id", team.ID, "error", err)
			continue
		}
		for _, p := range posts {
			p.TeamName = team.Name
			feed = append(feed, p)
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	s.store.Dispatch(store.Action{Type: store.FetchPostsFeedSuccess, Payload: feed})
}

func (s *Service) FetchTeamPosts(ctx context.Context, teamID int) {
	s.store.Dispatch(store.Action{Type: store.FetchTeamPostsRequest})
	posts, err := s.api.TeamPosts(ctx, teamID)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.FetchTeamPostsFailure, Err: err.Error()})
		return
	}
	s.store.Dispatch(store.Action{Type: store.FetchTeamPostsSuccess, Payload: posts})
}

func (s *Service) FetchPostDetail(ctx context.Context, teamID, postID int) {
	s.store.Dispatch(store.Action{Type: store.FetchPostDetailRequest})
	post, err := s.api.Post(ctx, teamID, postID)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.FetchPostDetailFailure, Err: err.Error()})
		return
	}
	comments := post.Comments
	if comments == nil {
		comments = []models.Comment{}
	}
	s.store.Dispatch(store.Action{
		Type:    store.FetchPostDetailSuccess,
		Payload: store.PostDetail{Post: post, Comments: comments},
	})
}

func (s *Service) AddComment(ctx context.Context, teamID, postID int, content string) bool {
	if verrs := ValidateComment(content); len(verrs) > 0 {
		s.log.Infow("comment rejected client-side", "errors", verrs)
		return false
	}
	s.store.Dispatch(store.Action{Type: store.AddCommentRequest})
	comment, err := s.api.AddComment(ctx, teamID, postID, content)
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.AddCommentFailure, Err: err.Error()})
		return false
	}
	s.store.Dispatch(store.Action{Type: store.AddCommentSuccess, Payload: comment})
	return true
}

func (s *Service) CreateTeamPost(ctx context.Context, teamID int, title, content string) bool {
	if verrs := ValidatePost(title, content); len(verrs) > 0 {
		s.log.Infow("create post rejected client-side", "errors", verrs)
		return false
	}
	s.store.Dispatch(store.Action{Type: store.CreatePostRequest})
	post, err := s.api.CreatePost(ctx, teamID, api.CreatePostRequest{Title: title, Content: content})
	if err != nil {
		s.store.Dispatch(store.Action{Type: store.CreatePostFailure, Err: err.Error()})
		return false
	}
	s.store.Dispatch(store.Action{Type: store.CreatePostSuccess, Payload: post})
	return true
}

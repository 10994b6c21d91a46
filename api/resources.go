// api/resources.go - typed wrappers over the REST endpoints
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"teamline/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Location    string     `json:"location,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (models.AuthPayload, error) {
	var out models.AuthPayload
	err := c.doJSON(ctx, http.MethodPost, "/auth/register/", req, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (models.AuthPayload, error) {
	var out models.AuthPayload
	err := c.doJSON(ctx, http.MethodPost, "/auth/login/", req, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout/", nil, nil)
}

func (c *Client) Teams(ctx context.Context) ([]models.Team, error) {
	return getList[models.Team](ctx, c, "/teams/")
}

func (c *Client) Team(ctx context.Context, teamID int) (models.Team, error) {
	var out models.Team
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%d/", teamID), nil, &out)
	return out, err
}

func (c *Client) CreateTeam(ctx context.Context, req CreateTeamRequest) (models.Team, error) {
	var out models.Team
	err := c.doJSON(ctx, http.MethodPost, "/teams/", req, &out)
	return out, err
}

// AddMember joins username to a team in the given role.
func (c *Client) AddMember(ctx context.Context, teamID int, username, role string) (models.Membership, error) {
	body := map[string]string{"username": username, "role": role}
	var out models.Membership
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/teams/%d/add-member/", teamID), body, &out)
	return out, err
}

func (c *Client) TeamPosts(ctx context.Context, teamID int) ([]models.Post, error) {
	return getList[models.Post](ctx, c, fmt.Sprintf("/teams/%d/posts/", teamID))
}

// Post returns the detail record, comments included.
func (c *Client) Post(ctx context.Context, teamID, postID int) (models.Post, error) {
	var out models.Post
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/teams/%d/posts/%d/", teamID, postID), nil, &out)
	return out, err
}

func (c *Client) CreatePost(ctx context.Context, teamID int, req CreatePostRequest) (models.Post, error) {
	var out models.Post
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/teams/%d/posts/", teamID), req, &out)
	return out, err
}

func (c *Client) AddComment(ctx context.Context, teamID, postID int, content string) (models.Comment, error) {
	body := map[string]string{"content": content}
	var out models.Comment
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/teams/%d/posts/%d/comments/", teamID, postID), body, &out)
	return out, err
}

func (c *Client) TeamEvents(ctx context.Context, teamID int) ([]models.Event, error) {
	return getList[models.Event](ctx, c, fmt.Sprintf("/teams/%d/events/", teamID))
}

func (c *Client) CreateEvent(ctx context.Context, teamID int, req CreateEventRequest) (models.Event, error) {
	var out models.Event
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/teams/%d/events/", teamID), req, &out)
	return out, err
}

// stubapi/posts.go - post and comment handlers
package stubapi

import (
	"sort"
	"time"

	"teamline/models"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type addCommentRequest struct {
	Content string `json:"content"`
}

// handleListPosts answers with a bare array; team lists use the envelope,
// post lists do not, and the client must cope with both.
func (s *Server) handleListPosts(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid team id")
	}

	s.mu.Lock()
	_, ok := s.teams[teamID]
	posts := make([]models.Post, 0)
	if ok {
		for _, p := range s.posts {
			if p.teamID == teamID {
				posts = append(posts, s.postJSON(p, false))
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		return detail(c, fiber.StatusNotFound, "Not found.")
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return c.JSON(posts)
}

func (s *Server) handleGetPost(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("postID")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid post id")
	}

	s.mu.Lock()
	p, ok := s.posts[postID]
	var out models.Post
	if ok {
		out = s.postJSON(p, true)
	}
	s.mu.Unlock()

	if !ok {
		return detail(c, fiber.StatusNotFound, "Not found.")
	}
	return c.JSON(out)
}

func (s *Server) handleCreatePost(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid team id")
	}
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" || req.Content == "" {
		return detail(c, fiber.StatusBadRequest, "Title and content are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return detail(c, fiber.StatusNotFound, "Not found.")
	}
	p := &post{
		id:        s.allocID(),
		teamID:    teamID,
		authorID:  callerID(c),
		title:     req.Title,
		content:   req.Content,
		createdAt: time.Now().UTC(),
	}
	s.posts[p.id] = p
	return c.Status(fiber.StatusCreated).JSON(s.postJSON(p, false))
}

func (s *Server) handleAddComment(c *fiber.Ctx) error {
	postID, err := c.ParamsInt("postID")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid post id")
	}
	var req addCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Content == "" {
		return detail(c, fiber.StatusBadRequest, "Comment cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return detail(c, fiber.StatusNotFound, "Not found.")
	}
	cm := &comment{
		id:        s.allocID(),
		postID:    postID,
		authorID:  callerID(c),
		content:   req.Content,
		createdAt: time.Now().UTC(),
	}
	s.comments[cm.id] = cm
	return c.Status(fiber.StatusCreated).JSON(s.commentJSON(cm))
}

// stubapi/server.go - in-process development server speaking the team API
//
// Not the production backend. It exists so the client, store and
// orchestrators can be exercised end-to-end without a real deployment:
// tests start it on an ephemeral port, and cmd/stubapi runs it locally.
package stubapi

import (
	"fmt"
	"net"
	"sort"
	"sync"
	"time"

	"teamline/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
)

type user struct {
	id           int
	username     string
	email        string
	firstName    string
	lastName     string
	passwordHash []byte
}

type team struct {
	id          int
	name        string
	description string
	trainerID   int
	createdAt   time.Time
	updatedAt   time.Time
}

type membership struct {
	id       int
	teamID   int
	userID   int
	role     string
	joinedAt time.Time
}

type post struct {
	id        int
	teamID    int
	authorID  int
	title     string
	content   string
	createdAt time.Time
}

type comment struct {
	id        int
	postID    int
	authorID  int
	content   string
	createdAt time.Time
}

type event struct {
	id          int
	teamID      int
	trainerID   int
	title       string
	description string
	startTime   time.Time
	endTime     *time.Time
	location    string
	createdAt   time.Time
}

// Server holds all state in memory behind one mutex.
type Server struct {
	app    *fiber.App
	secret []byte

	mu          sync.Mutex
	nextID      int
	users       map[int]*user
	teams       map[int]*team
	memberships map[int]*membership
	posts       map[int]*post
	comments    map[int]*comment
	events      map[int]*event
}

func New() *Server {
	s := &Server{
		secret:      []byte(uuid.NewString()),
		nextID:      1,
		users:       make(map[int]*user),
		teams:       make(map[int]*team),
		memberships: make(map[int]*membership),
		posts:       make(map[int]*post),
		comments:    make(map[int]*comment),
		events:      make(map[int]*event),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"detail": err.Error()})
		},
	})
	app.Use(recover.New())

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register/", s.handleRegister)
	authGroup.Post("/login/", s.handleLogin)
	authGroup.Post("/logout/", s.requireAuth, s.handleLogout)

	teamGroup := api.Group("/teams")
	teamGroup.Get("/", s.handleListTeams)
	teamGroup.Post("/", s.requireAuth, s.handleCreateTeam)
	teamGroup.Get("/:id/", s.handleGetTeam)
	teamGroup.Post("/:id/add-member/", s.requireAuth, s.handleAddMember)

	teamGroup.Get("/:id/posts/", s.handleListPosts)
	teamGroup.Post("/:id/posts/", s.requireAuth, s.handleCreatePost)
	teamGroup.Get("/:id/posts/:postID/", s.handleGetPost)
	teamGroup.Post("/:id/posts/:postID/comments/", s.requireAuth, s.handleAddComment)

	teamGroup.Get("/:id/events/", s.handleListEvents)
	teamGroup.Post("/:id/events/", s.requireAuth, s.handleCreateEvent)

	s.app = app
	return s
}

// Listen binds an ephemeral port and serves in the background, returning the
// base URL clients should use (including the /api prefix).
func (s *Server) Listen() (string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", err
	}
	go func() {
		_ = s.app.Listener(ln)
	}()
	return fmt.Sprintf("http://%s/api", ln.Addr().String()), nil
}

// Serve blocks on the given address (used by cmd/stubapi).
func (s *Server) Serve(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

func (s *Server) userJSON(u *user) models.User {
	return models.User{
		ID:        u.id,
		Username:  u.username,
		Email:     u.email,
		FirstName: u.firstName,
		LastName:  u.lastName,
	}
}

// teamJSON must be called with the lock held.
func (s *Server) teamJSON(t *team) models.Team {
	out := models.Team{
		ID:          t.id,
		Name:        t.name,
		Description: t.description,
		CreatedAt:   t.createdAt,
		UpdatedAt:   t.updatedAt,
		Memberships: []models.Membership{},
	}
	if trainer, ok := s.users[t.trainerID]; ok {
		u := s.userJSON(trainer)
		out.Trainer = &u
	}
	for _, m := range s.memberships {
		if m.teamID != t.id {
			continue
		}
		out.Memberships = append(out.Memberships, s.membershipJSON(m))
	}
	sort.Slice(out.Memberships, func(i, j int) bool {
		return out.Memberships[i].ID < out.Memberships[j].ID
	})
	return out
}

// membershipJSON must be called with the lock held.
func (s *Server) membershipJSON(m *membership) models.Membership {
	out := models.Membership{
		ID:       m.id,
		Role:     m.role,
		JoinedAt: m.joinedAt,
	}
	if u, ok := s.users[m.userID]; ok {
		out.User = s.userJSON(u)
	}
	return out
}

// postJSON must be called with the lock held. Comments are attached only for
// the detail endpoint.
func (s *Server) postJSON(p *post, withComments bool) models.Post {
	out := models.Post{
		ID:        p.id,
		Team:      p.teamID,
		Title:     p.title,
		Content:   p.content,
		CreatedAt: p.createdAt,
		UpdatedAt: p.createdAt,
	}
	if u, ok := s.users[p.authorID]; ok {
		out.Author = s.userJSON(u)
	}
	for _, cm := range s.comments {
		if cm.postID != p.id {
			continue
		}
		out.CommentsCount++
		if withComments {
			out.Comments = append(out.Comments, s.commentJSON(cm))
		}
	}
	sort.Slice(out.Comments, func(i, j int) bool {
		return out.Comments[i].ID < out.Comments[j].ID
	})
	if withComments && out.Comments == nil {
		out.Comments = []models.Comment{}
	}
	return out
}

// commentJSON must be called with the lock held.
func (s *Server) commentJSON(cm *comment) models.Comment {
	out := models.Comment{
		ID:        cm.id,
		Post:      cm.postID,
		Content:   cm.content,
		CreatedAt: cm.createdAt,
		UpdatedAt: cm.createdAt,
	}
	if u, ok := s.users[cm.authorID]; ok {
		out.Author = s.userJSON(u)
	}
	return out
}

// eventJSON must be called with the lock held.
func (s *Server) eventJSON(e *event) models.Event {
	out := models.Event{
		ID:          e.id,
		Team:        e.teamID,
		Title:       e.title,
		Description: e.description,
		StartTime:   e.startTime,
		EndTime:     e.endTime,
		Location:    e.location,
		CreatedAt:   e.createdAt,
		UpdatedAt:   e.createdAt,
	}
	if u, ok := s.users[e.trainerID]; ok {
		j := s.userJSON(u)
		out.Trainer = &j
	}
	return out
}

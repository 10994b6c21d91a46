// stubapi/teams.go - team resource handlers
package stubapi

import (
	"sort"
	"time"

	"teamline/models"

	"github.com/gofiber/fiber/v2"
)

type createTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type addMemberRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// handleListTeams answers with the pagination envelope so clients exercise
// the unwrap path.
func (s *Server) handleListTeams(c *fiber.Ctx) error {
	s.mu.Lock()
	teams := make([]models.Team, 0, len(s.teams))
	for _, t := range s.teams {
		teams = append(teams, s.teamJSON(t))
	}
	s.mu.Unlock()

	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return c.JSON(fiber.Map{
		"count":    len(teams),
		"next":     nil,
		"previous": nil,
		"results":  teams,
	})
}

func (s *Server) handleGetTeam(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid team id")
	}

	s.mu.Lock()
	t, ok := s.teams[id]
	var out models.Team
	if ok {
		out = s.teamJSON(t)
	}
	s.mu.Unlock()

	if !ok {
		return detail(c, fiber.StatusNotFound, "Not found.")
	}
	return c.JSON(out)
}

func (s *Server) handleCreateTeam(c *fiber.Ctx) error {
	var req createTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" {
		return detail(c, fiber.StatusBadRequest, "Team name is required")
	}

	now := time.Now().UTC()
	s.mu.Lock()
	t := &team{
		id:          s.allocID(),
		name:        req.Name,
		description: req.Description,
		trainerID:   callerID(c),
		createdAt:   now,
		updatedAt:   now,
	}
	s.teams[t.id] = t
	// The creator joins as trainer automatically.
	m := &membership{
		id:       s.allocID(),
		teamID:   t.id,
		userID:   t.trainerID,
		role:     models.RoleTrainer,
		joinedAt: now,
	}
	s.memberships[m.id] = m
	out := s.teamJSON(t)
	s.mu.Unlock()

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (s *Server) handleAddMember(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid team id")
	}
	var req addMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Role == "" {
		req.Role = models.RoleMember
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return detail(c, fiber.StatusNotFound, "Not found.")
	}
	var target *user
	for _, u := range s.users {
		if u.username == req.Username {
			target = u
			break
		}
	}
	if target == nil {
		return detail(c, fiber.StatusBadRequest, "No user with that username.")
	}
	for _, m := range s.memberships {
		if m.teamID == teamID && m.userID == target.id {
			return detail(c, fiber.StatusBadRequest, "User is already a member of this team.")
		}
	}

	m := &membership{
		id:       s.allocID(),
		teamID:   teamID,
		userID:   target.id,
		role:     req.Role,
		joinedAt: time.Now().UTC(),
	}
	s.memberships[m.id] = m
	return c.Status(fiber.StatusCreated).JSON(s.membershipJSON(m))
}

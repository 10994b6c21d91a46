// stubapi/events.go - event handlers
package stubapi

import (
	"sort"
	"time"

	"teamline/models"

	"github.com/gofiber/fiber/v2"
)

type createEventRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Location    string     `json:"location"`
}

func (s *Server) handleListEvents(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid team id")
	}

	s.mu.Lock()
	_, ok := s.teams[teamID]
	events := make([]models.Event, 0)
	if ok {
		for _, e := range s.events {
			if e.teamID == teamID {
				events = append(events, s.eventJSON(e))
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		return detail(c, fiber.StatusNotFound, "Not found.")
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return c.JSON(events)
}

func (s *Server) handleCreateEvent(c *fiber.Ctx) error {
	teamID, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid team id")
	}
	var req createEventRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Title == "" || req.StartTime.IsZero() {
		return detail(c, fiber.StatusBadRequest, "Title and start time are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return detail(c, fiber.StatusNotFound, "Not found.")
	}
	e := &event{
		id:          s.allocID(),
		teamID:      teamID,
		trainerID:   callerID(c),
		title:       req.Title,
		description: req.Description,
		startTime:   req.StartTime,
		endTime:     req.EndTime,
		location:    req.Location,
		createdAt:   time.Now().UTC(),
	}
	s.events[e.id] = e
	return c.Status(fiber.StatusCreated).JSON(s.eventJSON(e))
}

// models/event.go
package models

import "time"

// Event is a calendar entry (training, game, meeting) belonging to one team.
type Event struct {
	ID          int        `json:"id"`
	Team        int        `json:"team"`
	Trainer     *User      `json:"trainer,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Location    string     `json:"location,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// TeamName is filled in client-side when building the cross-team feed.
	TeamName string `json:"team_name,omitempty"`
}

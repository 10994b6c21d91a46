// models/team.go
package models

import "time"

// Membership roles as the server reports them.
const (
	RoleTrainer = "trainer"
	RoleAthlete = "athlete"
	RoleMember  = "member"
)

type Membership struct {
	ID          int       `json:"id"`
	User        User      `json:"user"`
	Role        string    `json:"role"`
	RoleDisplay string    `json:"role_display,omitempty"`
	JoinedAt    time.Time `json:"joined_at"`
}

// Team is a read-only projection of the server resource. The client never
// mutates it in place; reducers replace whole values.
type Team struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Trainer     *User        `json:"trainer,omitempty"`
	Memberships []Membership `json:"memberships"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// HasMember reports whether userID appears in the team's membership list.
func (t Team) HasMember(userID int) bool {
	for _, m := range t.Memberships {
		if m.User.ID == userID {
			return true
		}
	}
	return false
}

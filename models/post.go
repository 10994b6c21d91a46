// models/post.go
package models

import "time"

type Post struct {
	ID            int       `json:"id"`
	Team          int       `json:"team"`
	Author        User      `json:"author"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	CommentsCount int       `json:"comments_count"`
	Comments      []Comment `json:"comments,omitempty"`

	// TeamName is filled in client-side when building the cross-team feed.
	TeamName string `json:"team_name,omitempty"`
}

type Comment struct {
	ID        int       `json:"id"`
	Post      int       `json:"post"`
	Author    User      `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

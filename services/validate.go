// services/validate.go - client-side form validation
package services

import (
	"time"

	"teamline/api"
)

// ValidationErrors maps a field name to a human-readable problem. Validation
// failures never reach the server or the store; callers render them as
// per-field UI errors.
type ValidationErrors map[string]string

func ValidateTeam(name string) ValidationErrors {
	verrs := ValidationErrors{}
	if name == "" {
		verrs["name"] = "Team name is required"
	}
	return verrs
}

func ValidatePost(title, content string) ValidationErrors {
	verrs := ValidationErrors{}
	if title == "" {
		verrs["title"] = "Title is required"
	}
	if content == "" {
		verrs["content"] = "Content is required"
	}
	return verrs
}

func ValidateComment(content string) ValidationErrors {
	verrs := ValidationErrors{}
	if content == "" {
		verrs["content"] = "Comment cannot be empty"
	}
	return verrs
}

func ValidateEvent(req api.CreateEventRequest, now time.Time) ValidationErrors {
	verrs := ValidationErrors{}
	if req.Title == "" {
		verrs["title"] = "Title is required"
	}
	if req.StartTime.IsZero() {
		verrs["start_time"] = "Start time is required"
	} else if req.StartTime.Before(now) {
		verrs["start_time"] = "Start time cannot be in the past"
	}
	if req.EndTime != nil && !req.StartTime.IsZero() && !req.EndTime.After(req.StartTime) {
		verrs["end_time"] = "End time must be after start time"
	}
	return verrs
}

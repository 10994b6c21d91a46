// models/pagination.go
package models

import "encoding/json"

// Paginated is the optional envelope the server wraps list responses in.
// Not every list endpoint uses it; the API client strips it when present.
type Paginated struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  json.RawMessage `json:"results"`
}

// storage/credentials.go - persistent client-side key-value storage
package storage

// Fixed keys, matching what the browser client kept in local storage.
const (
	KeyAuthToken = "authToken"
	KeyUsername  = "username"
	KeyUserID    = "userId"
)

// Credentials is the credential side channel shared by the API client and the
// auth reducer. Implementations must be safe for concurrent use.
type Credentials interface {
	Token() string
	SetToken(token string) error
	// Clear wipes everything that was persisted, not just the token.
	Clear() error
}

package models

// LoginEvent is the audit record published for every login attempt.
type LoginEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Email     string `json:"email"`     // Email the attempt was made for
	Success   bool   `json:"success"`   // Whether the attempt succeeded
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the attempt
}

package models

// LoginRequest represents the JSON body for user login.
// Both fields are optional; empty fields are omitted from the
// serialized body, never emitted as null.
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// example: john@example.com
	Email string `json:"email,omitempty"`

	// Password
	// example: secret123
	Password string `json:"password,omitempty"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// example: Invalid email or password
	Error string `json:"error"`
}

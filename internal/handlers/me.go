package handlers

import (
	"encoding/json"
	"net/http"

	"authflow/internal/middlewares"
)

// MeResponse represents the authenticated user returned by /me
// swagger:model MeResponse
type MeResponse struct {
	// User ID from the validated token
	// example: 4f27a1b5-8f41-4f3e-9d3e-6b9f5a1c2d3e
	UserID string `json:"user_id"`

	// Email from the validated token
	// example: alice@example.com
	Email string `json:"email"`
}

// NewMeHandler returns an HTTP handler that echoes the authenticated user.
// @Summary Current user
// @Description Returns the user ID and email carried by the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MeResponse "Authenticated user"
// @Failure 401 "Missing or invalid token"
// @Router /me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		email, _ := middlewares.GetEmailFromContext(r.Context())

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			UserID: userID.String(),
			Email:  email,
		})
	}
}

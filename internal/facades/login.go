package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"authflow/internal/models"

	"go.uber.org/zap"
)

// ErrMissingToken is returned when a completed login exchange carries a
// payload without a string token field.
var ErrMissingToken = errors.New("login response has no token")

// Transporter is the single-call HTTP primitive the facade is bound to.
type Transporter interface {
	Send(ctx context.Context, url, method string, headers map[string]string, body map[string]any) ([]byte, error)
}

// LoginHTTPFacade binds a Transporter to one fixed login endpoint and turns
// raw payloads into typed results. It issues exactly one transport call per
// invocation; there is no retry and no caching.
type LoginHTTPFacade struct {
	transport Transporter
	url       string
	log       *zap.SugaredLogger
}

// NewLoginHTTPFacade creates a facade for the given login endpoint URL.
func NewLoginHTTPFacade(transport Transporter, url string, log *zap.SugaredLogger) *LoginHTTPFacade {
	return &LoginHTTPFacade{
		transport: transport,
		url:       url,
		log:       log,
	}
}

// SubmitLogin posts the credentials and decodes the response payload.
// Transport errors are forwarded unchanged. Payloads that are not JSON or do
// not carry a string token produce a decode-specific error on the same
// channel.
func (f *LoginHTTPFacade) SubmitLogin(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	body := make(map[string]any)
	if req.Email != "" {
		body["email"] = req.Email
	}
	if req.Password != "" {
		body["password"] = req.Password
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}

	payload, err := f.transport.Send(ctx, f.url, http.MethodPost, headers, body)
	if err != nil {
		f.log.Errorw("login request failed", "error", err)
		return nil, err
	}

	var decoded struct {
		Token *string `json:"token"`
	}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		f.log.Errorw("failed to decode login response", "error", err)
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if decoded.Token == nil {
		f.log.Errorw("login response has no token")
		return nil, ErrMissingToken
	}

	return &models.LoginResponse{Token: *decoded.Token}, nil
}

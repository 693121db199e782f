package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidURL is returned before any network I/O when the request
// target cannot be parsed.
var ErrInvalidURL = errors.New("Invalid URL")

// Client performs a single HTTP exchange per Send call. No state is kept
// between calls; the underlying http.Client is shared only so that its
// configuration (timeout, transport) applies consistently.
type Client struct {
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// New creates a Client. A nil httpClient falls back to a default client
// with a 30 second timeout.
func New(httpClient *http.Client, log *zap.SugaredLogger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		log:        log,
	}
}

// Send issues exactly one request and classifies the outcome. Any completed
// exchange counts as success and yields the raw response payload; HTTP status
// codes are not interpreted here. Transport-level failures (DNS, timeout,
// connection refused) are returned as errors carrying the transport
// diagnostic. The body map is serialized as JSON only when non-nil.
func (c *Client) Send(ctx context.Context, rawURL, method string, headers map[string]string, body map[string]any) ([]byte, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		c.log.Errorw("rejected request target", "url", rawURL)
		return nil, ErrInvalidURL
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()

	c.log.Infow("request",
		"request_id", reqID,
		"method", method,
		"url", u.String(),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorw("request failed", "request_id", reqID, "error", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Errorw("failed to read response body", "request_id", reqID, "error", err)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.Infow("response",
		"request_id", reqID,
		"status", resp.StatusCode,
		"response_size", strconv.Itoa(len(payload))+"B",
		"duration", time.Since(start),
	)

	return payload, nil
}

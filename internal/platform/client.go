// filepath: internal/platform/client.go
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"contactgate/internal/logging"
)

// commandEndpoint is the platform's command submission path, relative to
// the configured base URL.
const commandEndpoint = "/v1/commands"

// Client submits commands to the messaging platform. The credential is the
// caller's full Authorization header value and is forwarded opaquely; the
// platform performs the actual authentication.
type Client interface {
	Submit(ctx context.Context, credential string, cmd Command) (*Response, error)
}

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to the platform over HTTP. A zero Timeout leaves the
// call unbounded; cancellation then comes only from the request context.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a platform client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Submit sends a single command and decodes the platform's reply envelope.
// No retries are performed; a failed call is reported immediately.
func (c *HTTPClient) Submit(ctx context.Context, credential string, cmd Command) (*Response, error) {
	body, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to encode command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+commandEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build platform request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", credential)

	logging.Log.Debugf("Submit: Sending '%s' command for path '%s'", cmd.Method, cmd.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("platform call failed: %w", err)
	}
	defer resp.Body.Close()

	// The platform reports command-level failures inside the envelope, so
	// anything but 2xx means the envelope itself was rejected.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &Error{Reason: fmt.Sprintf("unexpected platform status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))}
	}

	var envelope Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &Error{Reason: fmt.Sprintf("undecodable platform response: %v", err)}
	}
	return &envelope, nil
}

// Package dispatch persists assembled envelopes to disk and submits them
// to the model service in dependency order.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds each submission request.
const DefaultTimeout = 30 * time.Second

// Client posts mutation envelopes to a single GraphQL endpoint.
type Client struct {
	HTTPClient *http.Client
	endpoint   string
	headers    map[string]string
}

// NewClient creates a client for the given endpoint. Extra headers (for
// example a bearer credential) are sent with every request.
func NewClient(endpoint string, headers map[string]string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		headers:    headers,
	}
}

// Response captures the outcome of one submission. A non-JSON body is
// kept verbatim alongside the HTTP status rather than treated as a parse
// failure.
type Response struct {
	Status int
	Body   string
	Errors []string
}

// OK reports whether the submission succeeded: a 2xx status and no error
// entries in the response body.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300 && len(r.Errors) == 0
}

// Submit posts one envelope as a JSON body and collects any error list
// the response carries. A transport-level failure returns an error; an
// HTTP- or GraphQL-level failure is reported through the Response.
func (c *Client) Submit(ctx context.Context, envelope any) (*Response, error) {
	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		Status: resp.StatusCode,
		Body:   string(respBody),
		Errors: extractErrors(respBody),
	}, nil
}

// extractErrors collects error messages from a GraphQL response body:
// the top-level errors array, plus any non-empty errors list nested under
// a data field (the mutations return service-side validation errors
// there). A non-JSON body yields no entries.
func extractErrors(body []byte) []string {
	var parsed struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
		Data map[string]struct {
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil
	}

	var msgs []string
	for _, e := range parsed.Errors {
		msgs = append(msgs, e.Message)
	}
	for op, d := range parsed.Data {
		for _, e := range d.Errors {
			msgs = append(msgs, fmt.Sprintf("%s: %s: %s", op, e.Field, e.Message))
		}
	}
	return msgs
}

// api/client.go - authenticated HTTP access to the team service
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"teamline/models"
	"teamline/storage"

	"go.uber.org/zap"
)

// DefaultBaseURL matches the development server the web client pointed at.
const DefaultBaseURL = "http://127.0.0.1:8000/api"

const genericErrMsg = "Something went wrong"

// APIError carries the server-side failure message for a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody is the structured error shape the server uses.
type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// Client issues single-attempt requests against the team service. No retry,
// no backoff; retrying is the caller's decision.
type Client struct {
	baseURL string
	http    *http.Client
	creds   storage.Credentials
	log     *zap.SugaredLogger
}

func New(baseURL string, timeout time.Duration, creds storage.Credentials, log *zap.SugaredLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log,
	}
}

// Credentials exposes the credential side channel so the store's auth reducer
// can persist and clear the token through the same handle.
func (c *Client) Credentials() storage.Credentials {
	return c.creds
}

// Do sends a request with an arbitrary body. Every request gets
// Content-Type: application/json and, when a credential is stored,
// Authorization: Token <value>; entries in override replace those defaults
// (an empty override value removes the header, e.g. for multipart uploads
// where the transport sets its own content type).
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, override http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	for key, vals := range override {
		req.Header.Del(key)
		for _, v := range vals {
			if v != "" {
				req.Header.Add(key, v)
			}
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorw("request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// doJSON marshals body (when non-nil) and decodes the JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(data)
	}
	return c.Do(ctx, method, path, rd, nil, out)
}

// errorMessage picks the best available failure text: the server's structured
// detail, then the raw body, then a generic fallback.
func errorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Detail != "" {
			return eb.Detail
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return genericErrMsg
}

// unwrapResults strips the optional pagination envelope from a list response.
func unwrapResults(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] == '[' {
		return raw
	}
	var env models.Paginated
	if err := json.Unmarshal(raw, &env); err == nil && env.Results != nil {
		return env.Results
	}
	return raw
}

// getList fetches a list endpoint and decodes it whether or not the server
// wrapped it in the pagination envelope.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(unwrapResults(raw), &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return items, nil
}

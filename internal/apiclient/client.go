// Package apiclient talks to the coaching backend's REST API.
//
// Every call that needs a logged-in user takes the *model.Session
// explicitly; the client itself holds no credentials.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/optifit/web/internal/model"
)

const (
	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 4 << 20
	maxMessageLen   = 200
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoSession       = errors.New("no session")
)

// Error is a non-2xx reply from the backend.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Unwrap exposes the sentinel errors matching the reply, so callers can use
// errors.Is(err, ErrNotFound) and friends.
func (e *Error) Unwrap() []error {
	var errs []error
	if strings.EqualFold(e.Message, "Profile not found") {
		errs = append(errs, ErrProfileNotFound)
	}
	switch e.Status {
	case http.StatusUnauthorized:
		errs = append(errs, ErrUnauthorized)
	case http.StatusNotFound:
		errs = append(errs, ErrNotFound)
	}
	return errs
}

// Message returns the backend's message for err, or "" when err did not
// come from the backend.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// do performs one request and returns the raw response body.
func (c *Client) do(ctx context.Context, sess *model.Session, method, path string, query url.Values, in any) (json.RawMessage, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp.StatusCode, data)
	}
	return data, nil
}

// authed is do for endpoints that require a session.
func (c *Client) authed(ctx context.Context, sess *model.Session, method, path string, query url.Values, in any) (json.RawMessage, error) {
	if sess == nil || sess.Token == "" {
		return nil, ErrNoSession
	}
	return c.do(ctx, sess, method, path, query, in)
}

func decodeError(status int, data []byte) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(data, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" && !json.Valid(data) {
		msg = strings.TrimSpace(string(data))
		msg = truncate(msg, maxMessageLen)
	}
	return &Error{Status: status, Message: msg}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// envelope returns data[key] when data is an object carrying key, otherwise
// data itself. The backend wraps some responses and not others.
func envelope(data json.RawMessage, key string) json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return data
	}
	if inner, ok := obj[key]; ok {
		return inner
	}
	return data
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decode unmarshals the enveloped value into out. A null or missing value
// leaves out untouched.
func decode(data json.RawMessage, key string, out any) error {
	inner := data
	if key != "" {
		inner = envelope(data, key)
	}
	if isNull(inner) {
		return nil
	}
	err := json.Unmarshal(inner, out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Package rest implements the service.Service interface over an HTTP+JSON
// collection resource: GET/POST on the base URL, PUT/DELETE on base/{id}.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"google.golang.org/api/googleapi"

	"todolist/internal/config"
	"todolist/internal/service"
)

const (
	// APITimeout is the default timeout for a single API call.
	APITimeout = 5 * time.Second

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 4 << 20

	// maxMessageLen caps the server message kept in a ServerError, in runes.
	maxMessageLen = 200
)

// Client implements service.Service against a remote task collection.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
	log     *slog.Logger
}

// New creates a client for the base URL held in cfg.
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	c, err := NewWithHTTPClient(cfg.APIURL, http.DefaultClient)
	if err != nil {
		return nil, err
	}
	if cfg.Timeout > 0 {
		c.timeout = cfg.Timeout
	}
	if logger != nil {
		c.log = logger
	}
	return c, nil
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		base:    base,
		http:    httpClient,
		timeout: APITimeout,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

func parseBase(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("api url not set")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid api url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	return u, nil
}

// ListTasks returns the whole collection in backend order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	body, err := c.do(ctx, "list tasks", http.MethodGet, c.collectionURL(), nil)
	if err != nil {
		return nil, err
	}
	tasks, err := decodeTasks(body)
	if err != nil {
		return nil, &service.ServerError{Op: "list tasks", Message: err.Error(), Err: service.ErrMalformed}
	}
	return tasks, nil
}

// CreateTask posts {text} and returns the task the backend stored.
func (c *Client) CreateTask(ctx context.Context, text string) (service.Task, error) {
	return c.writeTask(ctx, "create task", http.MethodPost, c.collectionURL(), text)
}

// UpdateTask puts {text} to base/{id} and returns the stored task.
func (c *Client) UpdateTask(ctx context.Context, id, text string) (service.Task, error) {
	if err := checkID(id); err != nil {
		return service.Task{}, err
	}
	return c.writeTask(ctx, "update task", http.MethodPut, c.itemURL(id), text)
}

// DeleteTask deletes base/{id}. Any 2xx status counts as success.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	_, err := c.do(ctx, "delete task", http.MethodDelete, c.itemURL(id), nil)
	return err
}

func (c *Client) writeTask(ctx context.Context, op, method, target, text string) (service.Task, error) {
	payload, err := json.Marshal(textBody{Text: text})
	if err != nil {
		return service.Task{}, err
	}
	body, err := c.do(ctx, op, method, target, payload)
	if err != nil {
		return service.Task{}, err
	}
	task, err := decodeTask(body)
	if err != nil {
		return service.Task{}, &service.ServerError{Op: op, Message: err.Error(), Err: service.ErrMalformed}
	}
	return task, nil
}

// do sends one request and returns the response body of a 2xx reply.
func (c *Client) do(ctx context.Context, op, method, target string, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, &service.NetworkError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "op", op, "method", method, "url", target, "error", err)
		return nil, &service.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	c.log.Debug("request", "op", op, "method", method, "url", target,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, wrapError(op, err)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &service.NetworkError{Op: op, Err: err}
	}
	return body, nil
}

func (c *Client) collectionURL() string {
	return c.base.String()
}

// The id is always one path segment, whatever characters it holds.
func (c *Client) itemURL(id string) string {
	seg := url.PathEscape(id)
	if id == "." || id == ".." {
		seg = strings.ReplaceAll(id, ".", "%2E")
	}
	u := *c.base
	u.Path = c.base.Path + "/" + id
	u.RawPath = c.base.EscapedPath() + "/" + seg
	return u.String()
}

func checkID(id string) error {
	if id == "" {
		return &service.ValidationError{Field: "id", Reason: "must not be empty"}
	}
	return nil
}

// wrapError turns a googleapi status error into a service.ServerError.
func wrapError(op string, err error) error {
	gerr, ok := err.(*googleapi.Error)
	if !ok {
		return &service.ServerError{Op: op, Message: err.Error(), Err: err}
	}
	msg := gerr.Message
	if msg == "" {
		msg = strings.TrimSpace(gerr.Body)
	}
	msg = truncate(msg, maxMessageLen)
	return &service.ServerError{Op: op, Status: gerr.Code, Message: msg, Err: err}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

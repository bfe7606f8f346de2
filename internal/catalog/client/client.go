// Package client is the HTTP client of the catalog API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/narwhalmedia/tracker/internal/catalog/domain"
	"github.com/narwhalmedia/tracker/pkg/errors"
)

// DefaultBaseURL is used when neither --api nor TRACKER_API_URL is set.
const DefaultBaseURL = "http://localhost:5000"

// Client talks to a catalog server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns every item, newest first.
func (c *Client) List(ctx context.Context) ([]domain.MediaItem, error) {
	var items []domain.MediaItem
	if err := c.do(ctx, http.MethodGet, "/api/media", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MediaItem{}
	}
	return items, nil
}

// Get returns one item.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (*domain.MediaItem, error) {
	var item domain.MediaItem
	if err := c.do(ctx, http.MethodGet, "/api/media/"+id.String(), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create stores a new item.
func (c *Client) Create(ctx context.Context, draft domain.Draft) (*domain.MediaItem, error) {
	var item domain.MediaItem
	if err := c.do(ctx, http.MethodPost, "/api/media", draft, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update replaces the editable fields of an item.
func (c *Client) Update(ctx context.Context, id uuid.UUID, draft domain.Draft) (*domain.MediaItem, error) {
	var item domain.MediaItem
	if err := c.do(ctx, http.MethodPut, "/api/media/"+id.String(), draft, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Patch changes only the fields set in patch.
func (c *Client) Patch(ctx context.Context, id uuid.UUID, patch domain.MediaPatch) (*domain.MediaItem, error) {
	var item domain.MediaItem
	if err := c.do(ctx, http.MethodPatch, "/api/media/"+id.String(), patch, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an item.
func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/media/"+id.String(), nil, nil)
}

// Search asks the server to look up metadata candidates.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	path := "/api/lookup?" + url.Values{"query": {query}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &candidates); err != nil {
		return nil, err
	}
	if candidates == nil {
		candidates = []domain.Candidate{}
	}
	return candidates, nil
}

type errorBody struct {
	Code    errors.ErrorType `json:"code"`
	Message string           `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.BadRequest(fmt.Sprintf("encoding request: %v", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.BadRequest(fmt.Sprintf("building request: %v", err))
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrorTypeUnavailable, "catalog server unreachable", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(errors.ErrorTypeUnavailable, "reading response", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(errors.ErrorTypeStore, "decoding response", err)
	}
	return nil
}

// decodeError rebuilds the server's error. Bodies that are not ours
// (proxies, rate limiter) are classified by status code.
func decodeError(status int, data []byte) error {
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil && eb.Code != "" {
		return errors.New(eb.Code, eb.Message)
	}

	msg := strings.TrimSpace(string(data))
	if msg == "" {
		msg = http.StatusText(status)
	}
	switch {
	case status == http.StatusNotFound:
		return errors.NotFound(msg)
	case status == http.StatusServiceUnavailable:
		return errors.Unavailable(msg)
	case status == http.StatusBadGateway:
		return errors.Lookup(msg, nil)
	case status < http.StatusInternalServerError:
		return errors.BadRequest(msg)
	default:
		return errors.Store(msg, nil)
	}
}

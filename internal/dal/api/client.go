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

	"github.com/spf13/viper"
)

// Client issues requests against the remote record store. One Client is
// shared by every per-resource handle.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// option is a function that configures the Client.
type option func(*Client)

// WithBaseURL overrides the store base URL from config.
func WithBaseURL(baseURL string) option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// MustNewClient creates a new store client from config.
func MustNewClient(opts ...option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(viper.GetString("store.base_url"), "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		panic("store.base_url is not configured")
	}

	return c
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to store failed: %w", err)
	}

	return resp, nil
}

// listEnvelope is the store's list response shape. Records stays raw so a
// missing or malformed field degrades to an empty list instead of an error.
type listEnvelope struct {
	Records json.RawMessage `json:"records"`
}

// writeEnvelope is the store's write response shape.
type writeEnvelope struct {
	Message string `json:"message"`
}

// Resource is a typed handle for one entity collection of the store.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource creates a handle for the collection served under path,
// e.g. "/clientes".
func NewResource[T any](client *Client, path string) *Resource[T] {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return &Resource[T]{client: client, path: path}
}

// List fetches the full collection. A non-success status or an unreadable
// body yields an empty slice together with the failure; an absent or
// malformed records field is an empty list, not an error.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	resp, err := r.client.do(ctx, http.MethodGet, r.path, nil)
	if err != nil {
		return []T{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return []T{}, &StatusError{Status: resp.StatusCode, Message: readMessage(resp.Body)}
	}

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return []T{}, fmt.Errorf("failed to decode list response: %w", err)
	}

	if len(envelope.Records) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(envelope.Records, &records); err != nil {
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}

	return records, nil
}

// Create submits a new draft. Any 2xx status counts as success; the store
// historically mixed 200 and 201 per entity. Returns the store message.
func (r *Resource[T]) Create(ctx context.Context, body map[string]any) (string, error) {
	return r.write(ctx, http.MethodPost, r.path, body)
}

// Update replaces the record identified by id with the draft.
func (r *Resource[T]) Update(ctx context.Context, id int64, body map[string]any) (string, error) {
	return r.write(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.path, id), body)
}

// Remove deletes the record identified by id.
func (r *Resource[T]) Remove(ctx context.Context, id int64) (string, error) {
	return r.write(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil)
}

func (r *Resource[T]) write(ctx context.Context, method, path string, body map[string]any) (string, error) {
	resp, err := r.client.do(ctx, method, path, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	message := readMessage(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{Status: resp.StatusCode, Message: message}
	}

	return message, nil
}

func readMessage(body io.Reader) string {
	var envelope writeEnvelope
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return ""
	}

	return envelope.Message
}

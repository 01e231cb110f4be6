package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/palmview/hotel-booking-web/internal/pkg/apperror"
)

// Client is the single HTTP access point to the reservation backend. It
// attaches the caller's bearer token to every outgoing request and maps
// non-2xx responses to the application error taxonomy. It never persists or
// clears tokens itself.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a backend client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// errorBody covers the two error shapes the backend uses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorBody) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// Get performs a GET request. query may be nil.
func (c *Client) Get(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, token, path, query, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, token, path, nil, body, out)
}

// Put performs a PUT request. body may be nil for bare state transitions.
func (c *Client) Put(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, token, path, nil, body, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, token, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, token, path, nil, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, http.MethodDelete, token, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, token, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.KindNetwork, 0, "could not reach the reservation service, please try again")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.Wrap(err, apperror.KindNetwork, 0, "could not read the reservation service response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		// A non-JSON error body falls through to the generic message.
		_ = json.Unmarshal(data, &eb)
		c.logger.Debug("backend returned an error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return apperror.FromStatus(resp.StatusCode, eb.text())
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return apperror.Wrap(err, apperror.KindServer, resp.StatusCode, "the reservation service returned an unexpected response")
	}
	return nil
}

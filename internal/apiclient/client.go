// Package apiclient is the HTTP boundary to the retailer's backend
// services. It issues JSON requests against a configurable base URL and
// hands the raw response body back to callers, which apply their own
// envelope normalization.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout bounds every outbound request. There is no user-triggered
// cancellation beyond the caller's context.
const DefaultTimeout = 30 * time.Second

// Client wraps the outbound HTTP client shared by all backend services.
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a client for the given backend base URL. A zero timeout falls
// back to DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// BaseURL returns the configured backend host.
func (c *Client) BaseURL() string { return c.baseURL }

// RequestOptions carries per-call overrides.
type RequestOptions struct {
	// Headers are added on top of the standard JSON headers, e.g. the
	// identity service's Authorization header.
	Headers map[string]string
	// RequireImage marks create operations that must carry an image URL:
	// when the body has none at all, the placeholder is substituted.
	RequireImage bool
}

// Do issues one request against the backend. A non-nil payload is encoded
// as JSON after image-URL preprocessing (see PrepareBody). The parsed body
// is returned as-is; HTTP error statuses surface as *HTTPError and
// transport failures as *NetworkError.
func (c *Client) Do(ctx context.Context, method, path string, payload any, opts *RequestOptions) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		requireImage := opts != nil && opts.RequireImage
		encoded, err := PrepareBody(payload, requireImage)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if opts != nil {
		for k, v := range opts.Headers {
			req.Header.Set(k, v)
		}
	}

	log.Debug().
		Str("method", method).
		Str("url", url).
		Msg("making HTTP request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().
			Str("method", method).
			Str("url", url).
			Err(err).
			Msg("HTTP request failed")
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	log.Debug().
		Str("method", method).
		Str("url", url).
		Int("status_code", resp.StatusCode).
		Int("body_length", len(respBody)).
		Msg("received HTTP response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().
			Str("method", method).
			Str("url", url).
			Int("status_code", resp.StatusCode).
			Msg("backend returned error status")
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return respBody, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, opts *RequestOptions) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, path, nil, opts)
}

// Post issues a POST request with a JSON payload.
func (c *Client) Post(ctx context.Context, path string, payload any, opts *RequestOptions) ([]byte, error) {
	return c.Do(ctx, http.MethodPost, path, payload, opts)
}

// Put issues a PUT request with a JSON payload.
func (c *Client) Put(ctx context.Context, path string, payload any, opts *RequestOptions) ([]byte, error) {
	return c.Do(ctx, http.MethodPut, path, payload, opts)
}

// Patch issues a PATCH request with a JSON payload.
func (c *Client) Patch(ctx context.Context, path string, payload any, opts *RequestOptions) ([]byte, error) {
	return c.Do(ctx, http.MethodPatch, path, payload, opts)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts *RequestOptions) ([]byte, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, opts)
}

// DecodeInto is a convenience for callers that expect a single known shape:
// it issues the request and unmarshals the body into out.
func (c *Client) DecodeInto(ctx context.Context, method, path string, payload any, opts *RequestOptions, out any) error {
	body, err := c.Do(ctx, method, path, payload, opts)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// PrepareBody encodes a request payload, normalizing any image-URL fields
// on JSON object bodies. thumbnailUrl is mirrored into thumbnail_url, both
// are coerced to absolute URLs, and when requireImage is set and no image
// URL is supplied at all the placeholder is substituted.
func PrepareBody(payload any, requireImage bool) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return raw, nil
	}

	changed := false
	setString := func(key, val string) {
		b, _ := json.Marshal(val)
		fields[key] = b
		changed = true
	}
	getString := func(key string) (string, bool) {
		raw, ok := fields[key]
		if !ok {
			return "", false
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}

	if v, ok := getString("thumbnailUrl"); ok && v != "" {
		setString("thumbnailUrl", FormatImageURL(v))
		if _, has := getString("thumbnail_url"); !has {
			setString("thumbnail_url", FormatImageURL(v))
		}
	}
	if v, ok := getString("thumbnail_url"); ok && v != "" {
		setString("thumbnail_url", FormatImageURL(v))
	}
	if v, ok := getString("imageUrl"); ok && v != "" {
		setString("imageUrl", FormatImageURL(v))
	}

	if requireImage {
		camel, _ := getString("thumbnailUrl")
		snake, _ := getString("thumbnail_url")
		if camel == "" && snake == "" {
			setString("thumbnail_url", PlaceholderImage)
		}
	}

	if !changed {
		return raw, nil
	}
	return json.Marshal(fields)
}

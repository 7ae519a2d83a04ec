// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the HTTP client for Google's Generative Language API.
//
// This file implements the client itself: configuration, the single
// generateContent operation, and the mapping from HTTP failures to the
// error kinds the rest of the application distinguishes.
package gemini

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Configuration constants for the Generative Language API.
const (
	// DefaultBaseURL is the base URL for the Generative Language API.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the model every session uses. Fixed at build time,
	// matching the single-model scope of the application.
	DefaultModel = "gemini-2.0-flash-lite"

	// DefaultTimeout is the timeout for generateContent requests. The
	// application imposes no timeout of its own beyond this client-level one.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// PERFORMANCE: Shared transport with connection pooling for all clients.
// SECURITY: TLS 1.2 minimum.
var sharedTransport = &http.Transport{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 10,
	IdleConnTimeout:     90 * time.Second,
	TLSHandshakeTimeout: 10 * time.Second,
	TLSClientConfig: &tls.Config{
		MinVersion: tls.VersionTLS12,
	},
}

// Error variables for common API failures.
var (
	// ErrNotConfigured indicates the API key is not set.
	ErrNotConfigured = errors.New("Google API key not configured")

	// ErrAuthFailed indicates the key was rejected (invalid, revoked, or
	// lacking permission).
	ErrAuthFailed = errors.New("authentication failed")

	// ErrQuotaExceeded indicates the free usage quota is exhausted for now.
	ErrQuotaExceeded = errors.New("usage quota exceeded")

	// ErrModelNotFound indicates the requested model does not exist.
	ErrModelNotFound = errors.New("model not found")

	// ErrEmptyResponse indicates an OK response with no usable candidate.
	ErrEmptyResponse = errors.New("empty response from service")
)

// APIError represents an error envelope returned by the API.
type APIError struct {
	Code    int    // HTTP-ish numeric code from the envelope
	Message string // human-readable message from the service
	Status  string // canonical RPC code name, e.g. "RESOURCE_EXHAUSTED"
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("Gemini error [%s] (HTTP %d): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("Gemini error (HTTP %d): %s", e.Code, e.Message)
}

// =============================================================================
// CLIENT
// =============================================================================

// Client communicates with the Generative Language API.
//
// A Client is safe for concurrent use once configured; the fluent With*
// setters are intended for construction time only.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a client with the given API key.
//
// If the key is empty the client is still created, but GenerateContent
// fails with ErrNotConfigured. No validation beyond non-empty is applied:
// whether a key is actually accepted is the service's call, discovered on
// the first request.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: sharedTransport,
		},
	}
}

// WithBaseURL sets a custom base URL for the API.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

// WithModel sets the model used for generateContent requests.
func (c *Client) WithModel(model string) *Client {
	if model != "" {
		c.model = model
	}
	return c
}

// WithTimeout sets the request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient = &http.Client{
		Timeout:   timeout,
		Transport: c.httpClient.Transport,
	}
	return c
}

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// Model returns the model used for requests.
func (c *Client) Model() string {
	return c.model
}

// IsConfigured returns true if the client has an API key.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// APIKeyMasked returns a masked form of the API key for display.
// SECURITY: Never exposes key fragments - fingerprint only.
func (c *Client) APIKeyMasked() string {
	if c.apiKey == "" {
		return "[not set]"
	}
	return fmt.Sprintf("[REDACTED, length=%d, fingerprint=%s]", len(c.apiKey), c.keyFingerprint())
}

// keyFingerprint returns a short SHA-256 fingerprint of the API key.
func (c *Client) keyFingerprint() string {
	if c.apiKey == "" {
		return "none"
	}
	h := sha256.Sum256([]byte(c.apiKey))
	return hex.EncodeToString(h[:4])
}

// =============================================================================
// GENERATE CONTENT
// =============================================================================

// GenerateContent sends the accumulated conversation and returns the reply.
//
// One call, one outcome: there is no retry loop. Failures are classified
// into the sentinel errors above or returned as *APIError.
func (c *Client) GenerateContent(ctx context.Context, contents []Content) (*GenerateContentResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	bodyBytes, err := json.Marshal(generateContentRequest{Contents: contents})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)

	// SECURITY: Clear the key header immediately after the request so the
	// request object can never leak it through logging.
	req.Header.Del("x-goog-api-key")

	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, handleErrorResponse(resp.StatusCode, body)
	}

	var genResp GenerateContentResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &genResp, nil
}

// setHeaders sets the required headers for API requests.
// SECURITY: The key goes in a header, never in the URL, so it cannot end up
// in proxy or server logs that record request paths.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "confide/"+clientVersion)
	req.Header.Set("x-goog-api-key", c.apiKey)
}

// clientVersion tags outgoing requests; kept in sync with the release.
const clientVersion = "0.1.0"

// readResponse reads the response body with a size limit.
// SECURITY: Response size limit prevents memory exhaustion.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// =============================================================================
// ERROR CLASSIFICATION
// =============================================================================

// handleErrorResponse converts HTTP error responses to Go errors.
//
// The envelope's canonical status string is the primary discriminator; the
// HTTP status code is the fallback. An invalid API key arrives as HTTP 400
// with reason API_KEY_INVALID, so that detail is checked explicitly.
func handleErrorResponse(statusCode int, body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		ge := &APIError{
			Code:    apiErr.Error.Code,
			Message: apiErr.Error.Message,
			Status:  apiErr.Error.Status,
		}
		if ge.Code == 0 {
			ge.Code = statusCode
		}

		switch apiErr.Error.Status {
		case "RESOURCE_EXHAUSTED":
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, ge.Message)
		case "UNAUTHENTICATED", "PERMISSION_DENIED":
			return fmt.Errorf("%w: %s", ErrAuthFailed, ge.Message)
		case "NOT_FOUND":
			return fmt.Errorf("%w: %s", ErrModelNotFound, ge.Message)
		}

		for _, d := range apiErr.Error.Details {
			if d.Reason == "API_KEY_INVALID" {
				return fmt.Errorf("%w: %s", ErrAuthFailed, ge.Message)
			}
		}

		switch statusCode {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, ge.Message)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrAuthFailed, ge.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrModelNotFound, ge.Message)
		}
		return ge
	}

	// Fallback for unparseable error responses
	switch statusCode {
	case http.StatusTooManyRequests:
		return ErrQuotaExceeded
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuthFailed
	case http.StatusNotFound:
		return ErrModelNotFound
	default:
		return &APIError{
			Code:    statusCode,
			Message: strings.TrimSpace(string(body)),
		}
	}
}

// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api implements the authenticated request gateway for the CollabNEX
// REST backend. Every outgoing call reads the current bearer token from the
// credential store, attaches it when present, and classifies the outcome
// into the error taxonomy in internal/apierr. The gateway never mutates
// session state itself; callers decide what a classification means.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"collabnex/cli/internal/apierr"
	"collabnex/cli/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// requestTimeout bounds every call; expiry classifies as NetworkUnreachable.
const requestTimeout = 15 * time.Second

// TokenSource supplies the current bearer token, empty when logged out.
type TokenSource interface {
	Token() string
}

// Client is the HTTP gateway to the CollabNEX backend.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	log     *zap.Logger
}

// New creates a gateway for the given base URL (origin plus /api prefix).
func New(baseURL string, tokens TokenSource, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
		tokens:  tokens,
		log:     log,
	}
}

// Call performs method path against the backend with an optional JSON body.
// On 2xx the decoded response is returned; any other outcome is a *apierr.E
// carrying the classification and, when the backend provided one, its
// human-readable message.
func (c *Client) Call(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, apierr.Wrap(apierr.Unknown, "encoding request", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, apierr.Wrap(apierr.Unknown, "building request", err)
	}
	req.Header.Set("Accept", "application/json, */*")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.String("error", logging.Mask(err.Error())))
		return nil, apierr.Wrap(apierr.NetworkUnreachable, "server not reachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apierr.Wrap(apierr.Unknown, "reading response", err)
	}

	c.log.Debug("request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", time.Since(start)))

	out := parseBody(raw)
	out.Status = resp.StatusCode

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return out, nil
	}

	kind := apierr.FromStatus(resp.StatusCode)
	msg := out.Message
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return out, &apierr.E{Kind: kind, Message: msg, Status: resp.StatusCode}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Call(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Call(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Call(ctx, http.MethodPut, path, body)
}

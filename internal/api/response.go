// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"encoding/json"
	"strings"
)

// Response is the decoded outcome of a gateway call. The backend wraps
// successful payloads in a {"data": ...} envelope; Body holds the unwrapped
// payload so callers decode exactly once, at this boundary.
type Response struct {
	Status  int
	Body    json.RawMessage
	Message string
}

// Decode unmarshals the response payload into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// envelope mirrors the backend's response wrapper. Not every endpoint uses
// it; older ones return the payload bare.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// parseBody unwraps the data envelope when present and extracts the
// human-readable message, tolerating bare and non-JSON bodies.
func parseBody(raw []byte) *Response {
	out := &Response{Body: raw}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		out.Body = nil
		return out
	}
	if !strings.HasPrefix(trimmed, "{") {
		// Plain-text error bodies become the message.
		out.Message = trimmed
		out.Body = nil
		return out
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return out
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		// Some endpoints double-wrap: {"data":{"data":{...}}}.
		var inner envelope
		if err := json.Unmarshal(env.Data, &inner); err == nil && len(inner.Data) > 0 && string(inner.Data) != "null" {
			out.Body = inner.Data
		} else {
			out.Body = env.Data
		}
	}
	switch {
	case env.Message != "":
		out.Message = env.Message
	case env.Error != "":
		out.Message = env.Error
	}
	return out
}

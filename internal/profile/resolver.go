// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package profile

import (
	"context"

	"collabnex/cli/internal/api"
)

// Paths for the profile endpoints.
const (
	mePath     = "/users/me/profile"
	updatePath = "/profile/me"
)

// Caller is the slice of the request gateway the resolver needs.
type Caller interface {
	Get(ctx context.Context, path string) (*api.Response, error)
	Put(ctx context.Context, path string, body any) (*api.Response, error)
}

// Resolver fetches the current user's profile and classifies it.
type Resolver struct {
	gw Caller
}

// NewResolver constructs a Resolver over the request gateway.
func NewResolver(gw Caller) *Resolver {
	return &Resolver{gw: gw}
}

// Resolve fetches the profile for the current token and classifies it.
// Any failure, including NotFound, resolves to Missing: an unresolvable
// profile is always routed into onboarding rather than the main app.
func (r *Resolver) Resolve(ctx context.Context) State {
	rec, err := r.Fetch(ctx)
	if err != nil {
		return Missing
	}
	return Classify(rec)
}

// Fetch retrieves the current user's profile record.
func (r *Resolver) Fetch(ctx context.Context) (*Record, error) {
	resp, err := r.gw.Get(ctx, mePath)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := resp.Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update writes the profile record and returns the freshly classified
// state, so callers can route to Home once onboarding completes.
func (r *Resolver) Update(ctx context.Context, rec *Record) (State, error) {
	if _, err := r.gw.Put(ctx, updatePath, rec); err != nil {
		return Unknown, err
	}
	return r.Resolve(ctx), nil
}

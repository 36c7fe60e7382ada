// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package artists is the client for artist discovery: directory listing
// and the domain, city and nearby filters.
package artists

import (
	"context"
	"net/url"

	"collabnex/cli/internal/api"
	"collabnex/cli/internal/apierr"
)

// Artist is a public artist card as the directory endpoints return it.
type Artist struct {
	UserID     int64  `json:"userId"`
	FullName   string `json:"fullName"`
	Domain     string `json:"domain"`
	Bio        string `json:"bio"`
	Profession string `json:"profession"`
	City       string `json:"city"`
	StateName  string `json:"state"`
	Country    string `json:"country"`
	Skills     string `json:"skills"`
	Instagram  string `json:"instagram"`
	Website    string `json:"website"`
}

// Caller is the slice of the gateway this client needs.
type Caller interface {
	Get(ctx context.Context, path string) (*api.Response, error)
}

// Service is the artist directory client.
type Service struct {
	gw Caller
}

// NewService constructs an artist directory client over the gateway.
func NewService(gw Caller) *Service {
	return &Service{gw: gw}
}

// All returns the full public artist directory.
func (s *Service) All(ctx context.Context) ([]Artist, error) {
	return s.list(ctx, "/profile")
}

// ByDomain returns artists in an artistic domain (music, painting, ...).
func (s *Service) ByDomain(ctx context.Context, domain string) ([]Artist, error) {
	return s.list(ctx, "/artists?domain="+url.QueryEscape(domain))
}

// ByCity returns artists located in a city.
func (s *Service) ByCity(ctx context.Context, city string) ([]Artist, error) {
	return s.list(ctx, "/artists?city="+url.QueryEscape(city))
}

// Nearby returns artists near the caller, as located by the backend from
// the caller's own profile city.
func (s *Service) Nearby(ctx context.Context) ([]Artist, error) {
	return s.list(ctx, "/profile/nearby")
}

func (s *Service) list(ctx context.Context, path string) ([]Artist, error) {
	resp, err := s.gw.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var out []Artist
	if err := resp.Decode(&out); err != nil {
		return nil, apierr.Wrap(apierr.Unknown, "decoding artists", err)
	}
	return out, nil
}

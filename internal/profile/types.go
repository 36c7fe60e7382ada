// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package profile models the user profile record and decides profile
// completion: whether a logged-in account still needs onboarding, picked
// the plain-user path, or is a fully set up artist.
package profile

import (
	"encoding/json"
	"strings"
)

// State classifies a profile for navigation purposes. It is recomputed from
// the backend on every login and only ever used to pick a navigation
// default, never for authorization.
type State int

const (
	Unknown State = iota
	Missing
	BasicUser
	ArtistComplete
)

func (s State) String() string {
	switch s {
	case Missing:
		return "missing"
	case BasicUser:
		return "user"
	case ArtistComplete:
		return "artist"
	default:
		return "unknown"
	}
}

// Record is the typed profile shape, decoded once at the gateway boundary.
type Record struct {
	FullName          string   `json:"fullName"`
	Domain            string   `json:"domain"`
	Bio               string   `json:"bio"`
	Profession        string   `json:"profession"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Country           string   `json:"country"`
	StateName         string   `json:"state"`
	City              string   `json:"city"`
	Skills            []string `json:"skills"`
	Linkedin          string   `json:"linkedin"`
	Instagram         string   `json:"instagram"`
	Website           string   `json:"website"`
}

// record is Record without custom unmarshalling, to avoid recursion.
type record Record

// UnmarshalJSON accepts both the structured profile object and the legacy
// variant where the whole record arrives as a JSON-encoded string. The
// string form is decoded here, once, so no caller ever sees it.
func (r *Record) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return json.Unmarshal([]byte(s), (*record)(r))
	}
	return json.Unmarshal(data, (*record)(r))
}

// Classify applies the ordered completion rules to a profile record:
// an explicit "user" domain always stays a plain user, a populated bio or
// any other non-empty domain makes a complete artist, anything else still
// needs onboarding. The domain check runs first so that a user who chose
// the plain-user path is never re-routed into artist onboarding when the
// backend later fills in defaults for other fields.
func Classify(rec *Record) State {
	if rec == nil {
		return Missing
	}
	domain := strings.ToLower(strings.TrimSpace(rec.Domain))
	if domain == "user" {
		return BasicUser
	}
	if strings.TrimSpace(rec.Bio) != "" {
		return ArtistComplete
	}
	if domain != "" {
		return ArtistComplete
	}
	return Missing
}

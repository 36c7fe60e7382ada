// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package artists

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"collabnex/cli/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, staticToken("tok"), nil)
}

func TestByDomain_EscapesQuery(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/artists", r.URL.Path)
		require.Equal(t, "street art", r.URL.Query().Get("domain"))
		w.Write([]byte(`{"data":[{"userId":2,"fullName":"Nila","domain":"street art","city":"Chennai"}]}`))
	}))

	got, err := svc.ByDomain(context.Background(), "street art")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Nila", got[0].FullName)
	assert.Equal(t, int64(2), got[0].UserID)
}

func TestByCity_UsesCityFilter(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Pune", r.URL.Query().Get("city"))
		w.Write([]byte(`{"data":[]}`))
	}))
	got, err := svc.ByCity(context.Background(), "Pune")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNearby_Path(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/profile/nearby", r.URL.Path)
		w.Write([]byte(`{"data":[{"userId":5,"fullName":"Dev"}]}`))
	}))
	got, err := svc.Nearby(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
}

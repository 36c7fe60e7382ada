// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"collabnex/cli/internal/api"
	"collabnex/cli/internal/apierr"

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

func TestCreate_ComposesPayload(t *testing.T) {
	var got map[string]any
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/events", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"eventId":7}}`))
	}))

	err := svc.Create(context.Background(), CreateInput{
		Title:       " Mural Jam ",
		Description: "Live wall painting",
		EventType:   "WORKSHOP",
		Location:    "Bengaluru",
		StartDate:   "15-10-2026",
		EndDate:     "16-10-2026",
		TicketPrice: "249.50",
		TotalSeats:  "40",
	})
	require.NoError(t, err)

	assert.Equal(t, "Mural Jam", got["title"])
	assert.Equal(t, "2026-10-15T00:00:00Z", got["startDatetime"])
	assert.Equal(t, "2026-10-16T00:00:00Z", got["endDatetime"])
	assert.Equal(t, 249.50, got["ticketPrice"])
	assert.Equal(t, "INR", got["currency"])
	assert.Equal(t, float64(40), got["totalSeats"])
	assert.Equal(t, float64(40), got["availableSeats"], "available seats start at total")
	assert.Equal(t, "PUBLISHED", got["status"])
}

func TestCreate_LocalValidation(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("local validation failure must not reach the network")
	}))

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"missing title", CreateInput{StartDate: "01-01-2027", EndDate: "02-01-2027"}},
		{"bad date", CreateInput{Title: "x", StartDate: "2027-01-01", EndDate: "02-01-2027"}},
		{"end before start", CreateInput{Title: "x", StartDate: "05-01-2027", EndDate: "01-01-2027"}},
		{"bad price", CreateInput{Title: "x", StartDate: "01-01-2027", EndDate: "02-01-2027", TicketPrice: "12.999"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(context.Background(), tc.in)
			assert.True(t, apierr.Is(err, apierr.InvalidInputLocal), "got %v", err)
		})
	}
}

func TestBook_SoldOutIsLocal(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("sold-out booking must not reach the network")
	}))
	err := svc.Book(context.Background(), &Event{ID: 3, AvailableSeats: 0})
	assert.True(t, apierr.Is(err, apierr.ValidationFailed))
}

func TestBook_PostsEventID(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/event-bookings", r.URL.Path)
		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(9), body["eventId"])
		w.Write([]byte(`{"data":{"bookingId":1}}`))
	}))
	require.NoError(t, svc.Book(context.Background(), &Event{ID: 9, AvailableSeats: 2}))
}

func TestReceivedBookings_FiltersByEvent(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/event-bookings/received", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"bookingId":1,"eventId":4,"userName":"Asha"},
			{"bookingId":2,"eventId":5,"userName":"Vikram"},
			{"bookingId":3,"eventId":4,"userName":"Meera"}
		]}`))
	}))

	got, err := svc.ReceivedBookings(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Asha", got[0].UserName)
	assert.Equal(t, "Meera", got[1].UserName)
}

func TestStats_SeatMath(t *testing.T) {
	ev := &Event{TotalSeats: 50, AvailableSeats: 37}
	bookings := make([]Booking, 13)
	sold, left, total := Stats(ev, bookings)
	assert.Equal(t, 13, sold)
	assert.Equal(t, 37, left)
	assert.Equal(t, 50, total, "total derives from left+sold, not the stored field")
}

func TestList_Decodes(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events", r.URL.Path)
		w.Write([]byte(`{"data":[{"eventId":1,"title":"Open Mic","availableSeats":12,"totalSeats":30}]}`))
	}))
	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Open Mic", got[0].Title)
	assert.Equal(t, "12/30 seats", SeatLine(&got[0]))
}

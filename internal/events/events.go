// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package events is the client for event listing, creation and seat booking.
// All calls go through the authenticated request gateway; error
// classifications are surfaced unchanged for the command layer to present.
package events

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"collabnex/cli/internal/api"
	"collabnex/cli/internal/apierr"
	"collabnex/cli/internal/validate"

	"github.com/go-playground/validator/v10"
)

// Event is an event record as the backend returns it.
type Event struct {
	ID             int64   `json:"eventId"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	EventType      string  `json:"eventType"`
	LocationText   string  `json:"locationText"`
	OnlineLink     string  `json:"onlineLink"`
	StartDatetime  string  `json:"startDatetime"`
	EndDatetime    string  `json:"endDatetime"`
	TicketPrice    float64 `json:"ticketPrice"`
	Currency       string  `json:"currency"`
	TotalSeats     int     `json:"totalSeats"`
	AvailableSeats int     `json:"availableSeats"`
	Status         string  `json:"status"`
}

// Booking is a received seat booking for one of the caller's events.
type Booking struct {
	BookingID int64  `json:"bookingId"`
	EventID   int64  `json:"eventId"`
	UserName  string `json:"userName"`
	BookedAt  string `json:"bookedAt"`
}

// CreateInput is the raw event form. Dates arrive as typed, DD-MM-YYYY.
type CreateInput struct {
	Title       string
	Description string
	EventType   string
	Location    string
	OnlineLink  string
	StartDate   string
	EndDate     string
	TicketPrice string
	TotalSeats  string
}

// createPayload is the wire shape for POST /events.
type createPayload struct {
	Title          string  `json:"title" validate:"required"`
	Description    string  `json:"description"`
	EventType      string  `json:"eventType"`
	LocationText   string  `json:"locationText"`
	OnlineLink     string  `json:"onlineLink,omitempty"`
	StartDatetime  string  `json:"startDatetime" validate:"required"`
	EndDatetime    string  `json:"endDatetime" validate:"required"`
	TicketPrice    float64 `json:"ticketPrice" validate:"gte=0"`
	Currency       string  `json:"currency"`
	TotalSeats     int     `json:"totalSeats" validate:"gte=0"`
	AvailableSeats int     `json:"availableSeats"`
	Status         string  `json:"status"`
}

// Caller is the slice of the gateway this client needs.
type Caller interface {
	Get(ctx context.Context, path string) (*api.Response, error)
	Post(ctx context.Context, path string, body any) (*api.Response, error)
}

// Service is the events API client.
type Service struct {
	gw       Caller
	validate *validator.Validate
}

// NewService constructs an events client over the gateway.
func NewService(gw Caller) *Service {
	return &Service{gw: gw, validate: validator.New()}
}

// List returns all published events.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.list(ctx, "/events")
}

// Mine returns the events the current artist created.
func (s *Service) Mine(ctx context.Context) ([]Event, error) {
	return s.list(ctx, "/events/my")
}

func (s *Service) list(ctx context.Context, path string) ([]Event, error) {
	resp, err := s.gw.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var out []Event
	if err := resp.Decode(&out); err != nil {
		return nil, apierr.Wrap(apierr.Unknown, "decoding events", err)
	}
	return out, nil
}

// Get returns one event by id.
func (s *Service) Get(ctx context.Context, id int64) (*Event, error) {
	resp, err := s.gw.Get(ctx, "/events/"+strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	var ev Event
	if err := resp.Decode(&ev); err != nil {
		return nil, apierr.Wrap(apierr.Unknown, "decoding event", err)
	}
	return &ev, nil
}

// Create validates the form, composes the wire payload and publishes the
// event. Available seats start equal to total seats.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	payload, err := buildCreatePayload(in)
	if err != nil {
		return err
	}
	if err := s.validate.Struct(payload); err != nil {
		return apierr.Wrap(apierr.InvalidInputLocal, "Please fill all required fields correctly", err)
	}
	_, err = s.gw.Post(ctx, "/events", payload)
	return err
}

// buildCreatePayload converts the raw form into the wire shape, enforcing
// the local field rules before anything leaves the machine.
func buildCreatePayload(in CreateInput) (*createPayload, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apierr.New(apierr.InvalidInputLocal, "Event title is required")
	}

	start, ok := validate.ParseEventDate(in.StartDate)
	if !ok {
		return nil, apierr.New(apierr.InvalidInputLocal, "Start date must be DD-MM-YYYY")
	}
	end, ok := validate.ParseEventDate(in.EndDate)
	if !ok {
		return nil, apierr.New(apierr.InvalidInputLocal, "End date must be DD-MM-YYYY")
	}
	if end.Before(start) {
		return nil, apierr.New(apierr.InvalidInputLocal, "End date cannot be before start date")
	}

	price := 0.0
	if p := strings.TrimSpace(in.TicketPrice); p != "" {
		if !validate.IsValidPrice(p) {
			return nil, apierr.New(apierr.InvalidInputLocal, "Invalid ticket price")
		}
		price, _ = strconv.ParseFloat(p, 64)
	}

	seats := 0
	if q := validate.FilterDigits(in.TotalSeats); q != "" {
		seats, _ = strconv.Atoi(q)
	}

	return &createPayload{
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		EventType:      strings.TrimSpace(in.EventType),
		LocationText:   strings.TrimSpace(in.Location),
		OnlineLink:     strings.TrimSpace(in.OnlineLink),
		StartDatetime:  start.UTC().Format(time.RFC3339),
		EndDatetime:    end.UTC().Format(time.RFC3339),
		TicketPrice:    price,
		Currency:       "INR",
		TotalSeats:     seats,
		AvailableSeats: seats,
		Status:         "PUBLISHED",
	}, nil
}

// Book reserves a seat on the event. A sold-out event is rejected locally,
// mirroring the disabled book button; the backend still has the final say
// on races.
func (s *Service) Book(ctx context.Context, ev *Event) error {
	if ev.AvailableSeats <= 0 {
		return apierr.New(apierr.ValidationFailed, "Event is sold out")
	}
	_, err := s.gw.Post(ctx, "/event-bookings", map[string]int64{"eventId": ev.ID})
	return err
}

// ReceivedBookings returns the bookings received for one of the caller's
// events. The backend endpoint returns all received bookings; filtering by
// event happens here.
func (s *Service) ReceivedBookings(ctx context.Context, eventID int64) ([]Booking, error) {
	resp, err := s.gw.Get(ctx, "/event-bookings/received")
	if err != nil {
		return nil, err
	}
	var all []Booking
	if err := resp.Decode(&all); err != nil {
		return nil, apierr.Wrap(apierr.Unknown, "decoding bookings", err)
	}
	out := all[:0]
	for _, b := range all {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

// Stats derives the seat numbers shown on the my-events dashboard.
// Tickets sold is the booking count; total is seats left plus sold.
func Stats(ev *Event, bookings []Booking) (sold, left, total int) {
	sold = len(bookings)
	left = ev.AvailableSeats
	return sold, left, left + sold
}

// SeatLine renders "available/total seats" the way the listing shows it.
func SeatLine(ev *Event) string {
	return fmt.Sprintf("%d/%d seats", ev.AvailableSeats, ev.TotalSeats)
}

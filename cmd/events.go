// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"collabnex/cli/internal/apierr"
	"collabnex/cli/internal/events"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var eventForm events.CreateInput

// eventsCmd groups the event subcommands.
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse, create and book events",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List published events",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		list, err := a.events.List(cmd.Context())
		if err != nil {
			return a.presentError(err, "loading events")
		}
		renderEvents(list)
		return nil
	},
}

var eventsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List events you created, with booking stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(cmd); err != nil {
			return err
		}
		list, err := a.events.Mine(cmd.Context())
		if err != nil {
			return a.presentError(err, "loading your events")
		}
		for i := range list {
			ev := &list[i]
			bookings, err := a.events.ReceivedBookings(cmd.Context(), ev.ID)
			if err != nil {
				return a.presentError(err, "loading bookings")
			}
			sold, left, total := events.Stats(ev, bookings)
			pterm.Printf("#%d %s\n", ev.ID, ev.Title)
			pterm.Printf("   %d sold, %d left of %d seats\n", sold, left, total)
			for _, b := range bookings {
				pterm.Printf("   booking %d: %s (%s)\n", b.BookingID, b.UserName, b.BookedAt)
			}
		}
		if len(list) == 0 {
			pterm.Println("You haven't created any events yet.")
		}
		return nil
	},
}

var eventsShowCmd = &cobra.Command{
	Use:   "show <event-id>",
	Short: "Show one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("event id must be a number")
		}
		ev, err := a.events.Get(cmd.Context(), id)
		if err != nil {
			return a.presentError(err, "loading the event")
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n", ev.Title)
		if ev.Description != "" {
			fmt.Fprintf(&b, "%s\n", ev.Description)
		}
		fmt.Fprintf(&b, "Type      %s\n", ev.EventType)
		fmt.Fprintf(&b, "When      %s to %s\n", ev.StartDatetime, ev.EndDatetime)
		if ev.LocationText != "" {
			fmt.Fprintf(&b, "Where     %s\n", ev.LocationText)
		}
		if ev.OnlineLink != "" {
			fmt.Fprintf(&b, "Link      %s\n", ev.OnlineLink)
		}
		fmt.Fprintf(&b, "Price     %.2f %s\n", ev.TicketPrice, ev.Currency)
		fmt.Fprintf(&b, "Seats     %s", events.SeatLine(ev))
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprintf("Event #%d", ev.ID)).
			Println(b.String())
		return nil
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new event",
	Long: `Publishes a new event. Dates are given as DD-MM-YYYY; available seats
start equal to the total seat count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(cmd); err != nil {
			return err
		}
		stopSpinner := startInlineSpinner(os.Stdout, "Publishing event")
		err = a.events.Create(cmd.Context(), eventForm)
		stopSpinner()
		if err != nil {
			if apierr.Is(err, apierr.Unauthorized) {
				return a.presentError(err, "publishing the event")
			}
			pterm.Error.Println(err.Error())
			return fmt.Errorf("creating event failed")
		}
		pterm.Success.Println("Event published")
		return nil
	},
}

var eventsBookCmd = &cobra.Command{
	Use:   "book <event-id>",
	Short: "Book a seat on an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(cmd); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("event id must be a number")
		}
		ev, err := a.events.Get(cmd.Context(), id)
		if err != nil {
			return a.presentError(err, "loading the event")
		}
		if err := a.events.Book(cmd.Context(), ev); err != nil {
			if apierr.Is(err, apierr.Unauthorized) {
				return a.presentError(err, "booking the event")
			}
			pterm.Error.Println(err.Error())
			return fmt.Errorf("booking failed")
		}
		pterm.Success.Printf("Seat booked for %q\n", ev.Title)
		return nil
	},
}

func renderEvents(list []events.Event) {
	if len(list) == 0 {
		pterm.Println("No events found.")
		return
	}
	for i := range list {
		ev := &list[i]
		pterm.Printf("#%d %s\n", ev.ID, ev.Title)
		pterm.Printf("   %s | %.2f %s | %s\n", ev.StartDatetime, ev.TicketPrice, ev.Currency, events.SeatLine(ev))
	}
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsListCmd, eventsMineCmd, eventsShowCmd, eventsCreateCmd, eventsBookCmd)

	eventsCreateCmd.Flags().StringVar(&eventForm.Title, "title", "", "Event title")
	eventsCreateCmd.Flags().StringVar(&eventForm.Description, "description", "", "Event description")
	eventsCreateCmd.Flags().StringVar(&eventForm.EventType, "type", "", "Event type (WORKSHOP, CONCERT, ...)")
	eventsCreateCmd.Flags().StringVar(&eventForm.Location, "location", "", "Venue or address")
	eventsCreateCmd.Flags().StringVar(&eventForm.OnlineLink, "link", "", "Online event link")
	eventsCreateCmd.Flags().StringVar(&eventForm.StartDate, "start", "", "Start date (DD-MM-YYYY)")
	eventsCreateCmd.Flags().StringVar(&eventForm.EndDate, "end", "", "End date (DD-MM-YYYY)")
	eventsCreateCmd.Flags().StringVar(&eventForm.TicketPrice, "price", "", "Ticket price")
	eventsCreateCmd.Flags().StringVar(&eventForm.TotalSeats, "seats", "", "Total seats")
}

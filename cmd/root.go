// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the CollabNEX client.
// It implements subcommands for authentication, profile management, event
// booking, the marketplace and artist discovery using the Cobra framework,
// with a terminal UI built on pterm spinners and boxes.
package cmd

import (
	"fmt"
	"os"

	"collabnex/cli/internal/api"
	"collabnex/cli/internal/apierr"
	"collabnex/cli/internal/artists"
	"collabnex/cli/internal/config"
	"collabnex/cli/internal/events"
	"collabnex/cli/internal/httperrors"
	"collabnex/cli/internal/keychain"
	"collabnex/cli/internal/logging"
	"collabnex/cli/internal/marketplace"
	"collabnex/cli/internal/profile"
	"collabnex/cli/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "collabnex",
	Short:         "CollabNEX CLI for the artist collaboration marketplace",
	Long:          `CollabNEX is a command-line client for the CollabNEX artist collaboration marketplace: accounts, artist profiles, events with seat booking, and buying or selling products and services.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("collabnex %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}

// app bundles the wired service graph every subcommand runs against.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	store    *keychain.Manager
	gateway  *api.Client
	profiles *profile.Resolver
	session  *session.Manager
	events   *events.Service
	market   *marketplace.Service
	artists  *artists.Service
}

// newApp loads config, opens the credential store and wires the gateway,
// resolver and session manager around it.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logging.Logger(cfg.LogLevel)

	store, err := keychain.GetManager()
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}

	gw := api.New(cfg.APIBaseURL(), store, log)
	resolver := profile.NewResolver(gw)

	return &app{
		cfg:      cfg,
		log:      log,
		store:    store,
		gateway:  gw,
		profiles: resolver,
		session:  session.NewManager(gw, store, resolver, log),
		events:   events.NewService(gw),
		market:   marketplace.NewService(gw),
		artists:  artists.NewService(gw),
	}, nil
}

// presentError maps a gateway failure to what the user should see.
// Unauthorized forces the logout transition: the stored token is invalid,
// so it is cleared and the user is told to sign in again. Unreachable
// servers get troubleshooting hints; everything else passes through for
// cobra to print.
func (a *app) presentError(err error, context string) error {
	if err == nil {
		return nil
	}
	if apierr.Is(err, apierr.Unauthorized) {
		a.session.HandleUnauthorized()
		return fmt.Errorf("session expired; run 'collabnex login' to sign in again")
	}
	if apierr.Is(err, apierr.NetworkUnreachable) {
		return httperrors.FormatNetworkError(err, context)
	}
	return err
}

// requireAuth resumes the stored session and errors when no token exists.
// Commands behind this gate still get 401s surfaced by the backend; this
// only gives a friendlier message than an Unauthorized round trip.
func (a *app) requireAuth(cmd *cobra.Command) error {
	if nav := a.session.Resume(cmd.Context()); nav == session.NavLogin {
		return fmt.Errorf("you are not logged in; run 'collabnex login' first")
	}
	return nil
}

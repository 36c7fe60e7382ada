// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"time"

	"collabnex/cli/internal/profile"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// whoamiCmd shows the current session: the identity claims carried in the
// stored token and the resolved profile state.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current authenticated account",
	Long: `The whoami command shows who is currently signed in. It reads the stored
session token, displays the identity claims it carries, and checks the
backend for the state of your artist profile.

The token signature is not verified locally; the backend remains the
authority on whether the session is still valid.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		token := a.store.Token()
		if token == "" {
			pterm.Println("You're not logged in yet.")
			pterm.Println("Run 'collabnex login' to get started.")
			return nil
		}

		printTokenClaims(token)

		switch a.profiles.Resolve(cmd.Context()) {
		case profile.ArtistComplete:
			pterm.Info.Println("Artist profile: complete")
		case profile.BasicUser:
			pterm.Info.Println("Account type: basic user")
		default:
			pterm.Info.Println("Artist profile: not set up. Run 'collabnex profile create'.")
		}
		return nil
	},
}

// printTokenClaims decodes the stored JWT without verifying the signature
// and prints the identity fields it carries.
func printTokenClaims(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		pterm.Println("Signed in (session token is not a readable JWT)")
		return
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		pterm.Printf("Current user: %s\n", email)
	} else if sub, err := claims.GetSubject(); err == nil && sub != "" {
		pterm.Printf("Current user: %s\n", sub)
	} else {
		pterm.Println("Signed in")
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if exp.Before(time.Now()) {
			pterm.Warning.Println(fmt.Sprintf("Session token expired %s", exp.Format(time.RFC822)))
		} else {
			pterm.Printf("Session valid until %s\n", exp.Format(time.RFC822))
		}
	}
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

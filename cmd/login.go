// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"

	"collabnex/cli/internal/forms"
	"collabnex/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd authenticates with email and password and stores the session
// token in the OS keychain.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Log in with your CollabNEX account",
	Long: `The login command authenticates against the CollabNEX backend with your
email and password and stores the session token in the OS keychain. On
success it tells you whether your artist profile still needs to be set up.

Email and password can be passed as flags for scripted use; when omitted
they are prompted for interactively (password input is not echoed).`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		draft := forms.NewDraft(emailField(), passwordField())

		email := loginEmail
		if email == "" {
			if email, err = promptLine("Email: "); err != nil {
				return err
			}
		}
		draft.Set("email", email)
		if msg := draft.Error("email"); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		fmt.Printf("Email: %s\n", draft.Value("email"))

		password := loginPassword
		if password == "" {
			if password, err = promptSecret("Password: "); err != nil {
				return err
			}
		}
		draft.Set("password", password)
		if msg := draft.Error("password"); msg != "" {
			return fmt.Errorf("%s", msg)
		}

		if !draft.BeginSubmit() {
			return fmt.Errorf("form is incomplete")
		}
		defer draft.EndSubmit()

		stopSpinner := startInlineSpinner(os.Stdout, "Signing in")
		nav, err := a.session.Login(cmd.Context(), draft.Value("email"), draft.Value("password"))
		stopSpinner()
		if err != nil {
			pterm.Error.Println(err.Error())
			return fmt.Errorf("login failed")
		}

		pterm.Success.Printf("Logged in as %s\n", draft.Value("email"))
		if nav == session.NavCreateProfile {
			pterm.Info.Println("Your artist profile is not set up yet. Run 'collabnex profile create' to finish onboarding.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

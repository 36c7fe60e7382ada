// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"

	"collabnex/cli/internal/forms"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	signupName     string
	signupEmail    string
	signupPassword string
)

// signupCmd registers a new account. Registration does not log in; the
// user signs in afterwards with the same credentials.
var signupCmd = &cobra.Command{
	Use:     "signup",
	Aliases: []string{"register"},
	Short:   "Create a new CollabNEX account",
	Long: `The signup command registers a new account with your full name, email and
password. It does not log you in: after registering, run 'collabnex login'
with the same credentials.

Full names may only contain letters and spaces; other characters are
dropped. Emails are lowercased before submission.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		draft := forms.NewDraft(fullNameField(), emailField(), passwordField())

		name := signupName
		if name == "" {
			if name, err = promptLine("Full name: "); err != nil {
				return err
			}
		}
		draft.Set("fullName", name)
		if msg := draft.Error("fullName"); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		fmt.Printf("Full name: %s\n", draft.Value("fullName"))

		email := signupEmail
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

		password := signupPassword
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

		stopSpinner := startInlineSpinner(os.Stdout, "Creating account")
		err = a.session.Signup(cmd.Context(), draft.Value("fullName"), draft.Value("email"), draft.Value("password"))
		stopSpinner()
		if err != nil {
			pterm.Error.Println(err.Error())
			return fmt.Errorf("signup failed")
		}

		pterm.Success.Println("Account created. Run 'collabnex login' to sign in.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
	signupCmd.Flags().StringVar(&signupName, "name", "", "Full name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Account password (prompted when omitted)")
}

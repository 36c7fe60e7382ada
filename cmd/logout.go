// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd clears the stored session. It always succeeds: keychain
// failures are logged but never keep the user signed in.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session token",
	Long: `The logout command removes the stored session tokens from the OS keychain
and resets the local session. It never fails: even when the keychain cannot
be cleared, the session ends and subsequent commands require a fresh login.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		a.session.Logout(cmd.Context())
		pterm.Success.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

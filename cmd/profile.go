// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"collabnex/cli/internal/apierr"
	"collabnex/cli/internal/profile"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var profileForm struct {
	fullName   string
	domain     string
	bio        string
	profession string
	years      int
	country    string
	state      string
	city       string
	skills     []string
	linkedin   string
	instagram  string
	website    string
	basicUser  bool
}

// profileCmd groups the profile subcommands.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your artist profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(cmd); err != nil {
			return err
		}

		rec, err := a.profiles.Fetch(cmd.Context())
		if err != nil {
			return a.presentError(err, "loading your profile")
		}
		renderProfile(rec)
		return nil
	},
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Set up your artist profile",
	Long: `Finishes onboarding by creating your artist profile. Pass --user instead
of artist fields to continue as a plain user without an artist presence.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return submitProfile(cmd)
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your artist profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return submitProfile(cmd)
	},
}

// submitProfile builds the record from flags and saves it. Create and
// update share the same backend call; the endpoint upserts.
func submitProfile(cmd *cobra.Command) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireAuth(cmd); err != nil {
		return err
	}

	rec := &profile.Record{
		FullName:          strings.TrimSpace(profileForm.fullName),
		Domain:            strings.TrimSpace(profileForm.domain),
		Bio:               strings.TrimSpace(profileForm.bio),
		Profession:        strings.TrimSpace(profileForm.profession),
		YearsOfExperience: profileForm.years,
		Country:           strings.TrimSpace(profileForm.country),
		StateName:         strings.TrimSpace(profileForm.state),
		City:              strings.TrimSpace(profileForm.city),
		Skills:            profileForm.skills,
		Linkedin:          strings.TrimSpace(profileForm.linkedin),
		Instagram:         strings.TrimSpace(profileForm.instagram),
		Website:           strings.TrimSpace(profileForm.website),
	}
	if profileForm.basicUser {
		rec.Domain = "user"
	}
	if rec.Domain == "" && rec.Bio == "" {
		return fmt.Errorf("provide --domain or --bio, or pass --user to continue without an artist profile")
	}

	stopSpinner := startInlineSpinner(os.Stdout, "Saving profile")
	state, err := a.profiles.Update(cmd.Context(), rec)
	stopSpinner()
	if err != nil {
		if apierr.Is(err, apierr.Unauthorized) {
			return a.presentError(err, "saving the profile")
		}
		pterm.Error.Println(err.Error())
		return fmt.Errorf("saving profile failed")
	}

	switch state {
	case profile.BasicUser:
		pterm.Success.Println("Saved. You're continuing as a basic user.")
	case profile.ArtistComplete:
		pterm.Success.Println("Artist profile saved.")
	default:
		pterm.Warning.Println("Profile saved but still incomplete.")
	}
	return nil
}

func renderProfile(rec *profile.Record) {
	rows := [][2]string{
		{"Name", rec.FullName},
		{"Domain", rec.Domain},
		{"Profession", rec.Profession},
		{"Bio", rec.Bio},
		{"Experience", fmt.Sprintf("%d years", rec.YearsOfExperience)},
		{"Location", joinNonEmpty(rec.City, rec.StateName, rec.Country)},
		{"Skills", strings.Join(rec.Skills, ", ")},
		{"LinkedIn", rec.Linkedin},
		{"Instagram", rec.Instagram},
		{"Website", rec.Website},
	}
	var b strings.Builder
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "%-12s %s\n", row[0], row[1])
	}
	pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Profile")).
		Println(strings.TrimRight(b.String(), "\n"))
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileCreateCmd, profileUpdateCmd)

	for _, c := range []*cobra.Command{profileCreateCmd, profileUpdateCmd} {
		c.Flags().StringVar(&profileForm.fullName, "name", "", "Full name")
		c.Flags().StringVar(&profileForm.domain, "domain", "", "Artistic domain (music, painting, ...)")
		c.Flags().StringVar(&profileForm.bio, "bio", "", "Short bio")
		c.Flags().StringVar(&profileForm.profession, "profession", "", "Profession")
		c.Flags().IntVar(&profileForm.years, "experience", 0, "Years of experience")
		c.Flags().StringVar(&profileForm.country, "country", "", "Country")
		c.Flags().StringVar(&profileForm.state, "state", "", "State")
		c.Flags().StringVar(&profileForm.city, "city", "", "City")
		c.Flags().StringSliceVar(&profileForm.skills, "skills", nil, "Skills (comma separated)")
		c.Flags().StringVar(&profileForm.linkedin, "linkedin", "", "LinkedIn URL")
		c.Flags().StringVar(&profileForm.instagram, "instagram", "", "Instagram handle")
		c.Flags().StringVar(&profileForm.website, "website", "", "Website URL")
		c.Flags().BoolVar(&profileForm.basicUser, "user", false, "Continue as a basic user without an artist profile")
	}
}

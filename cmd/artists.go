// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"collabnex/cli/internal/artists"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	artistDomain string
	artistCity   string
	artistNearby bool
)

// artistsCmd lists the public artist directory with optional filters.
var artistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "Discover artists by domain, city or proximity",
	Long: `Lists artists from the public directory. Filter by artistic domain or
city, or pass --nearby to find artists close to your own profile city.
Filters are mutually exclusive; with none, the full directory is shown.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		set := 0
		for _, on := range []bool{artistDomain != "", artistCity != "", artistNearby} {
			if on {
				set++
			}
		}
		if set > 1 {
			return fmt.Errorf("use only one of --domain, --city or --nearby")
		}

		ctx := cmd.Context()
		var list []artists.Artist
		switch {
		case artistDomain != "":
			list, err = a.artists.ByDomain(ctx, artistDomain)
		case artistCity != "":
			list, err = a.artists.ByCity(ctx, artistCity)
		case artistNearby:
			if err := a.requireAuth(cmd); err != nil {
				return err
			}
			list, err = a.artists.Nearby(ctx)
		default:
			list, err = a.artists.All(ctx)
		}
		if err != nil {
			return a.presentError(err, "loading artists")
		}

		if len(list) == 0 {
			pterm.Println("No artists found.")
			return nil
		}
		for _, ar := range list {
			pterm.Printf("%s", ar.FullName)
			if ar.Domain != "" {
				pterm.Printf(" - %s", ar.Domain)
			}
			pterm.Println()
			if loc := joinNonEmpty(ar.City, ar.StateName, ar.Country); loc != "" {
				pterm.Printf("   %s\n", loc)
			}
			if ar.Bio != "" {
				pterm.Printf("   %s\n", ar.Bio)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(artistsCmd)
	artistsCmd.Flags().StringVar(&artistDomain, "domain", "", "Filter by artistic domain")
	artistsCmd.Flags().StringVar(&artistCity, "city", "", "Filter by city")
	artistsCmd.Flags().BoolVar(&artistNearby, "nearby", false, "Artists near your profile city")
}

// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"collabnex/cli/internal/apierr"
	"collabnex/cli/internal/marketplace"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	sellForm   marketplace.SellInput
	buyForm    marketplace.OrderInput
	buyQty     string
	buyService bool
)

// marketCmd groups the marketplace subcommands.
var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Buy and sell products and services",
}

var marketProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "List physical products for sale",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		list, err := a.market.ListProducts(cmd.Context())
		if err != nil {
			return a.presentError(err, "loading products")
		}
		if len(list) == 0 {
			pterm.Println("No products listed.")
			return nil
		}
		for _, p := range list {
			pterm.Printf("#%d %s\n", p.ID, p.Title)
			pterm.Printf("   %.2f INR | %d in stock | by %s\n", p.Price, p.Quantity, p.SellerName)
		}
		return nil
	},
}

var marketServicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List services for hire",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		list, err := a.market.ListServices(cmd.Context())
		if err != nil {
			return a.presentError(err, "loading services")
		}
		if len(list) == 0 {
			pterm.Println("No services listed.")
			return nil
		}
		for _, s := range list {
			pterm.Printf("#%d %s\n", s.ID, s.Title)
			pterm.Printf("   %.2f INR | by %s\n", s.Price, s.SellerName)
		}
		return nil
	},
}

var marketSellProductCmd = &cobra.Command{
	Use:   "sell-product",
	Short: "List a physical product for sale",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSell(cmd, true)
	},
}

var marketSellServiceCmd = &cobra.Command{
	Use:   "sell-service",
	Short: "List a service for hire",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSell(cmd, false)
	},
}

func runSell(cmd *cobra.Command, physical bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireAuth(cmd); err != nil {
		return err
	}
	stopSpinner := startInlineSpinner(os.Stdout, "Publishing listing")
	if physical {
		err = a.market.SellProduct(cmd.Context(), sellForm)
	} else {
		err = a.market.SellService(cmd.Context(), sellForm)
	}
	stopSpinner()
	if err != nil {
		if apierr.Is(err, apierr.Unauthorized) {
			return a.presentError(err, "publishing the listing")
		}
		pterm.Error.Println(err.Error())
		return fmt.Errorf("listing failed")
	}
	pterm.Success.Println("Listing published")
	return nil
}

var marketBuyCmd = &cobra.Command{
	Use:   "buy <item-id>",
	Short: "Buy a product or service",
	Long: `Places an order for a listing. Use --service for service listings;
--quantity only applies to physical products.`,
	Args: cobra.ExactArgs(1),
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
			return fmt.Errorf("item id must be a number")
		}
		buyForm.ItemID = id
		buyForm.Quantity = buyQty
		buyForm.ItemType = marketplace.ItemPhysical
		if buyService {
			buyForm.ItemType = marketplace.ItemService
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Placing order")
		err = a.market.BuyNow(cmd.Context(), buyForm)
		stopSpinner()
		if err != nil {
			if apierr.Is(err, apierr.Unauthorized) {
				return a.presentError(err, "placing the order")
			}
			pterm.Error.Println(err.Error())
			return fmt.Errorf("order failed")
		}
		pterm.Success.Println("Order placed")
		return nil
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your placed orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.requireAuth(cmd); err != nil {
			return err
		}
		list, err := a.market.MyOrders(cmd.Context())
		if err != nil {
			return a.presentError(err, "loading your orders")
		}
		if len(list) == 0 {
			pterm.Println("No orders yet.")
			return nil
		}
		for _, o := range list {
			pterm.Printf("#%d %s (%s)\n", o.ID, o.ItemTitle, o.ItemType)
			pterm.Printf("   %.2f INR | %s | %s\n", o.Total, o.Status, o.PlacedAt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(marketCmd, ordersCmd)
	marketCmd.AddCommand(marketProductsCmd, marketServicesCmd, marketSellProductCmd, marketSellServiceCmd, marketBuyCmd)

	for _, c := range []*cobra.Command{marketSellProductCmd, marketSellServiceCmd} {
		c.Flags().StringVar(&sellForm.Title, "title", "", "Listing title")
		c.Flags().StringVar(&sellForm.Description, "description", "", "Listing description")
		c.Flags().StringVar(&sellForm.Category, "category", "", "Category")
		c.Flags().StringVar(&sellForm.Price, "price", "", "Price (up to two decimals)")
	}
	marketSellProductCmd.Flags().StringVar(&sellForm.Quantity, "quantity", "1", "Stock quantity")

	marketBuyCmd.Flags().BoolVar(&buyService, "service", false, "Item is a service listing")
	marketBuyCmd.Flags().StringVar(&buyQty, "quantity", "1", "Quantity (physical products only)")
	marketBuyCmd.Flags().StringVar(&buyForm.FullName, "name", "", "Recipient full name")
	marketBuyCmd.Flags().StringVar(&buyForm.Address, "address", "", "Delivery address")
	marketBuyCmd.Flags().StringVar(&buyForm.City, "city", "", "City")
	marketBuyCmd.Flags().StringVar(&buyForm.Pincode, "pincode", "", "Postal code")
	marketBuyCmd.Flags().StringVar(&buyForm.Phone, "phone", "", "Contact phone")
}

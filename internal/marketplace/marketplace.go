// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package marketplace is the client for product and service listings and
// the buy-now order flow.
package marketplace

import (
	"context"
	"strconv"
	"strings"

	"collabnex/cli/internal/api"
	"collabnex/cli/internal/apierr"
	"collabnex/cli/internal/validate"

	"github.com/go-playground/validator/v10"
)

// Item types accepted by the order endpoint.
const (
	ItemPhysical = "PHYSICAL"
	ItemService  = "SERVICE"
)

// Product is a physical product listing.
type Product struct {
	ID          int64   `json:"productId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	SellerName  string  `json:"sellerName"`
}

// Offering is a service listing (commissions, sessions, gigs).
type Offering struct {
	ID          int64   `json:"serviceId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	SellerName  string  `json:"sellerName"`
}

// Order is a placed order as returned by /orders/my.
type Order struct {
	ID        int64   `json:"orderId"`
	ItemType  string  `json:"itemType"`
	ItemTitle string  `json:"itemTitle"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"totalAmount"`
	Status    string  `json:"status"`
	PlacedAt  string  `json:"placedAt"`
}

// SellInput is the raw listing form, shared by products and services.
// Quantity is ignored for services.
type SellInput struct {
	Title       string
	Description string
	Category    string
	Price       string
	Quantity    string
}

type productPayload struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"gt=0"`
	Quantity    int     `json:"quantity" validate:"gte=1"`
}

type servicePayload struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"gt=0"`
}

// OrderInput is the buy-now form. Quantity applies to physical items only.
type OrderInput struct {
	ItemID   int64
	ItemType string
	Quantity string
	FullName string
	Address  string
	City     string
	Pincode  string
	Phone    string
}

type orderPayload struct {
	ItemID   int64  `json:"itemId" validate:"required"`
	ItemType string `json:"itemType" validate:"required,oneof=PHYSICAL SERVICE"`
	Quantity *int   `json:"quantity,omitempty"`
	FullName string `json:"fullName" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
	Phone    string `json:"phone" validate:"required"`
}

// Caller is the slice of the gateway this client needs.
type Caller interface {
	Get(ctx context.Context, path string) (*api.Response, error)
	Post(ctx context.Context, path string, body any) (*api.Response, error)
}

// Service is the marketplace API client.
type Service struct {
	gw       Caller
	validate *validator.Validate
}

// NewService constructs a marketplace client over the gateway.
func NewService(gw Caller) *Service {
	return &Service{gw: gw, validate: validator.New()}
}

// ListProducts returns all physical product listings.
func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	resp, err := s.gw.Get(ctx, "/physical-products")
	if err != nil {
		return nil, err
	}
	var out []Product
	if err := resp.Decode(&out); err != nil {
		return nil, apierr.Wrap(apierr.Unknown, "decoding products", err)
	}
	return out, nil
}

// ListServices returns all service listings.
func (s *Service) ListServices(ctx context.Context) ([]Offering, error) {
	resp, err := s.gw.Get(ctx, "/service-products")
	if err != nil {
		return nil, err
	}
	var out []Offering
	if err := resp.Decode(&out); err != nil {
		return nil, apierr.Wrap(apierr.Unknown, "decoding services", err)
	}
	return out, nil
}

// SellProduct validates and publishes a physical product listing.
func (s *Service) SellProduct(ctx context.Context, in SellInput) error {
	price, err := parsePrice(in.Price)
	if err != nil {
		return err
	}
	qty := 1
	if q := validate.FilterDigits(in.Quantity); q != "" {
		qty, _ = strconv.Atoi(q)
	}
	payload := &productPayload{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Price:       price,
		Quantity:    qty,
	}
	if err := s.validate.Struct(payload); err != nil {
		return apierr.Wrap(apierr.InvalidInputLocal, "Please fill all required fields correctly", err)
	}
	_, err = s.gw.Post(ctx, "/physical-products", payload)
	return err
}

// SellService validates and publishes a service listing.
func (s *Service) SellService(ctx context.Context, in SellInput) error {
	price, err := parsePrice(in.Price)
	if err != nil {
		return err
	}
	payload := &servicePayload{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Price:       price,
	}
	if err := s.validate.Struct(payload); err != nil {
		return apierr.Wrap(apierr.InvalidInputLocal, "Please fill all required fields correctly", err)
	}
	_, err = s.gw.Post(ctx, "/service-products", payload)
	return err
}

func parsePrice(raw string) (float64, error) {
	p := strings.TrimSpace(raw)
	if !validate.IsValidPrice(p) {
		return 0, apierr.New(apierr.InvalidInputLocal, "Price must be a positive amount with up to two decimals")
	}
	v, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return 0, apierr.New(apierr.InvalidInputLocal, "Price must be a positive amount with up to two decimals")
	}
	return v, nil
}

// BuyNow places an order for a listing. Quantity is sent for physical
// items only; service orders carry no quantity field at all.
func (s *Service) BuyNow(ctx context.Context, in OrderInput) error {
	payload := &orderPayload{
		ItemID:   in.ItemID,
		ItemType: in.ItemType,
		FullName: strings.TrimSpace(in.FullName),
		Address:  strings.TrimSpace(in.Address),
		City:     strings.TrimSpace(in.City),
		Pincode:  validate.FilterDigits(in.Pincode),
		Phone:    validate.FilterDigits(in.Phone),
	}
	if in.ItemType == ItemPhysical {
		qty := 1
		if q := validate.FilterDigits(in.Quantity); q != "" {
			qty, _ = strconv.Atoi(q)
		}
		if qty < 1 {
			return apierr.New(apierr.InvalidInputLocal, "Quantity must be at least 1")
		}
		payload.Quantity = &qty
	}
	if err := s.validate.Struct(payload); err != nil {
		return apierr.Wrap(apierr.InvalidInputLocal, "Please fill all required fields correctly", err)
	}
	_, err := s.gw.Post(ctx, "/orders", payload)
	return err
}

// MyOrders returns the caller's placed orders.
func (s *Service) MyOrders(ctx context.Context) ([]Order, error) {
	resp, err := s.gw.Get(ctx, "/orders/my")
	if err != nil {
		return nil, err
	}
	var out []Order
	if err := resp.Decode(&out); err != nil {
		return nil, apierr.Wrap(apierr.Unknown, "decoding orders", err)
	}
	return out, nil
}

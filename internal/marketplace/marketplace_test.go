// Copyright (c) 2025 CollabNEX
// Licensed under the MIT License. See LICENSE file in the project root for details.

package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"collabnex/cli/internal/api"
	"collabnex/cli/internal/apierr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, staticToken("tok"), nil)
}

func TestSellProduct_Payload(t *testing.T) {
	var got map[string]any
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/physical-products", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"productId":11}}`))
	}))

	err := svc.SellProduct(context.Background(), SellInput{
		Title:    " Handmade sketchbook ",
		Category: "stationery",
		Price:    "499.99",
		Quantity: "25 units",
	})
	require.NoError(t, err)
	assert.Equal(t, "Handmade sketchbook", got["title"])
	assert.Equal(t, 499.99, got["price"])
	assert.Equal(t, float64(25), got["quantity"], "digits filtered out of quantity")
}

func TestSellProduct_RejectsBadPrice(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid price must not reach the network")
	}))
	for _, price := range []string{"", "abc", "12.345", "-5", "0"} {
		err := svc.SellProduct(context.Background(), SellInput{Title: "x", Price: price, Quantity: "1"})
		assert.True(t, apierr.Is(err, apierr.InvalidInputLocal), "price %q: got %v", price, err)
	}
}

func TestSellService_OmitsQuantity(t *testing.T) {
	var got map[string]any
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/service-products", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"data":{"serviceId":3}}`))
	}))

	require.NoError(t, svc.SellService(context.Background(), SellInput{
		Title: "Logo commission",
		Price: "1500",
	}))
	_, hasQty := got["quantity"]
	assert.False(t, hasQty)
}

func TestBuyNow_QuantityOnlyForPhysical(t *testing.T) {
	var got map[string]any
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"orderId":1}}`))
	}))

	base := OrderInput{
		ItemID:   7,
		FullName: "Ravi Kumar",
		Address:  "12 MG Road",
		Phone:    "98765 43210",
	}

	in := base
	in.ItemType = ItemPhysical
	in.Quantity = "3"
	require.NoError(t, svc.BuyNow(context.Background(), in))
	assert.Equal(t, float64(3), got["quantity"])
	assert.Equal(t, "9876543210", got["phone"], "phone keeps digits only")

	got = nil
	in = base
	in.ItemType = ItemService
	require.NoError(t, svc.BuyNow(context.Background(), in))
	_, hasQty := got["quantity"]
	assert.False(t, hasQty, "service orders carry no quantity")
}

func TestBuyNow_RequiredFields(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("incomplete order must not reach the network")
	}))
	err := svc.BuyNow(context.Background(), OrderInput{ItemID: 7, ItemType: ItemPhysical, Quantity: "1"})
	assert.True(t, apierr.Is(err, apierr.InvalidInputLocal))
}

func TestMyOrders_Decodes(t *testing.T) {
	svc := NewService(newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/my", r.URL.Path)
		w.Write([]byte(`{"data":[{"orderId":4,"itemType":"SERVICE","itemTitle":"Logo commission","totalAmount":1500,"status":"PLACED"}]}`))
	}))
	got, err := svc.MyOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PLACED", got[0].Status)
}

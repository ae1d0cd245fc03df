package request

import (
	"errors"
	"testing"

	"tienda_checkout/internal/domain/entities"
)

func TestCheckoutRequest_Resolve(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		r := CheckoutRequest{
			Items: []CheckoutItemRequest{
				{ProductID: " prod-a ", Quantity: 2},
				{ProductID: "prod-b", Quantity: 1},
			},
			PaymentMethod: " MercadoPago ",
		}
		items, method, err := r.Resolve()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if method != entities.PaymentMethodMercadoPago {
			t.Fatalf("unexpected method %s", method)
		}
		if len(items) != 2 || items[0].ProductID != "prod-a" {
			t.Fatalf("unexpected items %+v", items)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name    string
			req     CheckoutRequest
			wantErr error
		}{
			{"no items", CheckoutRequest{PaymentMethod: "paypal"}, ErrEmptyItems},
			{"blank product id", CheckoutRequest{
				Items:         []CheckoutItemRequest{{ProductID: "  ", Quantity: 1}},
				PaymentMethod: "paypal",
			}, ErrInvalidItemProductID},
			{"zero quantity", CheckoutRequest{
				Items:         []CheckoutItemRequest{{ProductID: "prod-a", Quantity: 0}},
				PaymentMethod: "paypal",
			}, ErrInvalidItemQuantity},
			{"unknown method", CheckoutRequest{
				Items:         []CheckoutItemRequest{{ProductID: "prod-a", Quantity: 1}},
				PaymentMethod: "stripe",
			}, ErrInvalidMethod},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, _, err := tc.req.Resolve()
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})
}

package request

import (
	"errors"
	"strings"

	"tienda_checkout/internal/domain/entities"
	"tienda_checkout/internal/usecase"
)

var (
	ErrEmptyItems           = errors.New("items cannot be empty")
	ErrInvalidItemQuantity  = errors.New("item quantity must be positive")
	ErrInvalidItemProductID = errors.New("item product_id is required")
	ErrInvalidMethod        = errors.New("payment_method must be mercadopago or paypal")
)

type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the preference-creation payload. Any price field a
// client might send is deliberately absent: pricing is server-side only.
type CheckoutRequest struct {
	Items         []CheckoutItemRequest `json:"items"`
	PaymentMethod string                `json:"payment_method"`
}

// Resolve validates the payload and translates it into the domain command.
func (r CheckoutRequest) Resolve() ([]usecase.CheckoutItem, entities.PaymentMethod, error) {
	if len(r.Items) == 0 {
		return nil, "", ErrEmptyItems
	}

	items := make([]usecase.CheckoutItem, 0, len(r.Items))
	for _, it := range r.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			return nil, "", ErrInvalidItemProductID
		}
		if it.Quantity <= 0 {
			return nil, "", ErrInvalidItemQuantity
		}
		items = append(items, usecase.CheckoutItem{
			ProductID: strings.TrimSpace(it.ProductID),
			Quantity:  it.Quantity,
		})
	}

	method := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod)))
	if method != entities.PaymentMethodMercadoPago && method != entities.PaymentMethodPayPal {
		return nil, "", ErrInvalidMethod
	}
	return items, method, nil
}

package interfaces

import (
	"context"

	"tienda_checkout/internal/domain/entities"
)

// IPreferenceGateway abstracts the asynchronous gateway (Mercado Pago).
//
// CreatePreference registers a payment intent carrying the order's
// external_reference and returns the URL the payer is redirected to.
// GetPayment performs the second round trip of the webhook flow: the
// notification only carries a payment id, the details live behind it.
// SearchPaymentByReference supports the stale-pending sweep; found is false
// when the gateway has no payment for that reference yet.
type IPreferenceGateway interface {
	CreatePreference(ctx context.Context, order entities.Order) (redirectURL string, err error)
	GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error)
	SearchPaymentByReference(ctx context.Context, externalReference string) (payment entities.GatewayPayment, found bool, err error)
}

// ICaptureGateway abstracts the synchronous gateway (PayPal).
//
// CreateOrder embeds the local order id as opaque correlation data the
// provider echoes back in capture results. CaptureOrder finalizes an
// already-approved payment by token (the provider order id). GetOrderStatus
// reads the provider's own record for a previously created order.
type ICaptureGateway interface {
	CreateOrder(ctx context.Context, order entities.Order) (gatewayOrderID, redirectURL string, err error)
	CaptureOrder(ctx context.Context, token string) (entities.GatewayCapture, error)
	GetOrderStatus(ctx context.Context, gatewayOrderID string) (string, error)
}

package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"tienda_checkout/internal/domain/entities"
	"tienda_checkout/internal/usecase/interfaces"

	"github.com/plutov/paypal/v4"
)

var (
	ErrMissingPayPalCredentials   = errors.New("missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET")
	ErrPayPalGatewayNotConfigured = errors.New("paypal gateway not configured")
)

// PayPalGateway is the synchronous-gateway adapter. An order is created ahead
// of the payer redirect with the local order id as CustomID; the payer
// approves on PayPal's site and the client finalizes with a capture call,
// where the CustomID travels back inside the capture result.
//
// Mock mode reuses the shared PAYMENT_GATEWAY_MOCK switch: order creation
// redirects to a fake approval URL and every capture reports COMPLETED.

type PayPalGateway struct {
	client   *paypal.Client
	currency string
	mockMode bool
}

var _ interfaces.ICaptureGateway = (*PayPalGateway)(nil)

func NewPayPalGateway(clientID, secret string) (*PayPalGateway, error) {
	currency := getenvDefault("PAYPAL_CURRENCY", "USD")

	if isPaymentGatewayMockEnabled() {
		log.Printf("[paypal][gateway] mock mode enabled")
		return &PayPalGateway{currency: currency, mockMode: true}, nil
	}

	if clientID == "" || secret == "" {
		log.Printf("[paypal][gateway] missing PAYPAL_CLIENT_ID / PAYPAL_CLIENT_SECRET")
		return nil, ErrMissingPayPalCredentials
	}

	apiBase := getenvDefault("PAYPAL_API_BASE", paypal.APIBaseSandBox)
	client, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		log.Printf("[paypal][gateway] failed creating client err=%v", err)
		return nil, err
	}
	if _, err := client.GetAccessToken(context.Background()); err != nil {
		log.Printf("[paypal][gateway] access token request failed err=%v", err)
		return nil, err
	}
	log.Printf("[paypal][gateway] client initialized api_base=%s", apiBase)

	return &PayPalGateway{client: client, currency: currency}, nil
}

func (g *PayPalGateway) CreateOrder(ctx context.Context, order entities.Order) (string, string, error) {
	if g != nil && g.mockMode {
		gatewayOrderID := "MOCK-" + order.ID
		url := fmt.Sprintf("https://sandbox.paypal.local/checkoutnow?token=%s", gatewayOrderID)
		log.Printf("[paypal][gateway] mock order created order_id=%s gateway_order_id=%s", order.ID, gatewayOrderID)
		return gatewayOrderID, url, nil
	}
	if g == nil || g.client == nil {
		return "", "", ErrPayPalGatewayNotConfigured
	}

	units := []paypal.PurchaseUnitRequest{
		{
			ReferenceID: order.ExternalReference,
			CustomID:    order.ID,
			Amount: &paypal.PurchaseUnitAmount{
				Currency: g.currency,
				Value:    formatAmount(order.TotalAmount),
			},
		},
	}

	var appCtx *paypal.ApplicationContext
	if ret := strings.TrimSpace(os.Getenv("CHECKOUT_RETURN_URL")); ret != "" {
		appCtx = &paypal.ApplicationContext{ReturnURL: ret, CancelURL: ret}
	}

	resp, err := g.client.CreateOrder(ctx, paypal.OrderIntentCapture, units, nil, appCtx)
	if err != nil {
		log.Printf("[paypal][gateway] order create failed order_id=%s err=%v", order.ID, err)
		return "", "", err
	}

	approveURL := ""
	for _, link := range resp.Links {
		if link.Rel == "approve" {
			approveURL = link.Href
			break
		}
	}
	if approveURL == "" {
		log.Printf("[paypal][gateway] no approve link in response order_id=%s gateway_order_id=%s", order.ID, resp.ID)
		return "", "", errors.New("paypal order response missing approve link")
	}

	log.Printf("[paypal][gateway] order created order_id=%s gateway_order_id=%s", order.ID, resp.ID)
	return resp.ID, approveURL, nil
}

func (g *PayPalGateway) CaptureOrder(ctx context.Context, token string) (entities.GatewayCapture, error) {
	if g != nil && g.mockMode {
		log.Printf("[paypal][gateway] mock capture token=%s", token)
		custom := strings.TrimPrefix(token, "MOCK-")
		return entities.GatewayCapture{ID: token, Status: "COMPLETED", CustomID: custom}, nil
	}
	if g == nil || g.client == nil {
		return entities.GatewayCapture{}, ErrPayPalGatewayNotConfigured
	}

	resp, err := g.client.CaptureOrder(ctx, token, paypal.CaptureOrderRequest{})
	if err != nil {
		log.Printf("[paypal][gateway] capture failed token=%s err=%v", token, err)
		return entities.GatewayCapture{}, err
	}

	capture := entities.GatewayCapture{ID: resp.ID, Status: string(resp.Status)}
	for _, unit := range resp.PurchaseUnits {
		if unit.Payments == nil {
			continue
		}
		for _, c := range unit.Payments.Captures {
			if c.CustomID != "" {
				capture.CustomID = c.CustomID
				break
			}
		}
	}

	log.Printf("[paypal][gateway] capture executed token=%s status=%s custom_id=%q", token, capture.Status, capture.CustomID)
	return capture, nil
}

func (g *PayPalGateway) GetOrderStatus(ctx context.Context, gatewayOrderID string) (string, error) {
	if g != nil && g.mockMode {
		return "COMPLETED", nil
	}
	if g == nil || g.client == nil {
		return "", ErrPayPalGatewayNotConfigured
	}

	resp, err := g.client.GetOrder(ctx, gatewayOrderID)
	if err != nil {
		log.Printf("[paypal][gateway] order fetch failed gateway_order_id=%s err=%v", gatewayOrderID, err)
		return "", err
	}
	return resp.Status, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

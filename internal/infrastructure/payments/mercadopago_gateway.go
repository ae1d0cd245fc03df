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

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidMercadoPagoPaymentID     = errors.New("invalid mercado pago payment id")
)

// MercadoPagoGateway is the asynchronous-gateway adapter. It registers
// preferences ahead of the payer redirect and reads payments back when the
// webhook (or the sweep) asks for them.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) short-circuits the SDK
// for local runs: preferences redirect to a fake URL and every payment lookup
// reports approved.

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	mockMode    bool
}

var _ interfaces.IPreferenceGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[mercadopago][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[mercadopago][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[mercadopago][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[mercadopago][gateway] client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, order entities.Order) (string, error) {
	if g != nil && g.mockMode {
		url := fmt.Sprintf("https://sandbox.mercadopago.local/checkout?pref_id=mock-%s", order.ExternalReference)
		log.Printf("[mercadopago][gateway] mock preference created order_id=%s redirect=%s", order.ID, url)
		return url, nil
	}
	if g == nil || g.preferences == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	items := make([]preference.ItemRequest, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, preference.ItemRequest{
			ID:        it.ProductID,
			Title:     it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	req := preference.Request{
		Items:             items,
		ExternalReference: order.ExternalReference,
	}
	if base := strings.TrimSpace(os.Getenv("WEBHOOK_BASE_URL")); base != "" {
		req.NotificationURL = strings.TrimRight(base, "/") + "/v1/payments/webhook"
	}
	if ret := strings.TrimSpace(os.Getenv("CHECKOUT_RETURN_URL")); ret != "" {
		req.BackURLs = &preference.BackURLsRequest{Success: ret, Pending: ret, Failure: ret}
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[mercadopago][gateway] preference create failed order_id=%s err=%v", order.ID, err)
		return "", err
	}
	log.Printf("[mercadopago][gateway] preference created order_id=%s preference_id=%s", order.ID, resp.ID)

	if strings.HasPrefix(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), "TEST-") && resp.SandboxInitPoint != "" {
		return resp.SandboxInitPoint, nil
	}
	return resp.InitPoint, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (entities.GatewayPayment, error) {
	if g != nil && g.mockMode {
		log.Printf("[mercadopago][gateway] mock payment fetch payment_id=%s", paymentID)
		return entities.GatewayPayment{ID: paymentID, Status: "approved", ExternalReference: paymentID}, nil
	}
	if g == nil || g.payments == nil {
		return entities.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		log.Printf("[mercadopago][gateway] non-numeric payment id %q", paymentID)
		return entities.GatewayPayment{}, ErrInvalidMercadoPagoPaymentID
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[mercadopago][gateway] payment fetch failed payment_id=%d err=%v", id, err)
		return entities.GatewayPayment{}, err
	}
	log.Printf("[mercadopago][gateway] payment fetched payment_id=%d status=%s external_reference=%s", resp.ID, resp.Status, resp.ExternalReference)

	return entities.GatewayPayment{
		ID:                fmt.Sprintf("%d", resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		TransactionAmount: resp.TransactionAmount,
	}, nil
}

func (g *MercadoPagoGateway) SearchPaymentByReference(ctx context.Context, externalReference string) (entities.GatewayPayment, bool, error) {
	if g != nil && g.mockMode {
		return entities.GatewayPayment{}, false, nil
	}
	if g == nil || g.payments == nil {
		return entities.GatewayPayment{}, false, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.payments.Search(ctx, payment.SearchRequest{
		Limit: 1,
		Filters: map[string]string{
			"external_reference": externalReference,
		},
	})
	if err != nil {
		log.Printf("[mercadopago][gateway] payment search failed external_reference=%s err=%v", externalReference, err)
		return entities.GatewayPayment{}, false, err
	}
	if resp == nil || len(resp.Results) == 0 {
		return entities.GatewayPayment{}, false, nil
	}

	found := resp.Results[0]
	return entities.GatewayPayment{
		ID:                fmt.Sprintf("%d", found.ID),
		Status:            found.Status,
		ExternalReference: found.ExternalReference,
		TransactionAmount: found.TransactionAmount,
	}, true, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

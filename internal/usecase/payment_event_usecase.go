package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"tienda_checkout/internal/domain/entities"
	"tienda_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidNotification          = errors.New("invalid notification payload")
	ErrPreferenceGatewayUnavailable = errors.New("preference gateway not configured")
)

// webhookEventTypePayment is the only Mercado Pago event type this service
// acts on. The gateway pushes many unrelated types (plan, subscription, test,
// point_integration_wh, ...); those are acknowledged without side effects so
// its retry machinery stays quiet.
const webhookEventTypePayment = "payment"

// PaymentEventResult reports what a notification did. Handled is false for
// ignored event types; Applied mirrors the reconciliation outcome.
type PaymentEventResult struct {
	Handled bool
	Applied bool
	Order   entities.Order
}

// IPaymentEventUseCase ingests asynchronous gateway notifications.
//
// The notification body is a pointer, not the payload: it only carries a
// payment id. Full details (status + external_reference) are fetched from the
// gateway in a second round trip and then normalized into the shared status
// vocabulary before reaching the reconciliation core.

type IPaymentEventUseCase interface {
	ProcessNotification(ctx context.Context, eventType, paymentID string) (PaymentEventResult, error)
}

type PaymentEventUseCase struct {
	gateway    interfaces.IPreferenceGateway
	reconciler IReconciliationUseCase
}

var _ IPaymentEventUseCase = (*PaymentEventUseCase)(nil)

func NewPaymentEventUseCase(gateway interfaces.IPreferenceGateway, reconciler IReconciliationUseCase) *PaymentEventUseCase {
	return &PaymentEventUseCase{gateway: gateway, reconciler: reconciler}
}

func (u *PaymentEventUseCase) ProcessNotification(ctx context.Context, eventType, paymentID string) (PaymentEventResult, error) {
	eventType = strings.TrimSpace(eventType)
	paymentID = strings.TrimSpace(paymentID)
	log.Printf("[webhook][usecase] notification received type=%q payment_id=%q", eventType, paymentID)

	if eventType != webhookEventTypePayment {
		log.Printf("[webhook][usecase] ignoring event type=%q", eventType)
		return PaymentEventResult{Handled: false}, nil
	}
	if paymentID == "" {
		return PaymentEventResult{}, ErrInvalidNotification
	}
	if u.gateway == nil {
		return PaymentEventResult{}, ErrPreferenceGatewayUnavailable
	}

	payment, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[webhook][usecase] payment fetch failed payment_id=%s err=%v", paymentID, err)
		return PaymentEventResult{}, err
	}
	log.Printf("[webhook][usecase] payment fetched payment_id=%s status=%s external_reference=%s", payment.ID, payment.Status, payment.ExternalReference)

	target := NormalizeMercadoPagoStatus(payment.Status)
	order, applied, err := u.reconciler.TransitionByExternalReference(ctx, payment.ExternalReference, target)
	if err != nil {
		return PaymentEventResult{}, err
	}
	return PaymentEventResult{Handled: true, Applied: applied, Order: order}, nil
}

// NormalizeMercadoPagoStatus maps the gateway's collection_status vocabulary
// onto the internal one. Interim states (and anything unrecognized) map to
// pending, which the reconciliation core treats as a no-op.
func NormalizeMercadoPagoStatus(status string) entities.OrderStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return entities.OrderStatusApproved
	case "rejected", "cancelled":
		return entities.OrderStatusRejected
	case "refunded":
		return entities.OrderStatusRefunded
	case "charged_back":
		return entities.OrderStatusChargedBack
	case "pending", "in_process", "in_mediation", "authorized":
		return entities.OrderStatusPending
	default:
		log.Printf("[webhook][usecase] unrecognized gateway status %q, treating as pending", status)
		return entities.OrderStatusPending
	}
}

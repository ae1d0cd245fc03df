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
	ErrInvalidCaptureToken       = errors.New("invalid capture token")
	ErrCaptureGatewayUnavailable = errors.New("capture gateway not configured")
)

// paypalCaptureCompleted is the only provider status treated as a settled
// payment. Everything else (PENDING, DECLINED, interim review states) reports
// pending — the conservative default, since the provider may still complete.
const paypalCaptureCompleted = "COMPLETED"

// CaptureResult is what the end user gets back from a finalize call.
type CaptureResult struct {
	Status  entities.OrderStatus
	Applied bool
	Order   entities.Order
}

// ICaptureUseCase finalizes a synchronous gateway payment.
//
// The order id normally travels through the client; when the client drops it,
// the custom id echoed inside the provider's capture result is used instead.
// With no id resolvable at all the capture outcome is still reported, but no
// order is mutated — the stale-pending sweep eventually reconciles it.

type ICaptureUseCase interface {
	FinalizeCapture(ctx context.Context, token, orderID string) (CaptureResult, error)
}

type CaptureUseCase struct {
	gateway    interfaces.ICaptureGateway
	reconciler IReconciliationUseCase
}

var _ ICaptureUseCase = (*CaptureUseCase)(nil)

func NewCaptureUseCase(gateway interfaces.ICaptureGateway, reconciler IReconciliationUseCase) *CaptureUseCase {
	return &CaptureUseCase{gateway: gateway, reconciler: reconciler}
}

func (u *CaptureUseCase) FinalizeCapture(ctx context.Context, token, orderID string) (CaptureResult, error) {
	token = strings.TrimSpace(token)
	orderID = strings.TrimSpace(orderID)
	log.Printf("[capture][usecase] finalize start token=%s order_id=%q", token, orderID)

	if token == "" {
		return CaptureResult{}, ErrInvalidCaptureToken
	}
	if u.gateway == nil {
		return CaptureResult{}, ErrCaptureGatewayUnavailable
	}

	capture, err := u.gateway.CaptureOrder(ctx, token)
	if err != nil {
		log.Printf("[capture][usecase] gateway capture failed token=%s err=%v", token, err)
		return CaptureResult{}, err
	}

	status := NormalizePayPalCaptureStatus(capture.Status)
	log.Printf("[capture][usecase] capture executed token=%s provider_status=%s status=%s", token, capture.Status, status)

	if orderID == "" {
		orderID = strings.TrimSpace(capture.CustomID)
		if orderID != "" {
			log.Printf("[capture][usecase] order id recovered from capture custom_id order_id=%s", orderID)
		}
	}
	if orderID == "" {
		// Reduced-reliability path: the capture settled at the provider but no
		// local order can be correlated. Reported, never fabricated.
		log.Printf("[capture][usecase] no order id resolvable, skipping transition token=%s", token)
		return CaptureResult{Status: status}, nil
	}

	if status != entities.OrderStatusApproved {
		order, _, err := u.reconciler.TransitionByOrderID(ctx, orderID, entities.OrderStatusPending)
		if err != nil {
			return CaptureResult{}, err
		}
		return CaptureResult{Status: status, Order: order}, nil
	}

	order, applied, err := u.reconciler.TransitionByOrderID(ctx, orderID, entities.OrderStatusApproved)
	if err != nil {
		return CaptureResult{}, err
	}
	log.Printf("[capture][usecase] finalize success order_id=%s applied=%t", order.ID, applied)
	return CaptureResult{Status: status, Applied: applied, Order: order}, nil
}

// NormalizePayPalCaptureStatus maps the capture vocabulary onto the internal
// one. Only COMPLETED means approved.
func NormalizePayPalCaptureStatus(status string) entities.OrderStatus {
	if strings.EqualFold(strings.TrimSpace(status), paypalCaptureCompleted) {
		return entities.OrderStatusApproved
	}
	return entities.OrderStatusPending
}

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
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrInvalidExternalRef      = errors.New("invalid external reference")
	ErrOrderRepoNotConfigured  = errors.New("order repository not configured")
	ErrUnknownTransitionTarget = errors.New("unknown transition target status")
)

// IReconciliationUseCase is the single mutation point for order status.
//
// Both ingestion paths (webhook and capture) and the stale-pending sweep feed
// their normalized outcome through here. The applied flag distinguishes an
// effective transition from an idempotent no-op; duplicate or out-of-order
// deliveries are an expected operating condition, not an error.

type IReconciliationUseCase interface {
	TransitionByOrderID(ctx context.Context, orderID string, target entities.OrderStatus) (order entities.Order, applied bool, err error)
	TransitionByExternalReference(ctx context.Context, externalReference string, target entities.OrderStatus) (order entities.Order, applied bool, err error)
}

type ReconciliationUseCase struct {
	orders   interfaces.IOrderRepository
	notifier interfaces.IFulfillmentNotifier
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(orders interfaces.IOrderRepository, notifier interfaces.IFulfillmentNotifier) *ReconciliationUseCase {
	return &ReconciliationUseCase{orders: orders, notifier: notifier}
}

func (u *ReconciliationUseCase) TransitionByOrderID(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, bool, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, false, ErrInvalidOrderID
	}
	if u.orders == nil {
		return entities.Order{}, false, ErrOrderRepoNotConfigured
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[reconciliation][usecase] load by id failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, false, err
	}
	if order.ID == "" {
		log.Printf("[reconciliation][usecase] order not found order_id=%s", orderID)
		return entities.Order{}, false, ErrOrderNotFound
	}
	return u.transition(ctx, order, target)
}

func (u *ReconciliationUseCase) TransitionByExternalReference(ctx context.Context, externalReference string, target entities.OrderStatus) (entities.Order, bool, error) {
	externalReference = strings.TrimSpace(externalReference)
	if externalReference == "" {
		return entities.Order{}, false, ErrInvalidExternalRef
	}
	if u.orders == nil {
		return entities.Order{}, false, ErrOrderRepoNotConfigured
	}

	order, err := u.orders.GetByExternalReference(ctx, externalReference)
	if err != nil {
		log.Printf("[reconciliation][usecase] load by reference failed external_reference=%s err=%v", externalReference, err)
		return entities.Order{}, false, err
	}
	if order.ID == "" {
		log.Printf("[reconciliation][usecase] order not found external_reference=%s", externalReference)
		return entities.Order{}, false, ErrOrderNotFound
	}
	return u.transition(ctx, order, target)
}

// transition applies the one-way state machine:
//
//	pending  -> approved | rejected
//	approved -> refunded | charged_back
//
// A pending target is always a no-op (the gateway reported an interim state).
// Everything else is attempted as a storage-level compare-and-set; a failed
// condition means another delivery already moved the order, which is reported
// as applied == false with the current state, never as an error.
func (u *ReconciliationUseCase) transition(ctx context.Context, order entities.Order, target entities.OrderStatus) (entities.Order, bool, error) {
	if target == entities.OrderStatusPending {
		log.Printf("[reconciliation][usecase] interim status reported, nothing to apply order_id=%s status=%s", order.ID, order.Status)
		return order, false, nil
	}

	source, ok := entities.TransitionSource(target)
	if !ok {
		log.Printf("[reconciliation][usecase] unknown target status order_id=%s target=%s", order.ID, target)
		return entities.Order{}, false, ErrUnknownTransitionTarget
	}
	if order.Status != source {
		log.Printf("[reconciliation][usecase] transition not reachable, no-op order_id=%s current=%s target=%s", order.ID, order.Status, target)
		return order, false, nil
	}

	updated, applied, err := u.orders.TransitionStatus(ctx, order.ID, source, target)
	if err != nil {
		log.Printf("[reconciliation][usecase] conditional update failed order_id=%s target=%s err=%v", order.ID, target, err)
		return entities.Order{}, false, err
	}
	if !applied {
		// Lost the race to a concurrent delivery. Re-read so the caller sees
		// the state that actually won.
		current, err := u.orders.GetByID(ctx, order.ID)
		if err != nil {
			return entities.Order{}, false, err
		}
		log.Printf("[reconciliation][usecase] duplicate delivery, already settled order_id=%s status=%s", order.ID, current.Status)
		return current, false, nil
	}

	log.Printf("[reconciliation][usecase] transition applied order_id=%s %s->%s", updated.ID, source, target)
	if target == entities.OrderStatusApproved && u.notifier != nil {
		u.notifier.OrderApproved(ctx, updated)
	}
	return updated, true, nil
}

package fulfillment

import (
	"context"
	"log"

	"tienda_checkout/internal/domain/entities"
	"tienda_checkout/internal/usecase/interfaces"
)

// LogNotifier is the default fulfillment hook: it records the approval and
// nothing more. Real fulfillment lives in another service; whatever replaces
// this keeps the at-most-once guarantee the reconciliation core provides.
type LogNotifier struct{}

var _ interfaces.IFulfillmentNotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) OrderApproved(_ context.Context, order entities.Order) {
	log.Printf("[fulfillment][notifier] order approved order_id=%s total=%.2f method=%s", order.ID, order.TotalAmount, order.PaymentMethod)
}

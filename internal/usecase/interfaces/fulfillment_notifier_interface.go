package interfaces

import (
	"context"

	"tienda_checkout/internal/domain/entities"
)

// IFulfillmentNotifier is the downstream hook fired on the effective
// pending -> approved transition. The reconciliation core guarantees it fires
// at most once per order; fulfillment itself lives outside this service.
type IFulfillmentNotifier interface {
	OrderApproved(ctx context.Context, order entities.Order)
}

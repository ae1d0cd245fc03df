package interfaces

import (
	"context"
	"time"

	"tienda_checkout/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// TransitionStatus is the only write path for Order.Status in the whole
// system. It must be an atomic conditional update at the storage layer: the
// write succeeds only while the stored status still equals from, so two
// concurrent deliveries for the same order race safely — the first one wins,
// the loser observes applied == false.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByExternalReference(ctx context.Context, externalReference string) (entities.Order, error)
	SetGatewayOrderID(ctx context.Context, id, gatewayOrderID string) error
	TransitionStatus(ctx context.Context, id string, from, to entities.OrderStatus) (order entities.Order, applied bool, err error)
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]entities.Order, error)
}

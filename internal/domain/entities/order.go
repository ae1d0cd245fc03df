package entities

import "time"

// OrderStatus represents the reconciliation outcome of an order.
//
// Domain notes:
//   - An order is created pending before the payer ever reaches a gateway.
//   - Status only moves forward; terminal states are kept for audit, never deleted.

type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "pending"
	OrderStatusApproved    OrderStatus = "approved"
	OrderStatusRejected    OrderStatus = "rejected"
	OrderStatusRefunded    OrderStatus = "refunded"
	OrderStatusChargedBack OrderStatus = "charged_back"
)

// PaymentMethod selects which external gateway handles the checkout.

type PaymentMethod string

const (
	PaymentMethodMercadoPago PaymentMethod = "mercadopago"
	PaymentMethodPayPal      PaymentMethod = "paypal"
)

// transitionSources holds the single allowed source status for each reachable
// target. Anything not listed here (including pending itself) is never a valid
// transition target.
var transitionSources = map[OrderStatus]OrderStatus{
	OrderStatusApproved:    OrderStatusPending,
	OrderStatusRejected:    OrderStatusPending,
	OrderStatusRefunded:    OrderStatusApproved,
	OrderStatusChargedBack: OrderStatusApproved,
}

// TransitionSource returns the status an order must currently hold for target
// to be applied. ok is false when target is not a reachable status.
func TransitionSource(target OrderStatus) (OrderStatus, bool) {
	src, ok := transitionSources[target]
	return src, ok
}

// IsTerminal reports whether no further transition can leave the status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusRejected || s == OrderStatusRefunded || s == OrderStatusChargedBack
}

// OrderItem is a priced line captured at checkout time. UnitPrice is the
// catalog price at the moment the order was placed; later catalog changes
// never alter a placed order.

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is the aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (external_reference-index): external_reference
//
// ExternalReference correlates the order with the MercadoPago preference; it is
// echoed back unmodified in every notification about that payment.
// GatewayOrderID holds the PayPal order id for paypal checkouts (empty for
// mercadopago) so stale pending orders can be re-queried authoritatively.

type Order struct {
	ID                string        `json:"id"`
	Status            OrderStatus   `json:"status"`
	TotalAmount       float64       `json:"total_amount"`
	Items             []OrderItem   `json:"items"`
	ExternalReference string        `json:"external_reference"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	GatewayOrderID    string        `json:"gateway_order_id,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ComputeTotal sums quantity*unit_price over the items.
func ComputeTotal(items []OrderItem) float64 {
	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}

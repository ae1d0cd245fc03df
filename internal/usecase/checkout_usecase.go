package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"tienda_checkout/internal/domain/entities"
	"tienda_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart               = errors.New("cart is empty")
	ErrInvalidQuantity         = errors.New("invalid item quantity")
	ErrInvalidProductID        = errors.New("invalid product id")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrProductNotFound         = errors.New("product not found")
	ErrProductUnavailable      = errors.New("product unavailable")
	ErrCatalogNotConfigured    = errors.New("catalog repository not configured")
	ErrGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrGatewayRegistration     = errors.New("payment gateway registration failed")
	ErrOrderStoreNotConfigured = errors.New("order repository not configured")
)

// CheckoutItem is the client-facing cart line. Prices never come from the
// client; they are resolved against the catalog at checkout time.
type CheckoutItem struct {
	ProductID string
	Quantity  int
}

// CheckoutResult couples the persisted pending order with the gateway
// redirect URL the payer is sent to.
type CheckoutResult struct {
	Order       entities.Order
	RedirectURL string
}

// ICheckoutUseCase builds a payment intent from a cart.
//
// The pending order is persisted before the gateway registration: a
// registration failure leaves an orphaned pending record behind, which is
// acceptable — it is never confirmed and the stale-pending sweep re-checks it.

type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, items []CheckoutItem, method entities.PaymentMethod) (CheckoutResult, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
}

type CheckoutUseCase struct {
	orders     interfaces.IOrderRepository
	catalog    interfaces.ICatalogRepository
	preference interfaces.IPreferenceGateway
	capture    interfaces.ICaptureGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(orders interfaces.IOrderRepository, catalog interfaces.ICatalogRepository, preference interfaces.IPreferenceGateway, capture interfaces.ICaptureGateway) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, catalog: catalog, preference: preference, capture: capture}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, items []CheckoutItem, method entities.PaymentMethod) (CheckoutResult, error) {
	log.Printf("[checkout][usecase] create start items=%d method=%s", len(items), method)

	if len(items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}
	for _, it := range items {
		if strings.TrimSpace(it.ProductID) == "" {
			return CheckoutResult{}, ErrInvalidProductID
		}
		if it.Quantity <= 0 {
			return CheckoutResult{}, ErrInvalidQuantity
		}
	}
	if method != entities.PaymentMethodMercadoPago && method != entities.PaymentMethodPayPal {
		return CheckoutResult{}, ErrInvalidPaymentMethod
	}
	if u.orders == nil {
		return CheckoutResult{}, ErrOrderStoreNotConfigured
	}
	if u.catalog == nil {
		return CheckoutResult{}, ErrCatalogNotConfigured
	}

	// Price the cart server-side. Everything is resolved before any write so a
	// bad cart never leaves a record behind.
	priced := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		product, err := u.catalog.GetByID(ctx, it.ProductID)
		if err != nil {
			log.Printf("[checkout][usecase] catalog lookup failed product_id=%s err=%v", it.ProductID, err)
			return CheckoutResult{}, err
		}
		if product.ID == "" {
			log.Printf("[checkout][usecase] product not found product_id=%s", it.ProductID)
			return CheckoutResult{}, ErrProductNotFound
		}
		if !product.Available {
			log.Printf("[checkout][usecase] product unavailable product_id=%s", it.ProductID)
			return CheckoutResult{}, ErrProductUnavailable
		}
		priced = append(priced, entities.OrderItem{
			ProductID: product.ID,
			Quantity:  it.Quantity,
			UnitPrice: product.UnitPrice,
		})
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:                uuid.NewString(),
		Status:            entities.OrderStatusPending,
		TotalAmount:       entities.ComputeTotal(priced),
		Items:             priced,
		ExternalReference: uuid.NewString(),
		PaymentMethod:     method,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	order, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[checkout][usecase] order create failed err=%v", err)
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] pending order persisted order_id=%s external_reference=%s total=%.2f", order.ID, order.ExternalReference, order.TotalAmount)

	redirectURL, err := u.registerIntent(ctx, &order)
	if err != nil {
		// The pending order stays behind on purpose; see ICheckoutUseCase doc.
		log.Printf("[checkout][usecase] gateway registration failed order_id=%s method=%s err=%v", order.ID, method, err)
		return CheckoutResult{}, err
	}

	log.Printf("[checkout][usecase] create success order_id=%s method=%s", order.ID, method)
	return CheckoutResult{Order: order, RedirectURL: redirectURL}, nil
}

func (u *CheckoutUseCase) registerIntent(ctx context.Context, order *entities.Order) (string, error) {
	switch order.PaymentMethod {
	case entities.PaymentMethodMercadoPago:
		if u.preference == nil {
			return "", ErrGatewayNotConfigured
		}
		return u.preference.CreatePreference(ctx, *order)
	case entities.PaymentMethodPayPal:
		if u.capture == nil {
			return "", ErrGatewayNotConfigured
		}
		gatewayOrderID, redirectURL, err := u.capture.CreateOrder(ctx, *order)
		if err != nil {
			return "", err
		}
		if err := u.orders.SetGatewayOrderID(ctx, order.ID, gatewayOrderID); err != nil {
			log.Printf("[checkout][usecase] storing gateway order id failed order_id=%s gateway_order_id=%s err=%v", order.ID, gatewayOrderID, err)
			return "", err
		}
		order.GatewayOrderID = gatewayOrderID
		return redirectURL, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func (u *CheckoutUseCase) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

package worker

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"tienda_checkout/internal/domain/entities"
	"tienda_checkout/internal/usecase"
	"tienda_checkout/internal/usecase/interfaces"
)

const (
	defaultSweepInterval  = 5 * time.Minute
	defaultSweepMinAge    = 30 * time.Minute
	defaultSweepBatchSize = 25
)

// PendingSweep periodically re-queries gateways for orders stuck in pending.
//
// A pending order goes stale when its confirmation never arrives: the client
// dropped the capture call, the webhook endpoint was unreachable, or the
// payer abandoned checkout. The sweep asks the owning gateway for its own
// record and feeds any outcome through the same reconciliation transition as
// the live paths, so it is just as idempotent.
type PendingSweep struct {
	orders     interfaces.IOrderRepository
	preference interfaces.IPreferenceGateway
	capture    interfaces.ICaptureGateway
	reconciler usecase.IReconciliationUseCase

	interval  time.Duration
	minAge    time.Duration
	batchSize int
}

func NewPendingSweep(orders interfaces.IOrderRepository, preference interfaces.IPreferenceGateway, capture interfaces.ICaptureGateway, reconciler usecase.IReconciliationUseCase, interval, minAge time.Duration, batchSize int) *PendingSweep {
	return &PendingSweep{
		orders:     orders,
		preference: preference,
		capture:    capture,
		reconciler: reconciler,
		interval:   interval,
		minAge:     minAge,
		batchSize:  batchSize,
	}
}

// NewPendingSweepFromEnv builds the sweep from PENDING_SWEEP_* env vars.
// enabled is false unless PENDING_SWEEP_ENABLED is set to a truthy value.
func NewPendingSweepFromEnv(orders interfaces.IOrderRepository, preference interfaces.IPreferenceGateway, capture interfaces.ICaptureGateway, reconciler usecase.IReconciliationUseCase) (*PendingSweep, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PENDING_SWEEP_ENABLED"))) {
	case "1", "true", "yes", "on":
	default:
		return nil, false
	}

	interval := durationFromEnv("PENDING_SWEEP_INTERVAL_SECONDS", defaultSweepInterval)
	minAge := durationFromEnv("PENDING_SWEEP_MIN_AGE_SECONDS", defaultSweepMinAge)
	batchSize := defaultSweepBatchSize
	if v, err := strconv.Atoi(os.Getenv("PENDING_SWEEP_BATCH_SIZE")); err == nil && v > 0 {
		batchSize = v
	}

	return NewPendingSweep(orders, preference, capture, reconciler, interval, minAge, batchSize), true
}

func (w *PendingSweep) Start(ctx context.Context) {
	log.Printf("[sweep][worker] starting interval=%s min_age=%s batch=%d", w.interval, w.minAge, w.batchSize)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[sweep][worker] stopped")
			return
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				log.Printf("[sweep][worker] pass failed err=%v", err)
			}
		}
	}
}

// RunOnce performs a single sweep pass. Per-order failures are logged and
// skipped; only listing failures abort the pass.
func (w *PendingSweep) RunOnce(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-w.minAge)
	orders, err := w.orders.ListStalePending(ctx, cutoff, w.batchSize)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}
	log.Printf("[sweep][worker] pass start stale_pending=%d cutoff=%s", len(orders), cutoff.Format(time.RFC3339))

	for _, order := range orders {
		if err := w.reconcileOrder(ctx, order); err != nil {
			log.Printf("[sweep][worker] reconcile failed order_id=%s err=%v", order.ID, err)
		}
	}
	return nil
}

func (w *PendingSweep) reconcileOrder(ctx context.Context, order entities.Order) error {
	switch order.PaymentMethod {
	case entities.PaymentMethodMercadoPago:
		if w.preference == nil {
			return nil
		}
		payment, found, err := w.preference.SearchPaymentByReference(ctx, order.ExternalReference)
		if err != nil {
			return err
		}
		if !found {
			// Payer never completed checkout; nothing to reconcile.
			return nil
		}
		target := usecase.NormalizeMercadoPagoStatus(payment.Status)
		_, applied, err := w.reconciler.TransitionByOrderID(ctx, order.ID, target)
		if err != nil {
			return err
		}
		if applied {
			log.Printf("[sweep][worker] reconciled order_id=%s target=%s", order.ID, target)
		}
		return nil

	case entities.PaymentMethodPayPal:
		if w.capture == nil || order.GatewayOrderID == "" {
			return nil
		}
		status, err := w.capture.GetOrderStatus(ctx, order.GatewayOrderID)
		if err != nil {
			return err
		}
		target := normalizePayPalOrderStatus(status)
		if target == entities.OrderStatusPending {
			return nil
		}
		_, applied, err := w.reconciler.TransitionByOrderID(ctx, order.ID, target)
		if err != nil {
			return err
		}
		if applied {
			log.Printf("[sweep][worker] reconciled order_id=%s target=%s", order.ID, target)
		}
		return nil
	}
	return nil
}

// normalizePayPalOrderStatus maps the provider's order lifecycle onto the
// internal vocabulary. CREATED/SAVED/APPROVED/PAYER_ACTION_REQUIRED are all
// still in flight.
func normalizePayPalOrderStatus(status string) entities.OrderStatus {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "COMPLETED":
		return entities.OrderStatusApproved
	case "VOIDED":
		return entities.OrderStatusRejected
	default:
		return entities.OrderStatusPending
	}
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return time.Duration(v) * time.Second
	}
	return def
}

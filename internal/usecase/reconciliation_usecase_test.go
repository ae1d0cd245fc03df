package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tienda_checkout/internal/domain/entities"
	mock_interfaces "tienda_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// memOrderRepo is an in-memory IOrderRepository with real compare-and-set
// semantics, used where gomock expectations cannot express a race.
type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]entities.Order
}

func newMemOrderRepo(orders ...entities.Order) *memOrderRepo {
	m := &memOrderRepo{orders: map[string]entities.Order{}}
	for _, o := range orders {
		m.orders[o.ID] = o
	}
	return m
}

func (m *memOrderRepo) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[o.ID]; ok {
		return entities.Order{}, errors.New("order already exists")
	}
	m.orders[o.ID] = o
	return o, nil
}

func (m *memOrderRepo) GetByID(_ context.Context, id string) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[id], nil
}

func (m *memOrderRepo) GetByExternalReference(_ context.Context, ref string) (entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ExternalReference == ref {
			return o, nil
		}
	}
	return entities.Order{}, nil
}

func (m *memOrderRepo) SetGatewayOrderID(_ context.Context, id, gatewayOrderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	o.GatewayOrderID = gatewayOrderID
	m.orders[id] = o
	return nil
}

func (m *memOrderRepo) TransitionStatus(_ context.Context, id string, from, to entities.OrderStatus) (entities.Order, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.Status != from {
		return entities.Order{}, false, nil
	}
	o.Status = to
	o.UpdatedAt = time.Now().UTC()
	m.orders[id] = o
	return o, true, nil
}

func (m *memOrderRepo) ListStalePending(_ context.Context, olderThan time.Time, limit int) ([]entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Order
	for _, o := range m.orders {
		if o.Status == entities.OrderStatusPending && o.CreatedAt.Before(olderThan) && len(out) < limit {
			out = append(out, o)
		}
	}
	return out, nil
}

// countingNotifier records fulfillment triggers; safe for concurrent use.
type countingNotifier struct {
	mu    sync.Mutex
	calls int
}

func (n *countingNotifier) OrderApproved(_ context.Context, _ entities.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
}

func (n *countingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

func pendingOrder(id, ref string) entities.Order {
	now := time.Now().UTC().Add(-time.Hour)
	return entities.Order{
		ID:                id,
		Status:            entities.OrderStatusPending,
		TotalAmount:       30,
		Items:             []entities.OrderItem{{ProductID: "prod-a", Quantity: 3, UnitPrice: 10}},
		ExternalReference: ref,
		PaymentMethod:     entities.PaymentMethodMercadoPago,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func TestReconciliation_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewReconciliationUseCase(nil, nil)
		_, _, err := uc.TransitionByOrderID(context.Background(), "  ", entities.OrderStatusApproved)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("empty external reference", func(t *testing.T) {
		uc := NewReconciliationUseCase(nil, nil)
		_, _, err := uc.TransitionByExternalReference(context.Background(), "", entities.OrderStatusApproved)
		if !errors.Is(err, ErrInvalidExternalRef) {
			t.Fatalf("expected ErrInvalidExternalRef, got %v", err)
		}
	})

	t.Run("repository not configured", func(t *testing.T) {
		uc := NewReconciliationUseCase(nil, nil)
		_, _, err := uc.TransitionByOrderID(context.Background(), "ord-1", entities.OrderStatusApproved)
		if !errors.Is(err, ErrOrderRepoNotConfigured) {
			t.Fatalf("expected ErrOrderRepoNotConfigured, got %v", err)
		}
	})
}

func TestReconciliation_UnknownOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewReconciliationUseCase(repo, nil)

	repo.EXPECT().GetByExternalReference(gomock.Any(), "ref-missing").Return(entities.Order{}, nil)

	_, applied, err := uc.TransitionByExternalReference(context.Background(), "ref-missing", entities.OrderStatusApproved)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if applied {
		t.Fatal("no transition should be applied for an unknown reference")
	}
}

func TestReconciliation_AppliesForwardTransitions(t *testing.T) {
	cases := []struct {
		name   string
		start  entities.OrderStatus
		target entities.OrderStatus
	}{
		{"pending to approved", entities.OrderStatusPending, entities.OrderStatusApproved},
		{"pending to rejected", entities.OrderStatusPending, entities.OrderStatusRejected},
		{"approved to refunded", entities.OrderStatusApproved, entities.OrderStatusRefunded},
		{"approved to charged_back", entities.OrderStatusApproved, entities.OrderStatusChargedBack},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := pendingOrder("ord-1", "ref-1")
			o.Status = tc.start
			repo := newMemOrderRepo(o)
			notifier := &countingNotifier{}
			uc := NewReconciliationUseCase(repo, notifier)

			updated, applied, err := uc.TransitionByOrderID(context.Background(), "ord-1", tc.target)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !applied {
				t.Fatal("expected transition to apply")
			}
			if updated.Status != tc.target {
				t.Fatalf("expected status %s, got %s", tc.target, updated.Status)
			}

			wantCalls := 0
			if tc.target == entities.OrderStatusApproved {
				wantCalls = 1
			}
			if notifier.count() != wantCalls {
				t.Fatalf("expected %d fulfillment notifications, got %d", wantCalls, notifier.count())
			}
		})
	}
}

func TestReconciliation_IdempotentReplay(t *testing.T) {
	repo := newMemOrderRepo(pendingOrder("ord-1", "ref-1"))
	notifier := &countingNotifier{}
	uc := NewReconciliationUseCase(repo, notifier)

	first, applied, err := uc.TransitionByExternalReference(context.Background(), "ref-1", entities.OrderStatusApproved)
	if err != nil || !applied {
		t.Fatalf("first delivery should apply: applied=%t err=%v", applied, err)
	}

	second, applied, err := uc.TransitionByExternalReference(context.Background(), "ref-1", entities.OrderStatusApproved)
	if err != nil {
		t.Fatalf("replay must not fail: %v", err)
	}
	if applied {
		t.Fatal("replay must be a no-op")
	}
	if second.Status != first.Status {
		t.Fatalf("replay changed final status: %s != %s", second.Status, first.Status)
	}
	if notifier.count() != 1 {
		t.Fatalf("fulfillment must trigger exactly once, got %d", notifier.count())
	}
}

func TestReconciliation_OutOfOrderDelivery(t *testing.T) {
	repo := newMemOrderRepo(pendingOrder("ord-1", "ref-1"))
	uc := NewReconciliationUseCase(repo, &countingNotifier{})

	if _, applied, err := uc.TransitionByOrderID(context.Background(), "ord-1", entities.OrderStatusApproved); err != nil || !applied {
		t.Fatalf("approved delivery should apply: applied=%t err=%v", applied, err)
	}

	// Late rejected notification must not revert the order.
	order, applied, err := uc.TransitionByOrderID(context.Background(), "ord-1", entities.OrderStatusRejected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Fatal("late rejected delivery must be a no-op")
	}
	if order.Status != entities.OrderStatusApproved {
		t.Fatalf("order reverted to %s", order.Status)
	}
}

func TestReconciliation_TerminalStateImmutability(t *testing.T) {
	o := pendingOrder("ord-1", "ref-1")
	o.Status = entities.OrderStatusRefunded
	repo := newMemOrderRepo(o)
	uc := NewReconciliationUseCase(repo, &countingNotifier{})

	for _, target := range []entities.OrderStatus{entities.OrderStatusApproved, entities.OrderStatusRejected} {
		order, applied, err := uc.TransitionByOrderID(context.Background(), "ord-1", target)
		if err != nil {
			t.Fatalf("unexpected error for target %s: %v", target, err)
		}
		if applied {
			t.Fatalf("transition out of refunded applied for target %s", target)
		}
		if order.Status != entities.OrderStatusRefunded {
			t.Fatalf("refunded order mutated to %s", order.Status)
		}
	}
}

func TestReconciliation_PendingTargetIsNoOp(t *testing.T) {
	repo := newMemOrderRepo(pendingOrder("ord-1", "ref-1"))
	notifier := &countingNotifier{}
	uc := NewReconciliationUseCase(repo, notifier)

	order, applied, err := uc.TransitionByOrderID(context.Background(), "ord-1", entities.OrderStatusPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Fatal("pending target must never apply")
	}
	if order.Status != entities.OrderStatusPending {
		t.Fatalf("unexpected status %s", order.Status)
	}
	if notifier.count() != 0 {
		t.Fatal("pending target must not trigger fulfillment")
	}
}

func TestReconciliation_ConcurrentDuplicateDeliveries(t *testing.T) {
	repo := newMemOrderRepo(pendingOrder("ord-1", "ref-1"))
	notifier := &countingNotifier{}
	uc := NewReconciliationUseCase(repo, notifier)

	const workers = 16
	var wg sync.WaitGroup
	applies := make(chan bool, workers)
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, applied, err := uc.TransitionByOrderID(context.Background(), "ord-1", entities.OrderStatusApproved)
			applies <- applied
			errs <- err
		}()
	}
	wg.Wait()
	close(applies)
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("duplicate delivery errored: %v", err)
		}
	}

	appliedCount := 0
	for applied := range applies {
		if applied {
			appliedCount++
		}
	}
	if appliedCount != 1 {
		t.Fatalf("expected exactly one effective transition, got %d", appliedCount)
	}
	if notifier.count() != 1 {
		t.Fatalf("expected exactly one fulfillment notification, got %d", notifier.count())
	}

	final, _ := repo.GetByID(context.Background(), "ord-1")
	if final.Status != entities.OrderStatusApproved {
		t.Fatalf("unexpected final status %s", final.Status)
	}
}

func TestReconciliation_StorageErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewReconciliationUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("dynamo down"))

	_, _, err := uc.TransitionByOrderID(context.Background(), "ord-1", entities.OrderStatusApproved)
	if err == nil || err.Error() != "dynamo down" {
		t.Fatalf("expected storage error, got %v", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"tienda_checkout/internal/domain/entities"
	mock_interfaces "tienda_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func paypalPendingOrder(id string) entities.Order {
	o := pendingOrder(id, "ref-"+id)
	o.PaymentMethod = entities.PaymentMethodPayPal
	o.GatewayOrderID = "PAYPAL-" + id
	return o
}

func TestFinalizeCapture_Validations(t *testing.T) {
	t.Run("blank token", func(t *testing.T) {
		uc := NewCaptureUseCase(nil, nil)
		_, err := uc.FinalizeCapture(context.Background(), "  ", "ord-1")
		if !errors.Is(err, ErrInvalidCaptureToken) {
			t.Fatalf("expected ErrInvalidCaptureToken, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCaptureUseCase(nil, nil)
		_, err := uc.FinalizeCapture(context.Background(), "tok-1", "ord-1")
		if !errors.Is(err, ErrCaptureGatewayUnavailable) {
			t.Fatalf("expected ErrCaptureGatewayUnavailable, got %v", err)
		}
	})
}

func TestFinalizeCapture_CompletedApprovesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_interfaces.NewMockICaptureGateway(ctrl)
	repo := newMemOrderRepo(paypalPendingOrder("ord-1"))
	notifier := &countingNotifier{}
	uc := NewCaptureUseCase(gateway, NewReconciliationUseCase(repo, notifier))

	gateway.EXPECT().CaptureOrder(gomock.Any(), "tok-1").
		Return(entities.GatewayCapture{ID: "cap-1", Status: "COMPLETED", CustomID: "ord-1"}, nil)

	result, err := uc.FinalizeCapture(context.Background(), "tok-1", "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != entities.OrderStatusApproved || !result.Applied {
		t.Fatalf("expected applied approval, got %+v", result)
	}
	if result.Order.Status != entities.OrderStatusApproved {
		t.Fatalf("unexpected order status %s", result.Order.Status)
	}
	if notifier.count() != 1 {
		t.Fatalf("expected one fulfillment notification, got %d", notifier.count())
	}
}

func TestFinalizeCapture_RetryIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_interfaces.NewMockICaptureGateway(ctrl)
	repo := newMemOrderRepo(paypalPendingOrder("ord-1"))
	notifier := &countingNotifier{}
	uc := NewCaptureUseCase(gateway, NewReconciliationUseCase(repo, notifier))

	// Provider captures are idempotent: a retried finalize returns the same
	// COMPLETED result.
	gateway.EXPECT().CaptureOrder(gomock.Any(), "tok-1").
		Return(entities.GatewayCapture{ID: "cap-1", Status: "COMPLETED", CustomID: "ord-1"}, nil).
		Times(2)

	if _, err := uc.FinalizeCapture(context.Background(), "tok-1", "ord-1"); err != nil {
		t.Fatalf("first finalize failed: %v", err)
	}

	result, err := uc.FinalizeCapture(context.Background(), "tok-1", "ord-1")
	if err != nil {
		t.Fatalf("retry must not fail: %v", err)
	}
	if result.Applied {
		t.Fatal("retry must be a no-op")
	}
	if result.Order.Status != entities.OrderStatusApproved {
		t.Fatalf("unexpected status %s", result.Order.Status)
	}
	if notifier.count() != 1 {
		t.Fatalf("fulfillment must trigger exactly once, got %d", notifier.count())
	}
}

func TestFinalizeCapture_CustomIDFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_interfaces.NewMockICaptureGateway(ctrl)
	repo := newMemOrderRepo(paypalPendingOrder("ord-1"))
	uc := NewCaptureUseCase(gateway, NewReconciliationUseCase(repo, nil))

	gateway.EXPECT().CaptureOrder(gomock.Any(), "tok-1").
		Return(entities.GatewayCapture{ID: "cap-1", Status: "COMPLETED", CustomID: "ord-1"}, nil)

	// Client dropped the order id; the custom id echoed by the provider links
	// the capture back.
	result, err := uc.FinalizeCapture(context.Background(), "tok-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Applied || result.Order.ID != "ord-1" {
		t.Fatalf("custom id fallback did not resolve order: %+v", result)
	}
}

func TestFinalizeCapture_NoResolvableOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_interfaces.NewMockICaptureGateway(ctrl)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewCaptureUseCase(gateway, NewReconciliationUseCase(repo, nil))

	// No CustomID, no client order id: the outcome is reported and nothing is
	// read or written.
	gateway.EXPECT().CaptureOrder(gomock.Any(), "tok-1").
		Return(entities.GatewayCapture{ID: "cap-1", Status: "COMPLETED"}, nil)

	result, err := uc.FinalizeCapture(context.Background(), "tok-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != entities.OrderStatusApproved {
		t.Fatalf("capture outcome must still be reported, got %s", result.Status)
	}
	if result.Applied || result.Order.ID != "" {
		t.Fatalf("no order must be touched: %+v", result)
	}
}

func TestFinalizeCapture_NonCompletedLeavesOrderPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_interfaces.NewMockICaptureGateway(ctrl)
	repo := newMemOrderRepo(paypalPendingOrder("ord-1"))
	uc := NewCaptureUseCase(gateway, NewReconciliationUseCase(repo, nil))

	gateway.EXPECT().CaptureOrder(gomock.Any(), "tok-1").
		Return(entities.GatewayCapture{ID: "cap-1", Status: "PENDING", CustomID: "ord-1"}, nil)

	result, err := uc.FinalizeCapture(context.Background(), "tok-1", "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != entities.OrderStatusPending || result.Applied {
		t.Fatalf("non-completed capture must not settle the order: %+v", result)
	}

	current, _ := repo.GetByID(context.Background(), "ord-1")
	if current.Status != entities.OrderStatusPending {
		t.Fatalf("order mutated to %s", current.Status)
	}
}

func TestFinalizeCapture_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock_interfaces.NewMockICaptureGateway(ctrl)
	uc := NewCaptureUseCase(gateway, nil)

	boom := errors.New("paypal 500")
	gateway.EXPECT().CaptureOrder(gomock.Any(), "tok-1").Return(entities.GatewayCapture{}, boom)

	_, err := uc.FinalizeCapture(context.Background(), "tok-1", "ord-1")
	if !errors.Is(err, boom) {
		t.Fatalf("expected gateway error, got %v", err)
	}
}

func TestNormalizePayPalCaptureStatus(t *testing.T) {
	cases := map[string]entities.OrderStatus{
		"COMPLETED": entities.OrderStatusApproved,
		"completed": entities.OrderStatusApproved,
		"PENDING":   entities.OrderStatusPending,
		"DECLINED":  entities.OrderStatusPending,
		"FAILED":    entities.OrderStatusPending,
		"":          entities.OrderStatusPending,
	}
	for status, want := range cases {
		if got := NormalizePayPalCaptureStatus(status); got != want {
			t.Errorf("NormalizePayPalCaptureStatus(%q) = %s, want %s", status, got, want)
		}
	}
}

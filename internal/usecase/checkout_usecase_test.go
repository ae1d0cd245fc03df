package usecase

import (
	"context"
	"errors"
	"testing"

	"tienda_checkout/internal/domain/entities"
	mock_interfaces "tienda_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCreateCheckout_ValidatesBeforeAnyWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: a rejected cart must never touch the catalog, the order
	// store or a gateway.
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	uc := NewCheckoutUseCase(orders, catalog, nil, nil)

	cases := []struct {
		name    string
		items   []CheckoutItem
		method  entities.PaymentMethod
		wantErr error
	}{
		{"empty cart", nil, entities.PaymentMethodMercadoPago, ErrEmptyCart},
		{"zero quantity", []CheckoutItem{{ProductID: "prod-a", Quantity: 0}}, entities.PaymentMethodMercadoPago, ErrInvalidQuantity},
		{"negative quantity", []CheckoutItem{{ProductID: "prod-a", Quantity: -2}}, entities.PaymentMethodMercadoPago, ErrInvalidQuantity},
		{"blank product id", []CheckoutItem{{ProductID: "  ", Quantity: 1}}, entities.PaymentMethodMercadoPago, ErrInvalidProductID},
		{"unknown payment method", []CheckoutItem{{ProductID: "prod-a", Quantity: 1}}, entities.PaymentMethod("pix"), ErrInvalidPaymentMethod},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateCheckout(context.Background(), tc.items, tc.method)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCreateCheckout_PricesFromCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	preference := mock_interfaces.NewMockIPreferenceGateway(ctrl)
	uc := NewCheckoutUseCase(orders, catalog, preference, nil)

	catalog.EXPECT().GetByID(gomock.Any(), "prod-a").
		Return(entities.Product{ID: "prod-a", Name: "Mate Cup", UnitPrice: 10, Available: true}, nil)

	var persisted entities.Order
	orders.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			persisted = o
			return o, nil
		})
	preference.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
		Return("https://mercadopago.test/init/abc", nil)

	result, err := uc.CreateCheckout(context.Background(),
		[]CheckoutItem{{ProductID: "prod-a", Quantity: 3}},
		entities.PaymentMethodMercadoPago)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if persisted.TotalAmount != 30 {
		t.Fatalf("expected total 30.00, got %.2f", persisted.TotalAmount)
	}
	if persisted.Status != entities.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", persisted.Status)
	}
	if persisted.ID == "" || persisted.ExternalReference == "" {
		t.Fatal("order id and external reference must be assigned")
	}
	if len(persisted.Items) != 1 || persisted.Items[0].UnitPrice != 10 {
		t.Fatalf("catalog price not applied: %+v", persisted.Items)
	}
	if result.RedirectURL != "https://mercadopago.test/init/abc" {
		t.Fatalf("unexpected redirect url %q", result.RedirectURL)
	}
}

func TestCreateCheckout_CatalogFailures(t *testing.T) {
	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCheckoutUseCase(orders, catalog, nil, nil)

		catalog.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Product{}, nil)

		_, err := uc.CreateCheckout(context.Background(),
			[]CheckoutItem{{ProductID: "ghost", Quantity: 1}},
			entities.PaymentMethodMercadoPago)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("product unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCheckoutUseCase(orders, catalog, nil, nil)

		catalog.EXPECT().GetByID(gomock.Any(), "prod-a").
			Return(entities.Product{ID: "prod-a", UnitPrice: 10, Available: false}, nil)

		_, err := uc.CreateCheckout(context.Background(),
			[]CheckoutItem{{ProductID: "prod-a", Quantity: 1}},
			entities.PaymentMethodMercadoPago)
		if !errors.Is(err, ErrProductUnavailable) {
			t.Fatalf("expected ErrProductUnavailable, got %v", err)
		}
	})

	t.Run("catalog error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCheckoutUseCase(orders, catalog, nil, nil)

		boom := errors.New("catalog down")
		catalog.EXPECT().GetByID(gomock.Any(), "prod-a").Return(entities.Product{}, boom)

		_, err := uc.CreateCheckout(context.Background(),
			[]CheckoutItem{{ProductID: "prod-a", Quantity: 1}},
			entities.PaymentMethodMercadoPago)
		if !errors.Is(err, boom) {
			t.Fatalf("expected catalog error, got %v", err)
		}
	})
}

func TestCreateCheckout_GatewayFailureKeepsPendingOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	preference := mock_interfaces.NewMockIPreferenceGateway(ctrl)
	uc := NewCheckoutUseCase(orders, catalog, preference, nil)

	catalog.EXPECT().GetByID(gomock.Any(), "prod-a").
		Return(entities.Product{ID: "prod-a", UnitPrice: 10, Available: true}, nil)

	created := false
	orders.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			created = true
			return o, nil
		})
	preference.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).
		Return("", errors.New("gateway timeout"))

	_, err := uc.CreateCheckout(context.Background(),
		[]CheckoutItem{{ProductID: "prod-a", Quantity: 1}},
		entities.PaymentMethodMercadoPago)
	if err == nil {
		t.Fatal("expected gateway error")
	}
	if !created {
		t.Fatal("pending order must be persisted before gateway registration")
	}
}

func TestCreateCheckout_PayPalStoresGatewayOrderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	capture := mock_interfaces.NewMockICaptureGateway(ctrl)
	uc := NewCheckoutUseCase(orders, catalog, nil, capture)

	catalog.EXPECT().GetByID(gomock.Any(), "prod-a").
		Return(entities.Product{ID: "prod-a", UnitPrice: 25.5, Available: true}, nil)
	orders.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			return o, nil
		})
	capture.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return("PAYPAL-ORDER-9", "https://paypal.test/approve/9", nil)
	orders.EXPECT().SetGatewayOrderID(gomock.Any(), gomock.Any(), "PAYPAL-ORDER-9").Return(nil)

	result, err := uc.CreateCheckout(context.Background(),
		[]CheckoutItem{{ProductID: "prod-a", Quantity: 2}},
		entities.PaymentMethodPayPal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Order.GatewayOrderID != "PAYPAL-ORDER-9" {
		t.Fatalf("gateway order id not stored on result: %q", result.Order.GatewayOrderID)
	}
	if result.RedirectURL != "https://paypal.test/approve/9" {
		t.Fatalf("unexpected redirect url %q", result.RedirectURL)
	}
	if result.Order.TotalAmount != 51 {
		t.Fatalf("expected total 51.00, got %.2f", result.Order.TotalAmount)
	}
}

func TestGetOrderByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewCheckoutUseCase(nil, nil, nil, nil)
		_, err := uc.GetOrderByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCheckoutUseCase(orders, nil, nil, nil)

		orders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		_, err := uc.GetOrderByID(context.Background(), "missing")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewCheckoutUseCase(orders, nil, nil, nil)

		want := entities.Order{ID: "ord-1", Status: entities.OrderStatusApproved}
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(want, nil)

		got, err := uc.GetOrderByID(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != want.ID || got.Status != want.Status {
			t.Fatalf("unexpected order %+v", got)
		}
	})
}

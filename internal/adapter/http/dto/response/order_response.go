package response

import (
	"time"

	"tienda_checkout/internal/domain/entities"
)

type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderResponse struct {
	OrderID           string              `json:"order_id"`
	ID                string              `json:"id"`
	Status            string              `json:"status"`
	TotalAmount       float64             `json:"total_amount"`
	Items             []OrderItemResponse `json:"items"`
	ExternalReference string              `json:"external_reference"`
	PaymentMethod     string              `json:"payment_method"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return OrderResponse{
		OrderID:           o.ID,
		ID:                o.ID,
		Status:            string(o.Status),
		TotalAmount:       o.TotalAmount,
		Items:             items,
		ExternalReference: o.ExternalReference,
		PaymentMethod:     string(o.PaymentMethod),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

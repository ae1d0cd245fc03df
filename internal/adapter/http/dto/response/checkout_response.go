package response

import "tienda_checkout/internal/usecase"

type CheckoutResponse struct {
	OrderID           string  `json:"order_id"`
	ExternalReference string  `json:"external_reference"`
	Status            string  `json:"status"`
	TotalAmount       float64 `json:"total_amount"`
	RedirectURL       string  `json:"redirect_url"`
}

func FromCheckoutResult(res usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		OrderID:           res.Order.ID,
		ExternalReference: res.Order.ExternalReference,
		Status:            string(res.Order.Status),
		TotalAmount:       res.Order.TotalAmount,
		RedirectURL:       res.RedirectURL,
	}
}

package response

import "tienda_checkout/internal/usecase"

// CaptureResponse only ever reports approved or pending; failure is never
// assumed from an interim provider state.
type CaptureResponse struct {
	Status  string `json:"status"`
	OrderID string `json:"order_id,omitempty"`
}

func FromCaptureResult(res usecase.CaptureResult) CaptureResponse {
	return CaptureResponse{
		Status:  string(res.Status),
		OrderID: res.Order.ID,
	}
}

// WebhookAckResponse acknowledges a notification. Ignored event types are
// acknowledged with 200 as well, to keep the gateway's retry machinery quiet.
type WebhookAckResponse struct {
	Message string `json:"message"`
}

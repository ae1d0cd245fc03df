package request

// CaptureRequest finalizes a synchronous-gateway payment. Token is the
// provider order id returned to the client after payer approval; OrderID is
// the correlation data embedded at preference-creation time and may be
// absent when the client dropped it.
type CaptureRequest struct {
	Token   string `json:"token" binding:"required"`
	OrderID string `json:"order_id"`
}

package entities

// GatewayPayment is the provider-side view of a payment, as reported by the
// asynchronous gateway. Status carries the provider vocabulary; each ingestor
// normalizes it before the reconciliation core ever sees it.
type GatewayPayment struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
}

// GatewayCapture is the outcome of a synchronous capture call. CustomID is the
// correlation data embedded at preference-creation time, echoed back by the
// provider inside the capture result.
type GatewayCapture struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	CustomID string `json:"custom_id,omitempty"`
}

package request

import (
	"encoding/json"
	"strings"
)

// FlexibleID tolerates both `"id": "123"` and `"id": 123` — Mercado Pago has
// shipped both forms in notification bodies.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = FlexibleID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

// WebhookRequest is the asynchronous gateway's notification body. The body is
// a pointer: Data.ID identifies a payment whose details must be fetched back
// from the gateway.
type WebhookRequest struct {
	Type string             `json:"type"`
	Data WebhookDataRequest `json:"data"`
}

type WebhookDataRequest struct {
	ID FlexibleID `json:"id"`
}

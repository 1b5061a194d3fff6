package entity

import "time"

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
)

func (t OrderType) Label() string {
	if t == OrderTypeDineIn {
		return "Dine In"
	}
	return "Takeaway"
}

// CheckoutRequest is the customer form submitted at checkout.
type CheckoutRequest struct {
	Name      string    `json:"name"`
	WhatsApp  string    `json:"whatsapp"`
	OrderType OrderType `json:"order_type"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`

	// IdempotentKey comes from the Idempotent-Key header.
	IdempotentKey string `json:"-"`
}

// OrderSummary is the composed hand-off for the messaging deep link.
type OrderSummary struct {
	OrderRef    string    `json:"order_ref"`
	PlacedAt    time.Time `json:"placed_at"`
	OrderType   OrderType `json:"order_type"`
	Total       int64     `json:"total"`
	Message     string    `json:"message"`
	WhatsAppURL string    `json:"whatsapp_url"`
}

package gateway

import (
	"context"
)

// PaymentGateway defines the interface for the external payment provider.
// The backend only creates intents; capture happens on the client against
// the provider directly.
type PaymentGateway interface {
	// CreatePaymentIntent authorizes a charge and returns a client secret
	CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntentResponse, error)

	// Name returns the gateway name
	Name() string
}

// PaymentIntentRequest represents a request to create a payment intent
type PaymentIntentRequest struct {
	Amount        int64 // smallest currency unit (cents)
	Currency      string
	Description   string
	CustomerEmail string
	Metadata      map[string]string
}

// PaymentIntentResponse represents a payment intent response
type PaymentIntentResponse struct {
	PaymentIntentID string
	ClientSecret    string
	Status          string
}

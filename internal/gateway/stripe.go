package gateway

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"apnrghor-backend/internal/logger"
)

type stripeGateway struct {
	currency string
}

// NewStripeGateway configures the Stripe client with the given secret key.
// The stripe-go client is process-wide; construct once at startup.
func NewStripeGateway(secretKey, currency string) PaymentGateway {
	stripe.Key = secretKey
	return &stripeGateway{currency: currency}
}

func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, req *PaymentIntentRequest) (*PaymentIntentResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(req.Amount),
		Currency:     stripe.String(currency),
		Description:  stripe.String(req.Description),
		ReceiptEmail: stripe.String(req.CustomerEmail),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	logger.ExternalServiceCall("stripe", "CreatePaymentIntent", "amount", req.Amount, "currency", currency)
	pi, err := paymentintent.New(params)
	logger.ExternalServiceResult("stripe", "CreatePaymentIntent", err)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent failed: %w", err)
	}

	return &PaymentIntentResponse{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Status:          string(pi.Status),
	}, nil
}

func (g *stripeGateway) Name() string {
	return "stripe"
}

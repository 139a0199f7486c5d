// Package stripe wraps the Stripe SDK calls this server relays to.
package stripe

import (
	"context"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/customer"
)

type Config struct {
	SecretKey      string
	PriceID        string
	FrontendOrigin string
}

type StripeService struct {
	priceID        string
	frontendOrigin string
}

func NewStripeService(config Config) *StripeService {
	stripe.Key = config.SecretKey

	return &StripeService{
		priceID:        config.PriceID,
		frontendOrigin: config.FrontendOrigin,
	}
}

// CreateCustomer creates a payments customer tagged with the identity
// provider's user id.
func (s *StripeService) CreateCustomer(ctx context.Context, email, authID string) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())
	if authID != "" {
		params.AddMetadata("auth_id", authID)
	}

	return customer.New(params)
}

func (s *StripeService) DeleteCustomer(ctx context.Context, customerID string) error {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	_, err := customer.Del(customerID, params)
	return err
}

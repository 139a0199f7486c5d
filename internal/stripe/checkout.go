package stripe

import (
	"context"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/customersession"
)

// CreateCheckoutSession builds a subscription checkout for the configured
// price. A non-empty couponID is attached as the session's sole discount.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, customerID, couponID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.frontendOrigin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.frontendOrigin + "/pricing"),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	if couponID != "" {
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(couponID)},
		}
	}

	return session.New(params)
}

// CreatePricingTableSession creates a provider-hosted customer session
// scoped to the embeddable pricing-table component and returns its client
// secret.
func (s *StripeService) CreatePricingTableSession(ctx context.Context, customerID string) (string, error) {
	params := &stripe.CustomerSessionParams{
		Customer: stripe.String(customerID),
		Components: &stripe.CustomerSessionComponentsParams{
			PricingTable: &stripe.CustomerSessionComponentsPricingTableParams{
				Enabled: stripe.Bool(true),
			},
		},
	}
	params.Context = ctx

	sess, err := customersession.New(params)
	if err != nil {
		return "", err
	}

	return sess.ClientSecret, nil
}

package stripe

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/price"
	"github.com/stripe/stripe-go/v80/product"
	"github.com/stripe/stripe-go/v80/subscription"
)

// SubscriptionStatus is what the front-end needs to render a customer's
// billing state. Zero value means no subscription exists.
type SubscriptionStatus struct {
	HasSubscription  bool
	Status           string
	CurrentPeriodEnd time.Time
	PlanName         string
	SubscriptionID   string
}

// GetSubscriptionStatus fetches the customer's most recent subscription
// of any status and resolves its plan display name.
func (s *StripeService) GetSubscriptionStatus(ctx context.Context, customerID string) (*SubscriptionStatus, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	i := subscription.List(params)
	if !i.Next() {
		if err := i.Err(); err != nil {
			return nil, fmt.Errorf("error listing subscriptions: %w", err)
		}
		return &SubscriptionStatus{}, nil
	}
	sub := i.Subscription()

	planName := "Unknown Plan"
	if len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		name, err := s.resolvePlanName(ctx, sub.Items.Data[0].Price.ID)
		if err != nil {
			return nil, err
		}
		if name != "" {
			planName = name
		}
	}

	return &SubscriptionStatus{
		HasSubscription:  true,
		Status:           string(sub.Status),
		CurrentPeriodEnd: time.Unix(sub.CurrentPeriodEnd, 0).UTC(),
		PlanName:         planName,
		SubscriptionID:   sub.ID,
	}, nil
}

// resolvePlanName follows the subscription's price to its parent product.
func (s *StripeService) resolvePlanName(ctx context.Context, priceID string) (string, error) {
	priceParams := &stripe.PriceParams{}
	priceParams.Context = ctx

	pr, err := price.Get(priceID, priceParams)
	if err != nil {
		return "", fmt.Errorf("error fetching price %s: %w", priceID, err)
	}
	if pr.Product == nil {
		return "", nil
	}

	productParams := &stripe.ProductParams{}
	productParams.Context = ctx

	prod, err := product.Get(pr.Product.ID, productParams)
	if err != nil {
		return "", fmt.Errorf("error fetching product %s: %w", pr.Product.ID, err)
	}

	return prod.Name, nil
}

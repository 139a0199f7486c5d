package stripe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/coupon"
)

// Metadata keys distinguishing the two coupon kinds. A coupon carries
// exactly one of the two.
const (
	MetadataAllowedDomain = "allowed_domain"
	MetadataAllowedEmail  = "allowed_email"
)

type DomainCouponParams struct {
	Name            string
	Domain          string
	DiscountPercent float64
	MaxSeats        int64
	ExpiresAt       string
}

type EmailCouponParams struct {
	Name            string
	Email           string
	DiscountPercent float64
	ExpiresAt       string
}

// CreateDomainCoupon creates a shared coupon redeemable by anyone whose
// email domain matches, capped at MaxSeats redemptions.
func (s *StripeService) CreateDomainCoupon(ctx context.Context, p DomainCouponParams) (*stripe.Coupon, error) {
	params, err := buildDomainCouponParams(p)
	if err != nil {
		return nil, err
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	return coupon.New(params)
}

// CreateEmailCoupon creates a single-use coupon restricted to one address.
func (s *StripeService) CreateEmailCoupon(ctx context.Context, p EmailCouponParams) (*stripe.Coupon, error) {
	params, err := buildEmailCouponParams(p)
	if err != nil {
		return nil, err
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	return coupon.New(params)
}

func buildDomainCouponParams(p DomainCouponParams) (*stripe.CouponParams, error) {
	params := &stripe.CouponParams{
		Name:           stripe.String(p.Name),
		Duration:       stripe.String(string(stripe.CouponDurationForever)),
		PercentOff:     stripe.Float64(p.DiscountPercent),
		MaxRedemptions: stripe.Int64(p.MaxSeats),
	}
	params.AddMetadata(MetadataAllowedDomain, p.Domain)

	if p.ExpiresAt != "" {
		redeemBy, err := parseExpiry(p.ExpiresAt)
		if err != nil {
			return nil, err
		}
		params.RedeemBy = stripe.Int64(redeemBy)
	}

	return params, nil
}

func buildEmailCouponParams(p EmailCouponParams) (*stripe.CouponParams, error) {
	params := &stripe.CouponParams{
		Name:           stripe.String(p.Name),
		Duration:       stripe.String(string(stripe.CouponDurationForever)),
		PercentOff:     stripe.Float64(p.DiscountPercent),
		MaxRedemptions: stripe.Int64(1),
	}
	params.AddMetadata(MetadataAllowedEmail, p.Email)

	if p.ExpiresAt != "" {
		redeemBy, err := parseExpiry(p.ExpiresAt)
		if err != nil {
			return nil, err
		}
		params.RedeemBy = stripe.Int64(redeemBy)
	}

	return params, nil
}

// ListCoupons returns a single page of up to 100 coupons, in provider
// order. Coupons beyond the first page are never considered anywhere.
func (s *StripeService) ListCoupons(ctx context.Context) ([]*stripe.Coupon, error) {
	params := couponListParams()
	params.Context = ctx

	var coupons []*stripe.Coupon
	i := coupon.List(params)
	for i.Next() {
		coupons = append(coupons, i.Coupon())
	}

	if err := i.Err(); err != nil {
		return nil, fmt.Errorf("error listing coupons: %w", err)
	}

	return coupons, nil
}

// couponListParams caps the listing at one page of 100. Single stops the
// iterator from auto-paginating past it.
func couponListParams() *stripe.CouponListParams {
	params := &stripe.CouponListParams{}
	params.Limit = stripe.Int64(100)
	params.Single = true
	return params
}

func (s *StripeService) DeleteCoupon(ctx context.Context, couponID string) error {
	params := &stripe.CouponParams{}
	params.Context = ctx

	_, err := coupon.Del(couponID, params)
	return err
}

// parseExpiry converts an expiry date string to a Unix redeem-by
// deadline. Accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseExpiry(value string) (int64, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Unix(), nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return 0, fmt.Errorf("invalid expiry date %q", value)
	}
	return t.Unix(), nil
}

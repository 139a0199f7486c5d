// Package discount decides which coupon, if any, applies to a requester.
package discount

import (
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v80"

	stripeclient "github.com/rayyaandev/Pipeline-Server/internal/stripe"
)

// Resolve returns the coupon that applies to email, or nil. A coupon
// restricted to the exact address wins over one shared by the address's
// domain; within each kind, provider order decides and the first match
// wins. Redemption exhaustion is not checked here; callers that care
// must filter the result themselves.
func Resolve(email string, coupons []*stripe.Coupon) *stripe.Coupon {
	domain, err := EmailDomain(email)
	if err != nil {
		domain = ""
	}

	var domainMatch *stripe.Coupon
	for _, c := range coupons {
		if c == nil {
			continue
		}
		if v := c.Metadata[stripeclient.MetadataAllowedEmail]; v != "" && v == email {
			return c
		}
		if domainMatch == nil && domain != "" && c.Metadata[stripeclient.MetadataAllowedDomain] == domain {
			domainMatch = c
		}
	}

	return domainMatch
}

// Exhausted reports whether the coupon's redemption cap has been reached.
func Exhausted(c *stripe.Coupon) bool {
	return c.MaxRedemptions > 0 && c.TimesRedeemed >= c.MaxRedemptions
}

// Fraction converts the coupon's percent-off to a fraction in [0, 1].
func Fraction(c *stripe.Coupon) float64 {
	return c.PercentOff / 100
}

// EmailDomain derives the coupon-matching domain from an email address:
// everything after the first "@".
func EmailDomain(email string) (string, error) {
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return "", fmt.Errorf("malformed email address %q", email)
	}
	return domain, nil
}

package service

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(clerkKey string) *Config {
	config := &Config{
		Environment:    "test",
		Port:           "8000",
		FrontendOrigin: "http://localhost:3000",
	}
	config.Stripe.SecretKey = "sk_test_123"
	config.Stripe.PriceID = "price_123"
	config.Email.APIKey = "SG.test"
	config.Email.From = "noreply@pipeline.app"
	config.Clerk.SecretKey = clerkKey
	return config
}

func registeredPaths(e *echo.Echo) map[string]bool {
	paths := make(map[string]bool)
	for _, r := range e.Routes() {
		paths[r.Method+" "+r.Path] = true
	}
	return paths
}

func TestRegisterRoutes(t *testing.T) {
	svc := New(testConfig(""))
	e := echo.New()
	svc.RegisterRoutes(e)

	paths := registeredPaths(e)
	for _, want := range []string{
		"POST /send-email",
		"POST /create-customer",
		"GET /subscription-status/:customerId",
		"POST /create-customer-session",
		"POST /discounts",
		"POST /create-checkout-session",
		"GET /coupons",
		"POST /coupons",
		"POST /manual-override-coupons",
		"DELETE /coupons/:couponId",
		"POST /coupons/bulk",
		"GET /healthz",
	} {
		assert.True(t, paths[want], "missing route %s", want)
	}

	assert.False(t, paths["POST /delete-user"], "identity routes need CLERK_SECRET_KEY")
	assert.False(t, paths["POST /delete-stripe-customer"])
}

func TestRegisterRoutes_IdentityVariant(t *testing.T) {
	svc := New(testConfig("sk_clerk_123"))
	require.NotNil(t, svc.identity)

	e := echo.New()
	svc.RegisterRoutes(e)

	paths := registeredPaths(e)
	assert.True(t, paths["POST /delete-user"])
	assert.True(t, paths["POST /delete-stripe-customer"])
}

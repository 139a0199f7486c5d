// Package service wires configuration, provider clients, and routes.
package service

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rayyaandev/Pipeline-Server/internal/email"
	"github.com/rayyaandev/Pipeline-Server/internal/handlers"
	"github.com/rayyaandev/Pipeline-Server/internal/identity"
	stripeclient "github.com/rayyaandev/Pipeline-Server/internal/stripe"
)

// Service holds the provider clients, constructed once at startup and
// passed explicitly to the handlers that use them.
type Service struct {
	config   *Config
	stripe   *stripeclient.StripeService
	email    *email.Service
	identity *identity.Service
}

func New(config *Config) *Service {
	s := &Service{
		config: config,
		stripe: stripeclient.NewStripeService(stripeclient.Config{
			SecretKey:      config.Stripe.SecretKey,
			PriceID:        config.Stripe.PriceID,
			FrontendOrigin: config.FrontendOrigin,
		}),
		email: email.NewService(config.Email.APIKey, config.Email.From),
	}

	if config.IdentityEnabled() {
		s.identity = identity.NewService(config.Clerk.SecretKey)
	}

	return s
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	billing := handlers.NewBillingHandler(s.stripe)
	coupons := handlers.NewCouponsHandler(s.stripe)
	notifications := handlers.NewNotificationsHandler(s.email)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/send-email", notifications.HandleSendInvitations)

	e.POST("/create-customer", billing.HandleCreateCustomer)
	e.GET("/subscription-status/:customerId", billing.HandleSubscriptionStatus)
	e.POST("/create-customer-session", billing.HandleCreateCustomerSession)
	e.POST("/discounts", billing.HandleDiscountPreview)
	e.POST("/create-checkout-session", billing.HandleCreateCheckoutSession)

	e.GET("/coupons", coupons.HandleList)
	e.POST("/coupons", coupons.HandleCreateDomain)
	e.POST("/manual-override-coupons", coupons.HandleCreateManualOverride)
	e.DELETE("/coupons/:couponId", coupons.HandleDelete)
	e.POST("/coupons/bulk", coupons.HandleBulkImport)

	// Identity-variant routes
	if s.identity != nil {
		users := handlers.NewUsersHandler(s.identity, s.stripe)
		e.POST("/delete-user", users.HandleDeleteUser)
		e.POST("/delete-stripe-customer", users.HandleDeleteStripeCustomer)
	}
}

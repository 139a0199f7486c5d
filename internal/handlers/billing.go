package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	stripego "github.com/stripe/stripe-go/v80"

	"github.com/rayyaandev/Pipeline-Server/internal/discount"
	stripeclient "github.com/rayyaandev/Pipeline-Server/internal/stripe"
)

// BillingService is the slice of the Stripe layer the billing handler
// uses; tests substitute a fake.
type BillingService interface {
	CreateCustomer(ctx context.Context, email, authID string) (*stripego.Customer, error)
	GetSubscriptionStatus(ctx context.Context, customerID string) (*stripeclient.SubscriptionStatus, error)
	CreatePricingTableSession(ctx context.Context, customerID string) (string, error)
	CreateCheckoutSession(ctx context.Context, customerID, couponID string) (*stripego.CheckoutSession, error)
	ListCoupons(ctx context.Context) ([]*stripego.Coupon, error)
}

type BillingHandler struct {
	stripe BillingService
}

func NewBillingHandler(stripe BillingService) *BillingHandler {
	return &BillingHandler{stripe: stripe}
}

type CreateCustomerRequest struct {
	Email  string `json:"email"`
	AuthID string `json:"auth_id"`
}

func (h *BillingHandler) HandleCreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email required"})
	}

	customer, err := h.stripe.CreateCustomer(c.Request().Context(), req.Email, req.AuthID)
	if err != nil {
		slog.Error("failed to create customer", "error", err, "email", req.Email)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create customer"})
	}

	return c.JSON(http.StatusOK, map[string]string{"customerId": customer.ID})
}

type SubscriptionStatusResponse struct {
	HasSubscription  bool       `json:"hasSubscription"`
	Status           *string    `json:"status"`
	CurrentPeriodEnd *time.Time `json:"currentPeriodEnd"`
	PlanName         *string    `json:"planName"`
	SubscriptionID   string     `json:"subscriptionId,omitempty"`
}

func (h *BillingHandler) HandleSubscriptionStatus(c echo.Context) error {
	customerID := c.Param("customerId")
	if customerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Customer id required"})
	}

	status, err := h.stripe.GetSubscriptionStatus(c.Request().Context(), customerID)
	if err != nil {
		slog.Error("failed to get subscription status", "error", err, "customer_id", customerID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get subscription status"})
	}

	if !status.HasSubscription {
		return c.JSON(http.StatusOK, SubscriptionStatusResponse{})
	}

	return c.JSON(http.StatusOK, SubscriptionStatusResponse{
		HasSubscription:  true,
		Status:           &status.Status,
		CurrentPeriodEnd: &status.CurrentPeriodEnd,
		PlanName:         &status.PlanName,
		SubscriptionID:   status.SubscriptionID,
	})
}

type CreateCustomerSessionRequest struct {
	CustomerID string `json:"customerId"`
}

func (h *BillingHandler) HandleCreateCustomerSession(c echo.Context) error {
	var req CreateCustomerSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.CustomerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Customer id required"})
	}

	secret, err := h.stripe.CreatePricingTableSession(c.Request().Context(), req.CustomerID)
	if err != nil {
		slog.Error("failed to create customer session", "error", err, "customer_id", req.CustomerID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create customer session"})
	}

	return c.JSON(http.StatusOK, map[string]string{"checkoutSessionSecret": secret})
}

type DiscountPreviewRequest struct {
	Email string `json:"email"`
}

// DiscountPreview describes a coupon match for a prospective subscriber.
// Domain is the coupon's allowed domain; for coupons restricted to a single
// email address it falls back to the domain derived from the requester's
// email, so the response always names a domain.
type DiscountPreview struct {
	Discount float64 `json:"discount"`
	Domain   string  `json:"domain"`
}

func (h *BillingHandler) HandleDiscountPreview(c echo.Context) error {
	var req DiscountPreviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	domain, err := discount.EmailDomain(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "A valid email is required"})
	}

	coupons, err := h.stripe.ListCoupons(c.Request().Context())
	if err != nil {
		slog.Error("failed to list coupons for discount preview", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to look up discounts"})
	}

	match := discount.Resolve(req.Email, coupons)
	if match == nil || discount.Exhausted(match) {
		return c.JSON(http.StatusOK, map[string]any{"discount": nil})
	}

	previewDomain := match.Metadata[stripeclient.MetadataAllowedDomain]
	if previewDomain == "" {
		previewDomain = domain
	}

	return c.JSON(http.StatusOK, map[string]any{
		"discount": DiscountPreview{
			Discount: discount.Fraction(match),
			Domain:   previewDomain,
		},
	})
}

type CreateCheckoutSessionRequest struct {
	Email      string `json:"email"`
	CustomerID string `json:"customerId"`
}

func (h *BillingHandler) HandleCreateCheckoutSession(c echo.Context) error {
	var req CreateCheckoutSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Email == "" || req.CustomerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and customer id required"})
	}

	ctx := c.Request().Context()

	var couponID string
	coupons, err := h.stripe.ListCoupons(ctx)
	if err != nil {
		slog.Error("failed to list coupons for checkout", "error", err, "customer_id", req.CustomerID)
		return c.JSON(http.StatusOK, map[string]any{"sessionUrl": nil})
	}

	// Exhausted coupons are not filtered here; Stripe rejects them at
	// redemption time.
	if match := discount.Resolve(req.Email, coupons); match != nil {
		couponID = match.ID
	}

	sess, err := h.stripe.CreateCheckoutSession(ctx, req.CustomerID, couponID)
	if err != nil {
		slog.Error("failed to create checkout session", "error", err, "customer_id", req.CustomerID)
		return c.JSON(http.StatusOK, map[string]any{"sessionUrl": nil})
	}

	return c.JSON(http.StatusOK, map[string]string{"sessionUrl": sess.URL})
}

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	stripego "github.com/stripe/stripe-go/v80"

	"github.com/rayyaandev/Pipeline-Server/internal/bulk"
	stripeclient "github.com/rayyaandev/Pipeline-Server/internal/stripe"
)

// CouponService is the coupon-administration slice of the Stripe layer.
type CouponService interface {
	ListCoupons(ctx context.Context) ([]*stripego.Coupon, error)
	CreateDomainCoupon(ctx context.Context, p stripeclient.DomainCouponParams) (*stripego.Coupon, error)
	CreateEmailCoupon(ctx context.Context, p stripeclient.EmailCouponParams) (*stripego.Coupon, error)
	DeleteCoupon(ctx context.Context, couponID string) error
}

type CouponsHandler struct {
	stripe CouponService
}

func NewCouponsHandler(stripe CouponService) *CouponsHandler {
	return &CouponsHandler{stripe: stripe}
}

func (h *CouponsHandler) HandleList(c echo.Context) error {
	coupons, err := h.stripe.ListCoupons(c.Request().Context())
	if err != nil {
		slog.Error("failed to list coupons", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to list coupons"})
	}

	if coupons == nil {
		coupons = []*stripego.Coupon{}
	}
	return c.JSON(http.StatusOK, coupons)
}

type CreateDomainCouponRequest struct {
	Name            string  `json:"name"`
	Domain          string  `json:"domain"`
	DiscountPercent float64 `json:"discountPercent"`
	MaxSeats        int64   `json:"maxSeats"`
	ExpiresAt       string  `json:"expiresAt,omitempty"`
}

func (h *CouponsHandler) HandleCreateDomain(c echo.Context) error {
	var req CreateDomainCouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name required"})
	}
	if req.Domain == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Domain required"})
	}
	if req.DiscountPercent <= 0 || req.DiscountPercent > 100 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "discountPercent must be between 0 and 100"})
	}
	if req.MaxSeats <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "maxSeats must be a positive integer"})
	}

	coupon, err := h.stripe.CreateDomainCoupon(c.Request().Context(), stripeclient.DomainCouponParams{
		Name:            req.Name,
		Domain:          req.Domain,
		DiscountPercent: req.DiscountPercent,
		MaxSeats:        req.MaxSeats,
		ExpiresAt:       req.ExpiresAt,
	})
	if err != nil {
		slog.Error("failed to create domain coupon", "error", err, "name", req.Name)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create coupon"})
	}

	return c.JSON(http.StatusCreated, coupon)
}

type CreateManualOverrideCouponRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	DiscountPercent float64 `json:"discountPercent"`
	ExpiresAt       string  `json:"expiresAt,omitempty"`
}

func (h *CouponsHandler) HandleCreateManualOverride(c echo.Context) error {
	var req CreateManualOverrideCouponRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name required"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email required"})
	}
	if req.DiscountPercent <= 0 || req.DiscountPercent > 100 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "discountPercent must be between 0 and 100"})
	}

	coupon, err := h.stripe.CreateEmailCoupon(c.Request().Context(), stripeclient.EmailCouponParams{
		Name:            req.Name,
		Email:           req.Email,
		DiscountPercent: req.DiscountPercent,
		ExpiresAt:       req.ExpiresAt,
	})
	if err != nil {
		slog.Error("failed to create manual-override coupon", "error", err, "name", req.Name)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create coupon"})
	}

	return c.JSON(http.StatusCreated, coupon)
}

func (h *CouponsHandler) HandleDelete(c echo.Context) error {
	couponID := c.Param("couponId")
	if couponID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Coupon id required"})
	}

	if err := h.stripe.DeleteCoupon(c.Request().Context(), couponID); err != nil {
		slog.Error("failed to delete coupon", "error", err, "coupon_id", couponID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete coupon"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Coupon deleted"})
}

type BulkImportRequest struct {
	Coupons []bulk.Row `json:"coupons"`
}

func (h *CouponsHandler) HandleBulkImport(c echo.Context) error {
	var req BulkImportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if len(req.Coupons) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "coupons must be a non-empty list"})
	}

	ctx := c.Request().Context()
	batchID := ulid.Make().String()

	report := bulk.Import(req.Coupons,
		func(row bulk.Row) error {
			_, err := h.stripe.CreateDomainCoupon(ctx, stripeclient.DomainCouponParams{
				Name:            row.Name,
				Domain:          row.Domain,
				DiscountPercent: row.DiscountPercent,
				MaxSeats:        row.MaxSeats,
				ExpiresAt:       row.ExpiresAt,
			})
			return err
		},
		func(row bulk.Row) error {
			_, err := h.stripe.CreateEmailCoupon(ctx, stripeclient.EmailCouponParams{
				Name:            row.Name,
				Email:           row.Email,
				DiscountPercent: row.DiscountPercent,
				ExpiresAt:       row.ExpiresAt,
			})
			return err
		},
	)

	slog.Info("coupon bulk import finished",
		"batch_id", batchID,
		"created", report.Created,
		"failed", report.Failed,
		"total", report.Total,
	)

	return c.JSON(http.StatusOK, report)
}

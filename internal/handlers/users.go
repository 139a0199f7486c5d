package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// UserDeleter removes a user from the identity provider.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userID string) error
}

// CustomerDeleter removes a customer from the payments provider.
type CustomerDeleter interface {
	DeleteCustomer(ctx context.Context, customerID string) error
}

// UsersHandler serves the identity-variant account deletion routes.
type UsersHandler struct {
	identity UserDeleter
	stripe   CustomerDeleter
}

func NewUsersHandler(identity UserDeleter, stripe CustomerDeleter) *UsersHandler {
	return &UsersHandler{identity: identity, stripe: stripe}
}

type DeleteUserRequest struct {
	UserUID string `json:"userUid"`
}

func (h *UsersHandler) HandleDeleteUser(c echo.Context) error {
	var req DeleteUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.UserUID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "User id required"})
	}

	if err := h.identity.DeleteUser(c.Request().Context(), req.UserUID); err != nil {
		slog.Error("failed to delete user", "error", err, "user_id", req.UserUID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete user"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted"})
}

type DeleteStripeCustomerRequest struct {
	CustomerID string `json:"customerId"`
}

func (h *UsersHandler) HandleDeleteStripeCustomer(c echo.Context) error {
	var req DeleteStripeCustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.CustomerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Customer id required"})
	}

	if err := h.stripe.DeleteCustomer(c.Request().Context(), req.CustomerID); err != nil {
		slog.Error("failed to delete customer", "error", err, "customer_id", req.CustomerID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete customer"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Customer deleted"})
}

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rayyaandev/Pipeline-Server/internal/email"
)

// InvitationSender submits a batch of invitation emails.
type InvitationSender interface {
	SendInvitations(ctx context.Context, invitations []email.Invitation) error
}

type NotificationsHandler struct {
	email InvitationSender
}

func NewNotificationsHandler(sender InvitationSender) *NotificationsHandler {
	return &NotificationsHandler{email: sender}
}

type SendInvitationsRequest struct {
	EmailObjects []email.Invitation `json:"emailObjects"`
}

func (h *NotificationsHandler) HandleSendInvitations(c echo.Context) error {
	var req SendInvitationsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if len(req.EmailObjects) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "emailObjects must be a non-empty list"})
	}

	if err := h.email.SendInvitations(c.Request().Context(), req.EmailObjects); err != nil {
		slog.Error("failed to send invitations", "error", err, "recipients", len(req.EmailObjects))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to send invitations"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Invitations sent"})
}

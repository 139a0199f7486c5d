// Package email sends collaboration invitations through SendGrid.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const invitationSubject = "You've been invited to collaborate on Pipeline"

const invitationBody = `Hello,

-invitedBy- has invited you to collaborate on "-paper-" using Pipeline.

Your contribution: -contributions-

Sign in to Pipeline to view the paper and get started.

— The Pipeline Team`

// Invitation describes one outgoing invitation email. It is request
// scoped and discarded after the batch is built.
type Invitation struct {
	Email         string `json:"email"`
	InvitedBy     string `json:"invitedBy"`
	Paper         string `json:"paper"`
	Contributions string `json:"contributions"`
}

type Service struct {
	client *sendgrid.Client
	from   string
}

func NewService(apiKey, from string) *Service {
	return &Service{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

// SendInvitations submits the whole batch to SendGrid in a single call.
// The provider response is logged, not inspected; per-recipient delivery
// failures are not surfaced to the caller.
func (s *Service) SendInvitations(ctx context.Context, invitations []Invitation) error {
	m := BuildInvitationMail(s.from, invitations)

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("error sending invitations: %w", err)
	}

	slog.Info("invitation batch submitted",
		"recipients", len(invitations),
		"provider_status", resp.StatusCode,
	)

	return nil
}

// BuildInvitationMail assembles one v3 mail with a personalization per
// recipient and per-recipient substitutions in the shared template.
func BuildInvitationMail(from string, invitations []Invitation) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("Pipeline", from))
	m.Subject = invitationSubject
	m.AddContent(mail.NewContent("text/plain", invitationBody))

	for _, inv := range invitations {
		p := mail.NewPersonalization()
		p.AddTos(mail.NewEmail("", inv.Email))
		p.SetSubstitution("-invitedBy-", inv.InvitedBy)
		p.SetSubstitution("-paper-", inv.Paper)
		p.SetSubstitution("-contributions-", inv.Contributions)
		m.AddPersonalizations(p)
	}

	return m
}

package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/peakform/coachdesk/pkg/slogx"
)

// ResendMailer sends invitation emails through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) SendInvite(ctx context.Context, inv Invite) error {
	log := slogx.FromContext(ctx)

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{inv.To},
		Subject: "You have been invited to the coaching dashboard",
		Html: fmt.Sprintf(
			`<p>%s invited you to join the coaching dashboard as <strong>%s</strong>.</p>`+
				`<p><a href="%s">Accept your invitation</a></p>`+
				`<p>The link is single use and expires; ask for a new invitation if it stops working.</p>`,
			inv.InvitedBy, inv.Role, inv.SignupURL),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Error("invite email send failed", "error", err, "to", inv.To)
		return fmt.Errorf("send invite email: %w", err)
	}

	log.Info("invite email sent", "message_id", sent.Id, "to", inv.To)
	return nil
}

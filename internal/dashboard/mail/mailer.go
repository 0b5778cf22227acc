// Package mail sends invitation emails. Delivery is best-effort: an
// invitation is valid the moment it is persisted, whether or not the email
// ever lands.
package mail

import "context"

// Invite carries everything the template needs.
type Invite struct {
	To        string
	Role      string
	InvitedBy string
	SignupURL string
}

// Mailer delivers invitation emails.
type Mailer interface {
	SendInvite(ctx context.Context, inv Invite) error
}

// Noop discards every email. Used in tests and when no API key is
// configured.
type Noop struct{}

func (Noop) SendInvite(ctx context.Context, inv Invite) error { return nil }

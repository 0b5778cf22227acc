package domain

import "time"

// Invitation statuses. pending is the only non-terminal state: an invitation
// moves pending -> used on successful signup or pending -> expired on revoke
// or once ExpiresAt passes. used and expired are terminal.
const (
	InvitationPending = "pending"
	InvitationUsed    = "used"
	InvitationExpired = "expired"
)

type Invitation struct {
	ID        string
	TokenHash string // SHA-256 fingerprint; the raw token is never stored
	Email     string
	Role      string // role the new coach account receives
	Status    string
	InvitedBy string
	ExpiresAt time.Time
	UsedBy    string // coach id, empty until redeemed
	CreatedAt time.Time
	UpdatedAt time.Time
}

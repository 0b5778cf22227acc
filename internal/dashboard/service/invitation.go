package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/events"
	"github.com/peakform/coachdesk/internal/dashboard/mail"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/pkg/idx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

var (
	ErrInvalidInvitation   = errors.New("invalid invitation request")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrInvitationUsed      = errors.New("invitation has already been used")
	ErrInvitationExpired   = errors.New("invitation has expired")
	ErrInvitationNotActive = errors.New("invitation is not pending")
	ErrEmailMismatch       = errors.New("invitation was issued for a different email")
	ErrCoachAlreadyExists  = errors.New("a coach with this email already exists")
)

// DefaultInviteTTL applies when an invitation is minted without an explicit
// expiry.
const DefaultInviteTTL = 7 * 24 * time.Hour

// InvitationService owns the invitation lifecycle: pending is the only
// non-terminal state, moving to used on signup or expired on revoke/sweep.
type InvitationService struct {
	Store     store.Store
	Mailer    mail.Mailer
	Hub       *events.Hub
	SignupURL string // base URL the emailed token is appended to
}

// MintInvitation creates a pending invitation and returns the raw token
// alongside the stored record. The token is shown exactly once; only its
// fingerprint is persisted. Email delivery is best-effort.
func (s *InvitationService) MintInvitation(
	ctx context.Context,
	email string,
	role string,
	invitedBy string,
	expiresAt time.Time,
) (string, domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email = strings.TrimSpace(email)
	if email == "" || invitedBy == "" {
		log.Warn("invitation mint missing required fields")
		return "", domain.Invitation{}, ErrInvalidInvitation
	}
	if !domain.ValidRole(role) {
		log.Warn("invitation mint with invalid role", slog.String("role", role))
		return "", domain.Invitation{}, ErrInvalidRole
	}

	// 2. Default and validate expiry.
	now := time.Now().UTC()
	if expiresAt.IsZero() {
		expiresAt = now.Add(DefaultInviteTTL)
	}
	if !expiresAt.After(now) {
		log.Warn("invitation mint with past expiry", slog.Time("expires_at", expiresAt))
		return "", domain.Invitation{}, ErrInvalidInvitation
	}

	// 3. Reject emails that already belong to a coach.
	_, err := s.Store.Coaches().GetCoachByEmail(ctx, email)
	if err == nil {
		log.Warn("invitation mint for existing coach", slog.String("email", email))
		return "", domain.Invitation{}, ErrCoachAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check coach email", slog.Any("error", err))
		return "", domain.Invitation{}, err
	}

	// 4. Generate and fingerprint the token.
	token, err := generateToken()
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return "", domain.Invitation{}, err
	}

	inv := domain.Invitation{
		ID:        idx.New().String(),
		TokenHash: fingerprintToken(token),
		Email:     email,
		Role:      role,
		Status:    domain.InvitationPending,
		InvitedBy: invitedBy,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 5. Persist.
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return "", domain.Invitation{}, err
	}

	// 6. Email the raw token. The invitation stands whether or not delivery
	// succeeds.
	if s.Mailer != nil {
		invite := mail.Invite{
			To:        email,
			Role:      role,
			InvitedBy: invitedBy,
			SignupURL: s.SignupURL + "?token=" + token,
		}
		if err := s.Mailer.SendInvite(ctx, invite); err != nil {
			log.Warn("invitation email failed, invitation remains valid",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
		}
	}

	s.publish(events.KindInvitationCreated, inv.ID)

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("role", role),
		slog.Time("expires_at", expiresAt),
	)

	return token, inv, nil
}

// RedeemInvitation exchanges a valid pending invitation token for a new
// coach account. The signup email must match the invited address
// (case-insensitive), the token is single use, and the resulting coach
// starts in the pending state awaiting approval.
func (s *InvitationService) RedeemInvitation(
	ctx context.Context,
	token string,
	name string,
	email string,
) (domain.Coach, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if token == "" || name == "" || email == "" {
		log.Warn("invitation redemption missing required fields")
		return domain.Coach{}, ErrInvalidInvitation
	}

	// 2. Look the invitation up by fingerprint, any status, so stale tokens
	// get a precise error.
	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, fingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invitation redemption with unknown token")
			return domain.Coach{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Coach{}, err
	}

	// 3. Terminal states never transition again.
	switch inv.Status {
	case domain.InvitationUsed:
		log.Warn("invitation redemption with used token",
			slog.String("invitation_id", inv.ID),
			slog.String("used_by", inv.UsedBy),
		)
		return domain.Coach{}, ErrInvitationUsed
	case domain.InvitationExpired:
		log.Warn("invitation redemption with expired token",
			slog.String("invitation_id", inv.ID),
		)
		return domain.Coach{}, ErrInvitationExpired
	}

	// 4. A pending invitation past its expiry behaves as expired even if the
	// sweep has not run yet.
	now := time.Now().UTC()
	if !inv.ExpiresAt.After(now) {
		if err := s.Store.Invitations().MarkInvitationExpired(ctx, inv.ID); err != nil &&
			!errors.Is(err, store.ErrNotFound) {
			log.Error("failed to expire overdue invitation",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
		}
		log.Warn("invitation redemption past expiry", slog.String("invitation_id", inv.ID))
		return domain.Coach{}, ErrInvitationExpired
	}

	// 5. The signup email must match the invited address.
	if !strings.EqualFold(email, inv.Email) {
		log.Warn("invitation redemption with mismatched email",
			slog.String("invitation_id", inv.ID),
		)
		return domain.Coach{}, ErrEmailMismatch
	}

	// 6. Create the coach and consume the invitation atomically. The
	// status-guarded update loses the race if another redemption got there
	// first, rolling the coach back with it.
	coach := domain.Coach{
		ID:        idx.New().String(),
		Name:      name,
		Email:     inv.Email,
		Role:      inv.Role,
		Status:    domain.CoachPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Coaches().CreateCoach(ctx, coach); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrCoachAlreadyExists
			}
			return err
		}
		if err := tx.Invitations().MarkInvitationUsed(ctx, inv.ID, coach.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationUsed
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCoachAlreadyExists) && !errors.Is(err, ErrInvitationUsed) {
			log.Error("invitation redemption failed",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
		}
		return domain.Coach{}, err
	}

	s.publish(events.KindInvitationRedeemed, inv.ID)

	log.Info("coach registered via invitation",
		slog.String("coach_id", coach.ID),
		slog.String("invitation_id", inv.ID),
		slog.String("role", coach.Role),
	)

	return coach, nil
}

// RevokeInvitation transitions a pending invitation to expired. Terminal
// invitations are rejected with a descriptive error and left untouched.
func (s *InvitationService) RevokeInvitation(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}

	switch inv.Status {
	case domain.InvitationUsed:
		return ErrInvitationUsed
	case domain.InvitationExpired:
		return ErrInvitationExpired
	}

	if err := s.Store.Invitations().MarkInvitationExpired(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost a race with redemption or the sweep.
			return ErrInvitationNotActive
		}
		log.Error("failed to revoke invitation",
			slog.String("invitation_id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.publish(events.KindInvitationRevoked, id)

	log.Info("invitation revoked", slog.String("invitation_id", id))
	return nil
}

func (s *InvitationService) publish(kind, invitationID string) {
	if s.Hub == nil {
		return
	}
	s.Hub.Publish(events.Event{
		Kind:    kind,
		Payload: map[string]string{"invitation_id": invitationID},
	})
}

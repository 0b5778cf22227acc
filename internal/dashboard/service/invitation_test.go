package service_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/mail"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/internal/dashboard/store"
)

type recordingMailer struct {
	sent atomic.Int64
	last mail.Invite
	err  error
}

func (m *recordingMailer) SendInvite(ctx context.Context, inv mail.Invite) error {
	m.sent.Add(1)
	m.last = inv
	return m.err
}

func newInvitationService(t *testing.T) (*service.InvitationService, store.Store, *recordingMailer) {
	t.Helper()

	s := newTestStore(t)
	mailer := &recordingMailer{}
	svc := &service.InvitationService{
		Store:     s,
		Mailer:    mailer,
		SignupURL: "https://dash.peakform.test/signup",
	}
	return svc, s, mailer
}

func TestMintAndRedeemInvitation(t *testing.T) {
	t.Parallel()

	svc, s, mailer := newInvitationService(t)
	ctx := context.Background()

	token, inv, err := svc.MintInvitation(ctx, "new@peakform.test", domain.RoleCoach, "admin-1", time.Time{})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, domain.InvitationPending, inv.Status)
	require.NotEqual(t, token, inv.TokenHash)
	require.EqualValues(t, 1, mailer.sent.Load())
	require.Contains(t, mailer.last.SignupURL, token)

	// Default TTL lands roughly a week out.
	require.WithinDuration(t, time.Now().UTC().Add(service.DefaultInviteTTL), inv.ExpiresAt, time.Minute)

	coach, err := svc.RedeemInvitation(ctx, token, "New Coach", "NEW@peakform.test")
	require.NoError(t, err)
	require.Equal(t, domain.RoleCoach, coach.Role)
	require.Equal(t, domain.CoachPending, coach.Status)
	require.Equal(t, "new@peakform.test", coach.Email)

	stored, err := s.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationUsed, stored.Status)
	require.Equal(t, coach.ID, stored.UsedBy)
}

func TestRedeemIsSingleUse(t *testing.T) {
	t.Parallel()

	svc, s, _ := newInvitationService(t)
	ctx := context.Background()

	token, inv, err := svc.MintInvitation(ctx, "once@peakform.test", domain.RoleCoach, "admin-1", time.Time{})
	require.NoError(t, err)

	first, err := svc.RedeemInvitation(ctx, token, "First", "once@peakform.test")
	require.NoError(t, err)

	_, err = svc.RedeemInvitation(ctx, token, "Second", "once@peakform.test")
	require.ErrorIs(t, err, service.ErrInvitationUsed)

	// The terminal row is untouched by the failed attempt.
	stored, err := s.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationUsed, stored.Status)
	require.Equal(t, first.ID, stored.UsedBy)
}

func TestRedeemRejectsMismatchedEmail(t *testing.T) {
	t.Parallel()

	svc, s, _ := newInvitationService(t)
	ctx := context.Background()

	token, inv, err := svc.MintInvitation(ctx, "right@peakform.test", domain.RoleCoach, "admin-1", time.Time{})
	require.NoError(t, err)

	_, err = svc.RedeemInvitation(ctx, token, "Wrong Person", "wrong@peakform.test")
	require.ErrorIs(t, err, service.ErrEmailMismatch)

	stored, err := s.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationPending, stored.Status)
}

func TestRedeemUnknownToken(t *testing.T) {
	t.Parallel()

	svc, _, _ := newInvitationService(t)

	_, err := svc.RedeemInvitation(context.Background(), "not-a-real-token", "Nobody", "x@peakform.test")
	require.ErrorIs(t, err, service.ErrInvitationNotFound)
}

func TestRedeemPastDuePendingBehavesAsExpired(t *testing.T) {
	t.Parallel()

	svc, s, _ := newInvitationService(t)
	ctx := context.Background()

	token, inv, err := svc.MintInvitation(ctx, "late@peakform.test", domain.RoleCoach, "admin-1",
		time.Now().UTC().Add(time.Second))
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = svc.RedeemInvitation(ctx, token, "Late", "late@peakform.test")
	require.ErrorIs(t, err, service.ErrInvitationExpired)

	stored, err := s.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, stored.Status)
}

func TestRevokeInvitation(t *testing.T) {
	t.Parallel()

	svc, s, _ := newInvitationService(t)
	ctx := context.Background()

	token, inv, err := svc.MintInvitation(ctx, "revoked@peakform.test", domain.RoleCoach, "admin-1", time.Time{})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeInvitation(ctx, inv.ID))

	stored, err := s.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, stored.Status)

	// Revoked tokens can never be redeemed.
	_, err = svc.RedeemInvitation(ctx, token, "Too Late", "revoked@peakform.test")
	require.ErrorIs(t, err, service.ErrInvitationExpired)

	// Revoking again reports the terminal state.
	require.ErrorIs(t, svc.RevokeInvitation(ctx, inv.ID), service.ErrInvitationExpired)
}

func TestRevokeUsedInvitationRejected(t *testing.T) {
	t.Parallel()

	svc, s, _ := newInvitationService(t)
	ctx := context.Background()

	token, inv, err := svc.MintInvitation(ctx, "used@peakform.test", domain.RoleHeadCoach, "admin-1", time.Time{})
	require.NoError(t, err)

	coach, err := svc.RedeemInvitation(ctx, token, "Used Up", "used@peakform.test")
	require.NoError(t, err)

	require.ErrorIs(t, svc.RevokeInvitation(ctx, inv.ID), service.ErrInvitationUsed)

	stored, err := s.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationUsed, stored.Status)
	require.Equal(t, coach.ID, stored.UsedBy)
}

func TestMintValidation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newInvitationService(t)
	ctx := context.Background()

	_, _, err := svc.MintInvitation(ctx, "", domain.RoleCoach, "admin-1", time.Time{})
	require.ErrorIs(t, err, service.ErrInvalidInvitation)

	_, _, err = svc.MintInvitation(ctx, "x@peakform.test", "owner", "admin-1", time.Time{})
	require.ErrorIs(t, err, service.ErrInvalidRole)

	_, _, err = svc.MintInvitation(ctx, "x@peakform.test", domain.RoleCoach, "admin-1",
		time.Now().UTC().Add(-time.Hour))
	require.ErrorIs(t, err, service.ErrInvalidInvitation)
}

func TestMintRejectsExistingCoachEmail(t *testing.T) {
	t.Parallel()

	svc, s, _ := newInvitationService(t)
	coach := seedCoach(t, s, domain.RoleCoach, domain.CoachActive)

	_, _, err := svc.MintInvitation(context.Background(), coach.Email, domain.RoleCoach, "admin-1", time.Time{})
	require.ErrorIs(t, err, service.ErrCoachAlreadyExists)
}

func TestMintSurvivesMailerFailure(t *testing.T) {
	t.Parallel()

	svc, _, mailer := newInvitationService(t)
	mailer.err = context.DeadlineExceeded

	token, _, err := svc.MintInvitation(context.Background(), "flaky@peakform.test",
		domain.RoleCoach, "admin-1", time.Time{})
	require.NoError(t, err)

	coach, err := svc.RedeemInvitation(context.Background(), token, "Flaky", "flaky@peakform.test")
	require.NoError(t, err)
	require.Equal(t, domain.CoachPending, coach.Status)
}

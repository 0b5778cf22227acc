package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/service"
	"github.com/peakform/coachdesk/pkg/idx"
)

func TestSweepExpiresAndPrunes(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	svc := &service.HousekeepingService{Store: s, ResolvedRetention: 24 * time.Hour}
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	stale := domain.Invitation{
		ID:        idx.New().String(),
		TokenHash: "stale",
		Email:     "stale@peakform.test",
		Role:      domain.RoleCoach,
		Status:    domain.InvitationPending,
		InvitedBy: "admin-1",
		ExpiresAt: now.Add(-time.Hour),
		CreatedAt: now.Add(-48 * time.Hour),
		UpdatedAt: now.Add(-48 * time.Hour),
	}
	require.NoError(t, s.Invitations().CreateInvitation(ctx, stale))

	oldResolved := domain.IntelligenceItem{
		ID: idx.New().String(), Type: "alert", Severity: domain.SeverityInfo,
		Message: "old", CreatedAt: now.Add(-72 * time.Hour),
	}
	freshResolved := domain.IntelligenceItem{
		ID: idx.New().String(), Type: "alert", Severity: domain.SeverityInfo,
		Message: "fresh", CreatedAt: now,
	}
	require.NoError(t, s.Intelligence().CreateIntelligenceItem(ctx, oldResolved))
	require.NoError(t, s.Intelligence().CreateIntelligenceItem(ctx, freshResolved))
	require.NoError(t, s.Intelligence().MarkIntelligenceResolved(ctx, oldResolved.ID))
	require.NoError(t, s.Intelligence().MarkIntelligenceResolved(ctx, freshResolved.ID))

	svc.Sweep(ctx)

	inv, err := s.Invitations().GetInvitationByID(ctx, stale.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, inv.Status)

	_, err = s.Intelligence().GetIntelligenceByID(ctx, oldResolved.ID)
	require.Error(t, err)

	_, err = s.Intelligence().GetIntelligenceByID(ctx, freshResolved.ID)
	require.NoError(t, err)
}

func TestHousekeepingStartStop(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	svc := &service.HousekeepingService{Store: s, Schedule: "@every 1h"}

	require.NoError(t, svc.Start(context.Background()))
	svc.Stop()
}

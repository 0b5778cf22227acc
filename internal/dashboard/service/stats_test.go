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

func TestDashboardStatsEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	svc := &service.StatsService{Store: s}

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.ActiveClients)
	require.Zero(t, stats.MonthlyRevenue)
	require.Zero(t, stats.PendingAlerts)
	require.Zero(t, stats.TeamAdherence)
	require.Empty(t, stats.RevenueByPlan)
}

func TestDashboardStatsRollup(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	svc := &service.StatsService{Store: s}
	ctx := context.Background()

	coach := seedCoach(t, s, domain.RoleCoach, domain.CoachActive)
	a := seedClient(t, s, domain.Client{FullName: "A", Status: domain.ClientActive, CoachID: coach.ID})
	b := seedClient(t, s, domain.Client{FullName: "B", Status: domain.ClientActive, CoachID: coach.ID})
	seedClient(t, s, domain.Client{FullName: "C", Status: domain.ClientInactive, CoachID: coach.ID})

	require.NoError(t, s.Intelligence().CreateIntelligenceItem(ctx, domain.IntelligenceItem{
		ID: idx.New().String(), Type: "alert", Severity: domain.SeverityInfo,
		Message: "hello", CreatedAt: time.Now().UTC(),
	}))

	now := time.Now().UTC()
	require.NoError(t, s.Adherence().UpsertScore(ctx, domain.AdherenceScore{ClientID: a.ID, Score: 90, ComputedAt: now}))
	require.NoError(t, s.Adherence().UpsertScore(ctx, domain.AdherenceScore{ClientID: b.ID, Score: 70, ComputedAt: now}))

	require.NoError(t, svc.ImportRevenue(ctx, service.RevenueImport{
		ByPlan: []domain.RevenuePlan{
			{Plan: "12 Week Shred", Revenue: 8000, Clients: 10},
			{Plan: "Monthly Coaching", Revenue: 5000, Clients: 25},
		},
		OverTime: []domain.RevenuePoint{
			{Period: "2026-06", Revenue: 4000},
			{Period: "2026-07", Revenue: 4500},
		},
		ByYear: []domain.RevenuePoint{{Period: "2026", Revenue: 30500}},
	}))

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, stats.ActiveClients)
	require.Equal(t, 1, stats.PendingAlerts)
	require.InDelta(t, 4500, stats.MonthlyRevenue, 1e-9)
	require.Equal(t, 80, stats.TeamAdherence)

	// The by-plan series keeps its stored order; the first row is the top
	// performing plan.
	require.Len(t, stats.RevenueByPlan, 2)
	require.Equal(t, "12 Week Shred", stats.RevenueByPlan[0].Plan)

	require.Len(t, stats.TeamAdherenceDetails, 1)
	require.Equal(t, coach.ID, stats.TeamAdherenceDetails[0].CoachID)
	require.Equal(t, 80, stats.TeamAdherenceDetails[0].Average)
}

func TestImportRevenueReplacesPreviousSeries(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	svc := &service.StatsService{Store: s}
	ctx := context.Background()

	require.NoError(t, svc.ImportRevenue(ctx, service.RevenueImport{
		ByPlan: []domain.RevenuePlan{{Plan: "Old", Revenue: 1, Clients: 1}},
	}))
	require.NoError(t, svc.ImportRevenue(ctx, service.RevenueImport{
		ByPlan: []domain.RevenuePlan{{Plan: "New", Revenue: 2, Clients: 2}},
	}))

	plans, err := s.Revenue().ListRevenueByPlan(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Equal(t, "New", plans[0].Plan)
}

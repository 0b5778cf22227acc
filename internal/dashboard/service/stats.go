package service

import (
	"context"
	"log/slog"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/scoring"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/pkg/slogx"
)

// RevenueImport is a full refresh of the revenue series from the billing
// export.
type RevenueImport struct {
	ByPlan   []domain.RevenuePlan
	OverTime []domain.RevenuePoint
	ByYear   []domain.RevenuePoint
}

// StatsService assembles the admin dashboard rollup. Each component
// degrades to its zero value on fetch failure instead of failing the whole
// payload, so a broken revenue import never blanks the dashboard.
type StatsService struct {
	Store store.Store
}

func (s *StatsService) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	log := slogx.FromContext(ctx)
	var stats domain.DashboardStats

	clients, err := s.Store.Clients().ListClients(ctx)
	if err != nil {
		log.Warn("stats: clients unavailable", slog.Any("error", err))
	} else {
		for _, c := range clients {
			if c.Status == domain.ClientActive {
				stats.ActiveClients++
			}
		}
	}

	if n, err := s.Store.Intelligence().CountPending(ctx); err != nil {
		log.Warn("stats: pending alerts unavailable", slog.Any("error", err))
	} else {
		stats.PendingAlerts = n
	}

	if plans, err := s.Store.Revenue().ListRevenueByPlan(ctx); err != nil {
		log.Warn("stats: revenue by plan unavailable", slog.Any("error", err))
	} else {
		stats.RevenueByPlan = plans
	}

	if points, err := s.Store.Revenue().ListRevenueOverTime(ctx); err != nil {
		log.Warn("stats: revenue over time unavailable", slog.Any("error", err))
	} else {
		stats.RevenueOverTime = points
		// Monthly revenue is the latest bucket of the monthly series.
		if len(points) > 0 {
			stats.MonthlyRevenue = points[len(points)-1].Revenue
		}
	}

	if points, err := s.Store.Revenue().ListRevenueByYear(ctx); err != nil {
		log.Warn("stats: revenue by year unavailable", slog.Any("error", err))
	} else {
		stats.RevenueByYear = points
	}

	s.fillAdherence(ctx, &stats)

	return stats, nil
}

// ImportRevenue atomically replaces the three revenue series with a fresh
// billing export. The by-plan series is stored in the given order, so the
// exporter's revenue-descending sort is what "top performer" reads.
func (s *StatsService) ImportRevenue(ctx context.Context, imp RevenueImport) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Revenue().ReplaceRevenueByPlan(ctx, imp.ByPlan); err != nil {
			return err
		}
		if err := tx.Revenue().ReplaceRevenueOverTime(ctx, imp.OverTime); err != nil {
			return err
		}
		return tx.Revenue().ReplaceRevenueByYear(ctx, imp.ByYear)
	})
	if err != nil {
		log.Error("revenue import failed", slog.Any("error", err))
		return err
	}

	log.Info("revenue import applied",
		slog.Int("plans", len(imp.ByPlan)),
		slog.Int("monthly_points", len(imp.OverTime)),
		slog.Int("yearly_points", len(imp.ByYear)),
	)
	return nil
}

// fillAdherence computes the team-wide adherence average plus the per-coach
// breakdown.
func (s *StatsService) fillAdherence(ctx context.Context, stats *domain.DashboardStats) {
	log := slogx.FromContext(ctx)

	scores, err := s.Store.Adherence().ListScores(ctx)
	if err != nil {
		log.Warn("stats: adherence scores unavailable", slog.Any("error", err))
		return
	}
	stats.TeamAdherence = scoring.TeamAverage(scores)

	coaches, err := s.Store.Coaches().ListCoaches(ctx)
	if err != nil {
		log.Warn("stats: coaches unavailable for adherence detail", slog.Any("error", err))
		return
	}

	for _, coach := range coaches {
		rows, err := s.Store.Adherence().ListScoresByCoach(ctx, coach.ID)
		if err != nil {
			log.Warn("stats: coach adherence unavailable",
				slog.String("coach_id", coach.ID),
				slog.Any("error", err),
			)
			continue
		}
		stats.TeamAdherenceDetails = append(stats.TeamAdherenceDetails, domain.CoachAdherence{
			CoachID:   coach.ID,
			CoachName: coach.Name,
			Average:   scoring.TeamAverage(rows),
		})
	}
}

package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/peakform/coachdesk/internal/dashboard/aggregate"
	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/events"
	"github.com/peakform/coachdesk/internal/dashboard/roster"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/pkg/slogx"
)

var (
	ErrCoachNotFound   = errors.New("coach not found")
	ErrCoachNotPending = errors.New("coach is not awaiting approval")
)

// TeamService serves the team roster, per-coach load figures and the coach
// approval flow.
type TeamService struct {
	Store store.Store
	Hub   *events.Hub
}

// ListCoaches returns the team roster filtered and sorted by q, with each
// coach's load figures attached.
func (s *TeamService) ListCoaches(ctx context.Context, q roster.CoachQuery) ([]aggregate.CoachLoad, error) {
	log := slogx.FromContext(ctx)

	coaches, err := s.Store.Coaches().ListCoaches(ctx)
	if err != nil {
		log.Error("failed to list coaches", slog.Any("error", err))
		return nil, err
	}
	coaches = roster.Coaches(coaches, q)

	clients, err := s.Store.Clients().ListClients(ctx)
	if err != nil {
		log.Error("failed to list clients for load figures", slog.Any("error", err))
		return nil, err
	}

	return aggregate.Loads(coaches, clients), nil
}

// GetCoach returns one coach with their load figures.
func (s *TeamService) GetCoach(ctx context.Context, id string) (aggregate.CoachLoad, error) {
	coach, err := s.Store.Coaches().GetCoachByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return aggregate.CoachLoad{}, ErrCoachNotFound
		}
		return aggregate.CoachLoad{}, err
	}

	clients, err := s.Store.Clients().ListClientsByCoach(ctx, id)
	if err != nil {
		return aggregate.CoachLoad{}, err
	}

	loads := aggregate.Loads([]domain.Coach{coach}, clients)
	return loads[0], nil
}

// TeamStats returns the organisation-wide rollups.
func (s *TeamService) TeamStats(ctx context.Context) (aggregate.TeamStats, error) {
	coaches, err := s.Store.Coaches().ListCoaches(ctx)
	if err != nil {
		return aggregate.TeamStats{}, err
	}
	clients, err := s.Store.Clients().ListClients(ctx)
	if err != nil {
		return aggregate.TeamStats{}, err
	}
	return aggregate.Team(coaches, clients), nil
}

// ApproveCoach activates a pending coach account.
func (s *TeamService) ApproveCoach(ctx context.Context, id string) error {
	return s.transitionCoach(ctx, id, domain.CoachActive)
}

// RejectCoach suspends a pending coach account. The row is kept so the
// email stays burned.
func (s *TeamService) RejectCoach(ctx context.Context, id string) error {
	return s.transitionCoach(ctx, id, domain.CoachSuspended)
}

func (s *TeamService) transitionCoach(ctx context.Context, id string, status string) error {
	log := slogx.FromContext(ctx)

	coach, err := s.Store.Coaches().GetCoachByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCoachNotFound
		}
		log.Error("failed to fetch coach", slog.Any("error", err))
		return err
	}

	if coach.Status != domain.CoachPending {
		log.Warn("coach approval transition on non-pending coach",
			slog.String("coach_id", id),
			slog.String("status", coach.Status),
		)
		return ErrCoachNotPending
	}

	if err := s.Store.Coaches().UpdateCoachStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCoachNotFound
		}
		log.Error("failed to update coach status",
			slog.String("coach_id", id),
			slog.Any("error", err),
		)
		return err
	}

	if s.Hub != nil {
		s.Hub.Publish(events.Event{
			Kind:    events.KindCoachUpdated,
			Payload: map[string]string{"coach_id": id, "status": status},
		})
	}

	log.Info("coach status updated",
		slog.String("coach_id", id),
		slog.String("status", status),
	)
	return nil
}

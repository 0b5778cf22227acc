package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/peakform/coachdesk/internal/dashboard/events"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/pkg/slogx"
)

// DefaultResolvedRetention is how long resolved intelligence items are kept
// before the sweep prunes them.
const DefaultResolvedRetention = 30 * 24 * time.Hour

// HousekeepingService runs the periodic sweeps: expiring past-due pending
// invitations and pruning old resolved intelligence items.
type HousekeepingService struct {
	Store store.Store
	Hub   *events.Hub

	// Schedule is a cron expression; defaults to hourly.
	Schedule string

	// ResolvedRetention defaults to DefaultResolvedRetention.
	ResolvedRetention time.Duration

	cron *cron.Cron
}

// Start registers the sweep on the schedule and begins running it. It
// returns immediately; Stop shuts the scheduler down.
func (s *HousekeepingService) Start(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	schedule := s.Schedule
	if schedule == "" {
		schedule = "@hourly"
	}

	cronLogger := cron.PrintfLogger(slog.NewLogLogger(log.Handler(), slog.LevelInfo))
	s.cron = cron.New(cron.WithChain(cron.Recover(cronLogger)))

	if _, err := s.cron.AddFunc(schedule, func() {
		s.Sweep(slogx.WithContext(context.Background(), log))
	}); err != nil {
		return err
	}

	s.cron.Start()
	log.Info("housekeeping started", slog.String("schedule", schedule))
	return nil
}

// Stop halts the scheduler and waits for an in-flight sweep to finish.
func (s *HousekeepingService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Sweep runs both maintenance passes once. Exposed so operators and tests
// can trigger it outside the schedule.
func (s *HousekeepingService) Sweep(ctx context.Context) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	expired, err := s.Store.Invitations().ExpirePastDue(ctx, now)
	if err != nil {
		log.Error("failed to expire past-due invitations", slog.Any("error", err))
	} else if expired > 0 {
		log.Info("expired past-due invitations", slog.Int64("count", expired))
		if s.Hub != nil {
			s.Hub.Publish(events.Event{
				Kind:    events.KindInvitationRevoked,
				Payload: map[string]int64{"expired": expired},
			})
		}
	}

	retention := s.ResolvedRetention
	if retention <= 0 {
		retention = DefaultResolvedRetention
	}

	pruned, err := s.Store.Intelligence().DeleteResolvedBefore(ctx, now.Add(-retention))
	if err != nil {
		log.Error("failed to prune resolved intelligence items", slog.Any("error", err))
	} else if pruned > 0 {
		log.Info("pruned resolved intelligence items", slog.Int64("count", pruned))
	}
}

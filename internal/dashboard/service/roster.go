package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/events"
	"github.com/peakform/coachdesk/internal/dashboard/roster"
	"github.com/peakform/coachdesk/internal/dashboard/scoring"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/pkg/idx"
	"github.com/peakform/coachdesk/pkg/slogx"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrNotYourClient   = errors.New("client is assigned to a different coach")
	ErrNotYourRoster   = errors.New("roster belongs to a different coach")
	ErrInvalidStatus   = errors.New("invalid client status")
	ErrCheckInNotFound = errors.New("check-in not found")
)

// Viewer identifies who is asking. Admins and head coaches see the full
// roster; coaches see only their own clients.
type Viewer struct {
	CoachID string
	Role    string
}

func (v Viewer) seesAll() bool {
	return v.Role == domain.RoleAdmin || v.Role == domain.RoleHeadCoach
}

// ClientView is a roster row decorated with the derived risk flags and the
// client's stored adherence score, when one exists.
type ClientView struct {
	domain.Client
	AttentionNeeded    bool
	ExpiringSoon       bool
	NewLeadWithoutPlan bool
	Adherence          *domain.AdherenceScore
}

// RosterService serves the role-scoped client roster views.
type RosterService struct {
	Store  store.Store
	Scores scoring.Strategy
	Hub    *events.Hub

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *RosterService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// ListClients returns the viewer's roster filtered and sorted by q, each row
// decorated with risk flags and adherence.
func (s *RosterService) ListClients(ctx context.Context, v Viewer, q roster.Query) ([]ClientView, error) {
	log := slogx.FromContext(ctx)

	// 1. Scope the base list to the viewer's role.
	var (
		clients []domain.Client
		err     error
	)
	if v.seesAll() {
		clients, err = s.Store.Clients().ListClients(ctx)
	} else {
		clients, err = s.Store.Clients().ListClientsByCoach(ctx, v.CoachID)
	}
	if err != nil {
		log.Error("failed to list clients", slog.Any("error", err))
		return nil, err
	}

	// 2. Apply the view state.
	clients = roster.Clients(clients, q)

	// 3. Decorate with risk flags and adherence scores. A coach viewer gets
	// their own scores; admins get flags only (team adherence lives in the
	// stats rollup).
	var scores map[int64]domain.AdherenceScore
	if !v.seesAll() && s.Scores != nil {
		scores, err = s.Scores.ByCoach(ctx, v.CoachID)
		if err != nil {
			log.Warn("adherence scores unavailable", slog.Any("error", err))
			scores = nil
		}
	}

	now := s.now()
	out := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		view := ClientView{
			Client:             c,
			AttentionNeeded:    scoring.AttentionNeeded(c, now),
			ExpiringSoon:       scoring.ExpiringSoon(c, now),
			NewLeadWithoutPlan: scoring.NewLeadWithoutPlan(c),
		}
		if score, ok := scores[c.ID]; ok {
			view.Adherence = &score
		}
		out = append(out, view)
	}
	return out, nil
}

// ListClientsForCoach returns one named coach's roster with adherence
// decoration. Admins and head coaches may read any roster; a coach may
// only read their own.
func (s *RosterService) ListClientsForCoach(ctx context.Context, v Viewer, coachID string, q roster.Query) ([]ClientView, error) {
	if !v.seesAll() && v.CoachID != coachID {
		return nil, ErrNotYourRoster
	}
	return s.ListClients(ctx, Viewer{CoachID: coachID, Role: domain.RoleCoach}, q)
}

// CoachAdherence returns the stored adherence scores for one coach's
// roster, keyed by client id. Access follows the same rule as
// ListClientsForCoach.
func (s *RosterService) CoachAdherence(ctx context.Context, v Viewer, coachID string) (map[int64]domain.AdherenceScore, error) {
	if !v.seesAll() && v.CoachID != coachID {
		return nil, ErrNotYourRoster
	}
	if s.Scores == nil {
		return map[int64]domain.AdherenceScore{}, nil
	}
	return s.Scores.ByCoach(ctx, coachID)
}

// GetClient returns one client, enforcing roster ownership for coach
// viewers.
func (s *RosterService) GetClient(ctx context.Context, v Viewer, id int64) (ClientView, error) {
	log := slogx.FromContext(ctx)

	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClientView{}, ErrClientNotFound
		}
		log.Error("failed to fetch client", slog.Any("error", err))
		return ClientView{}, err
	}

	if !v.seesAll() && c.CoachID != v.CoachID {
		log.Warn("coach requested a client outside their roster",
			slog.Int64("client_id", id),
		)
		return ClientView{}, ErrNotYourClient
	}

	now := s.now()
	return ClientView{
		Client:             c,
		AttentionNeeded:    scoring.AttentionNeeded(c, now),
		ExpiringSoon:       scoring.ExpiringSoon(c, now),
		NewLeadWithoutPlan: scoring.NewLeadWithoutPlan(c),
	}, nil
}

var validClientStatuses = map[string]bool{
	domain.ClientActive:   true,
	domain.ClientInactive: true,
	domain.ClientPaused:   true,
	domain.ClientLead:     true,
	domain.ClientNewLead:  true,
	domain.ClientPending:  true,
}

// UpdateClientStatus moves a client between lifecycle statuses, enforcing
// roster ownership for coach viewers.
func (s *RosterService) UpdateClientStatus(ctx context.Context, v Viewer, id int64, status string) error {
	log := slogx.FromContext(ctx)

	if !validClientStatuses[status] {
		return ErrInvalidStatus
	}

	if _, err := s.GetClient(ctx, v, id); err != nil {
		return err
	}

	if err := s.Store.Clients().UpdateClientStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		log.Error("failed to update client status",
			slog.Int64("client_id", id),
			slog.Any("error", err),
		)
		return err
	}

	if s.Hub != nil {
		s.Hub.Publish(events.Event{
			Kind:    events.KindClientUpdated,
			Payload: map[string]any{"client_id": id, "status": status},
		})
	}

	log.Info("client status updated",
		slog.Int64("client_id", id),
		slog.String("status", status),
	)
	return nil
}

// ListCheckIns returns a client's check-in history, newest first, enforcing
// roster ownership for coach viewers.
func (s *RosterService) ListCheckIns(ctx context.Context, v Viewer, clientID int64) ([]domain.CheckIn, error) {
	if _, err := s.GetClient(ctx, v, clientID); err != nil {
		return nil, err
	}
	return s.Store.CheckIns().ListCheckInsByClient(ctx, clientID)
}

// RecordCheckIn stores a client-submitted check-in against a roster client.
func (s *RosterService) RecordCheckIn(ctx context.Context, v Viewer, c domain.CheckIn) (domain.CheckIn, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.GetClient(ctx, v, c.ClientID); err != nil {
		return domain.CheckIn{}, err
	}

	c.ID = idx.New().String()
	c.Reviewed = false
	c.CreatedAt = s.now()
	if c.Date.IsZero() {
		c.Date = c.CreatedAt
	}

	if err := s.Store.CheckIns().CreateCheckIn(ctx, c); err != nil {
		log.Error("failed to record check-in",
			slog.Int64("client_id", c.ClientID),
			slog.Any("error", err),
		)
		return domain.CheckIn{}, err
	}

	log.Info("check-in recorded",
		slog.String("check_in_id", c.ID),
		slog.Int64("client_id", c.ClientID),
	)
	return c, nil
}

// ReviewCheckIn flips the reviewed flag on a roster client's check-in.
func (s *RosterService) ReviewCheckIn(ctx context.Context, v Viewer, clientID int64, checkInID string) error {
	if _, err := s.GetClient(ctx, v, clientID); err != nil {
		return err
	}

	if err := s.Store.CheckIns().MarkCheckInReviewed(ctx, checkInID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCheckInNotFound
		}
		return err
	}
	return nil
}

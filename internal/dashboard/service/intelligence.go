package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/events"
	"github.com/peakform/coachdesk/internal/dashboard/scoring"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/pkg/slogx"
)

var ErrIntelligenceNotFound = errors.New("intelligence item not found")

// IntelligenceService serves the advisory feed and churn report. Items are
// produced elsewhere; this layer lists and resolves them.
type IntelligenceService struct {
	Store store.Store
	Hub   *events.Hub
}

// Feed returns the unresolved advisories, newest first.
func (s *IntelligenceService) Feed(ctx context.Context) ([]domain.IntelligenceItem, error) {
	return s.Store.Intelligence().ListIntelligence(ctx)
}

// Resolve marks an advisory handled. It reports whether this call performed
// the transition: resolving an already-resolved item returns false with no
// error, so double-clicks are harmless.
func (s *IntelligenceService) Resolve(ctx context.Context, id string) (bool, error) {
	log := slogx.FromContext(ctx)

	if err := s.Store.Intelligence().MarkIntelligenceResolved(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Distinguish "never existed" from "already resolved".
			if _, getErr := s.Store.Intelligence().GetIntelligenceByID(ctx, id); getErr != nil {
				if errors.Is(getErr, store.ErrNotFound) {
					return false, ErrIntelligenceNotFound
				}
				return false, getErr
			}
			return false, nil
		}
		log.Error("failed to resolve intelligence item",
			slog.String("item_id", id),
			slog.Any("error", err),
		)
		return false, err
	}

	if s.Hub != nil {
		s.Hub.Publish(events.Event{
			Kind:    events.KindIntelligence,
			Payload: map[string]string{"item_id": id},
		})
	}

	log.Info("intelligence item resolved", slog.String("item_id", id))
	return true, nil
}

// ChurnReport returns the stored churn risks ordered for display, high risk
// first with relative order otherwise preserved.
func (s *IntelligenceService) ChurnReport(ctx context.Context) ([]domain.ChurnRisk, error) {
	risks, err := s.Store.Intelligence().ListChurnRisks(ctx)
	if err != nil {
		return nil, err
	}
	return scoring.SortByRisk(risks), nil
}

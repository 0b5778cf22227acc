package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/events"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/pkg/slogx"
)

var ErrInvalidTheme = errors.New("invalid theme")

// PreferencesService persists per-coach dashboard UI state.
type PreferencesService struct {
	Store store.Store
	Hub   *events.Hub
}

// Get returns a coach's saved preferences, or the defaults when nothing has
// been saved yet.
func (s *PreferencesService) Get(ctx context.Context, coachID string) (domain.Preference, error) {
	p, err := s.Store.Preferences().GetPreference(ctx, coachID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.DefaultPreference(coachID), nil
		}
		return domain.Preference{}, err
	}
	return p, nil
}

// Save validates and persists a coach's preferences.
func (s *PreferencesService) Save(ctx context.Context, p domain.Preference) (domain.Preference, error) {
	log := slogx.FromContext(ctx)

	switch p.Theme {
	case domain.ThemeSystem, domain.ThemeLight, domain.ThemeDark:
	default:
		return domain.Preference{}, ErrInvalidTheme
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.Store.Preferences().UpsertPreference(ctx, p); err != nil {
		log.Error("failed to save preferences",
			slog.String("coach_id", p.CoachID),
			slog.Any("error", err),
		)
		return domain.Preference{}, err
	}

	if s.Hub != nil {
		s.Hub.Publish(events.Event{
			Kind:    events.KindPreferences,
			Payload: map[string]string{"coach_id": p.CoachID},
		})
	}

	return p, nil
}

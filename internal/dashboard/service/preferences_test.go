package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/service"
)

func TestPreferencesDefaultsUntilSaved(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	svc := &service.PreferencesService{Store: s}
	ctx := context.Background()
	coach := seedCoach(t, s, domain.RoleCoach, domain.CoachActive)

	p, err := svc.Get(ctx, coach.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ThemeSystem, p.Theme)
	require.True(t, p.SidebarOpen)

	_, err = svc.Save(ctx, domain.Preference{CoachID: coach.ID, Theme: "neon"})
	require.ErrorIs(t, err, service.ErrInvalidTheme)

	saved, err := svc.Save(ctx, domain.Preference{
		CoachID: coach.ID, Theme: domain.ThemeDark, SidebarOpen: false,
	})
	require.NoError(t, err)
	require.False(t, saved.UpdatedAt.IsZero())

	p, err = svc.Get(ctx, coach.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ThemeDark, p.Theme)
	require.False(t, p.SidebarOpen)
}

package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/store"
	"github.com/peakform/coachdesk/internal/dashboard/store/drivers/sqlite"
	"github.com/peakform/coachdesk/pkg/idx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "dashboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedCoach(t *testing.T, s store.Store, role, status string) domain.Coach {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	c := domain.Coach{
		ID:        idx.New().String(),
		Name:      "Coach " + idx.New().String()[:6],
		Email:     idx.New().String() + "@peakform.test",
		Role:      role,
		Status:    status,
		Rating:    4.0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Coaches().CreateCoach(context.Background(), c))
	return c
}

func seedClient(t *testing.T, s store.Store, c domain.Client) domain.Client {
	t.Helper()

	if c.ActiveStatusAt.IsZero() {
		c.ActiveStatusAt = time.Now().UTC()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	id, err := s.Clients().CreateClient(context.Background(), c)
	require.NoError(t, err)
	c.ID = id
	return c
}

package sqlite

import (
	"context"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

type preferencesRepo struct {
	db dbtx
}

func (r *preferencesRepo) GetPreference(ctx context.Context, coachID string) (domain.Preference, error) {
	var p domain.Preference
	err := r.db.QueryRowContext(ctx, `
		SELECT coach_id, theme, sidebar_open, updated_at
		FROM preferences WHERE coach_id = ?`, coachID).
		Scan(&p.CoachID, &p.Theme, &p.SidebarOpen, &p.UpdatedAt)
	if err != nil {
		return domain.Preference{}, mapNotFound(err)
	}
	return p, nil
}

func (r *preferencesRepo) UpsertPreference(ctx context.Context, p domain.Preference) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (coach_id, theme, sidebar_open, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (coach_id) DO UPDATE SET
			theme = excluded.theme,
			sidebar_open = excluded.sidebar_open,
			updated_at = excluded.updated_at`,
		p.CoachID, p.Theme, p.SidebarOpen, p.UpdatedAt)
	return err
}

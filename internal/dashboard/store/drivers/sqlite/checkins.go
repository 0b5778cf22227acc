package sqlite

import (
	"context"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

type checkInsRepo struct {
	db dbtx
}

func (r *checkInsRepo) ListCheckInsByClient(ctx context.Context, clientID int64) ([]domain.CheckIn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_id, date, weight, calories, reviewed, created_at
		FROM check_ins WHERE client_id = ? ORDER BY date DESC, id`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CheckIn
	for rows.Next() {
		var c domain.CheckIn
		if err := rows.Scan(&c.ID, &c.ClientID, &c.Date, &c.Weight,
			&c.Calories, &c.Reviewed, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *checkInsRepo) CreateCheckIn(ctx context.Context, c domain.CheckIn) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO check_ins (id, client_id, date, weight, calories, reviewed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ClientID, c.Date, c.Weight, c.Calories, c.Reviewed, c.CreatedAt)
	return err
}

func (r *checkInsRepo) MarkCheckInReviewed(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE check_ins SET reviewed = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

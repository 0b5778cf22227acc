package sqlite

import (
	"context"
	"database/sql"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

type adherenceRepo struct {
	db dbtx
}

func (r *adherenceRepo) ListScoresByCoach(ctx context.Context, coachID string) ([]domain.AdherenceScore, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.client_id, a.score, a.improving, a.computed_at
		FROM adherence_scores a
		JOIN clients c ON c.id = a.client_id
		WHERE c.coach_id = ?
		ORDER BY a.client_id`, coachID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAdherenceScores(rows)
}

func (r *adherenceRepo) ListScores(ctx context.Context) ([]domain.AdherenceScore, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT client_id, score, improving, computed_at
		FROM adherence_scores ORDER BY client_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAdherenceScores(rows)
}

func (r *adherenceRepo) UpsertScore(ctx context.Context, s domain.AdherenceScore) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adherence_scores (client_id, score, improving, computed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (client_id) DO UPDATE SET
			score = excluded.score,
			improving = excluded.improving,
			computed_at = excluded.computed_at`,
		s.ClientID, s.Score, s.Improving, s.ComputedAt)
	return err
}

func scanAdherenceScores(rows *sql.Rows) ([]domain.AdherenceScore, error) {
	var out []domain.AdherenceScore
	for rows.Next() {
		var s domain.AdherenceScore
		if err := rows.Scan(&s.ClientID, &s.Score, &s.Improving, &s.ComputedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

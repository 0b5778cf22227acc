package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/store"
)

type coachesRepo struct {
	db dbtx
}

const coachColumns = `id, name, email, role, status, rating, max_clients,
	max_load, image_url, specialization, created_at, updated_at`

func (r *coachesRepo) ListCoaches(ctx context.Context) ([]domain.Coach, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+coachColumns+` FROM coaches ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Coach
	for rows.Next() {
		c, err := scanCoach(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *coachesRepo) GetCoachByID(ctx context.Context, id string) (domain.Coach, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+coachColumns+` FROM coaches WHERE id = ?`, id)

	c, err := scanCoach(row)
	if err != nil {
		return domain.Coach{}, mapNotFound(err)
	}
	return c, nil
}

func (r *coachesRepo) GetCoachByEmail(ctx context.Context, email string) (domain.Coach, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+coachColumns+` FROM coaches WHERE lower(email) = ?`,
		strings.ToLower(email))

	c, err := scanCoach(row)
	if err != nil {
		return domain.Coach{}, mapNotFound(err)
	}
	return c, nil
}

func (r *coachesRepo) CreateCoach(ctx context.Context, c domain.Coach) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO coaches (
			id, name, email, role, status, rating, max_clients, max_load,
			image_url, specialization, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Role, c.Status, c.Rating, c.MaxClients,
		c.MaxLoad, c.ImageURL, c.Specialization, c.CreatedAt, c.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *coachesRepo) UpdateCoachStatus(ctx context.Context, id string, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE coaches SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func scanCoach(row rowScanner) (domain.Coach, error) {
	var c domain.Coach
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Role, &c.Status, &c.Rating,
		&c.MaxClients, &c.MaxLoad, &c.ImageURL, &c.Specialization,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Coach{}, err
	}
	return c, nil
}

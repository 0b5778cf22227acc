package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

type clientsRepo struct {
	db dbtx
}

const clientColumns = `id, full_name, email, status, coach_id, package_name,
	subscription_end_date, active_subscription, onboarding_call_done,
	workout_plan_link, initial_weight, weight_kg, active_status_at, created_at`

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClients(rows)
}

func (r *clientsRepo) ListClientsByCoach(ctx context.Context, coachID string) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE coach_id = ? ORDER BY id`, coachID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanClients(rows)
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id int64) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)

	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (
			full_name, email, status, coach_id, package_name,
			subscription_end_date, active_subscription, onboarding_call_done,
			workout_plan_link, initial_weight, weight_kg, active_status_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.FullName, c.Email, c.Status, mapStringNull(c.CoachID), c.PackageName,
		mapOptionalTime(c.SubscriptionEndDate), c.ActiveSubscription, c.OnboardingCallDone,
		mapStringNull(c.WorkoutPlanLink), c.InitialWeight, c.WeightKG,
		c.ActiveStatusAt, c.CreatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *clientsRepo) UpdateClientStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET status = ?, active_status_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (domain.Client, error) {
	var (
		c       domain.Client
		coachID sql.NullString
		endDate sql.NullTime
		plan    sql.NullString
	)
	err := row.Scan(&c.ID, &c.FullName, &c.Email, &c.Status, &coachID,
		&c.PackageName, &endDate, &c.ActiveSubscription, &c.OnboardingCallDone,
		&plan, &c.InitialWeight, &c.WeightKG, &c.ActiveStatusAt, &c.CreatedAt)
	if err != nil {
		return domain.Client{}, err
	}

	c.CoachID = mapNullString(coachID)
	c.SubscriptionEndDate = mapNullTimePtr(endDate)
	c.WorkoutPlanLink = mapNullString(plan)
	return c, nil
}

func scanClients(rows *sql.Rows) ([]domain.Client, error) {
	var out []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

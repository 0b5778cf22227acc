package sqlite

import (
	"context"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

type revenueRepo struct {
	db dbtx
}

// ListRevenueByPlan preserves the stored position order; the first row is
// the top performing plan.
func (r *revenueRepo) ListRevenueByPlan(ctx context.Context) ([]domain.RevenuePlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT plan, revenue, clients FROM revenue_by_plan ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RevenuePlan
	for rows.Next() {
		var p domain.RevenuePlan
		if err := rows.Scan(&p.Plan, &p.Revenue, &p.Clients); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *revenueRepo) ListRevenueOverTime(ctx context.Context) ([]domain.RevenuePoint, error) {
	return r.listPoints(ctx,
		`SELECT period, revenue FROM revenue_over_time ORDER BY period`)
}

func (r *revenueRepo) ListRevenueByYear(ctx context.Context) ([]domain.RevenuePoint, error) {
	return r.listPoints(ctx,
		`SELECT period, revenue FROM revenue_by_year ORDER BY period`)
}

func (r *revenueRepo) ReplaceRevenueByPlan(ctx context.Context, plans []domain.RevenuePlan) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM revenue_by_plan`); err != nil {
		return err
	}
	for i, p := range plans {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO revenue_by_plan (position, plan, revenue, clients) VALUES (?, ?, ?, ?)`,
			i, p.Plan, p.Revenue, p.Clients)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *revenueRepo) ReplaceRevenueOverTime(ctx context.Context, points []domain.RevenuePoint) error {
	return r.replacePoints(ctx, "revenue_over_time", points)
}

func (r *revenueRepo) ReplaceRevenueByYear(ctx context.Context, points []domain.RevenuePoint) error {
	return r.replacePoints(ctx, "revenue_by_year", points)
}

func (r *revenueRepo) replacePoints(ctx context.Context, table string, points []domain.RevenuePoint) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return err
	}
	for _, p := range points {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO `+table+` (period, revenue) VALUES (?, ?)`, p.Period, p.Revenue)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *revenueRepo) listPoints(ctx context.Context, query string) ([]domain.RevenuePoint, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RevenuePoint
	for rows.Next() {
		var p domain.RevenuePoint
		if err := rows.Scan(&p.Period, &p.Revenue); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

type intelligenceRepo struct {
	db dbtx
}

func (r *intelligenceRepo) ListIntelligence(ctx context.Context) ([]domain.IntelligenceItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, severity, message, client_id, resolved, created_at
		FROM intelligence_items WHERE resolved = 0
		ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.IntelligenceItem
	for rows.Next() {
		item, err := scanIntelligenceItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *intelligenceRepo) GetIntelligenceByID(ctx context.Context, id string) (domain.IntelligenceItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, type, severity, message, client_id, resolved, created_at
		FROM intelligence_items WHERE id = ?`, id)

	item, err := scanIntelligenceItem(row)
	if err != nil {
		return domain.IntelligenceItem{}, mapNotFound(err)
	}
	return item, nil
}

// MarkIntelligenceResolved guards on resolved = 0 so resolving twice reports
// a miss instead of silently succeeding.
func (r *intelligenceRepo) MarkIntelligenceResolved(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE intelligence_items SET resolved = 1 WHERE id = ? AND resolved = 0`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *intelligenceRepo) CreateIntelligenceItem(ctx context.Context, item domain.IntelligenceItem) error {
	var clientID sql.NullInt64
	if item.ClientID != nil {
		clientID = sql.NullInt64{Int64: *item.ClientID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO intelligence_items (id, type, severity, message, client_id, resolved, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Type, item.Severity, item.Message, clientID,
		item.Resolved, item.CreatedAt)
	return err
}

func (r *intelligenceRepo) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM intelligence_items WHERE resolved = 1 AND created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *intelligenceRepo) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM intelligence_items WHERE resolved = 0`).Scan(&n)
	return n, err
}

func (r *intelligenceRepo) ListChurnRisks(ctx context.Context) ([]domain.ChurnRisk, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, client_id, risk_level, risk_factors, message, created_at
		FROM churn_risks ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ChurnRisk
	for rows.Next() {
		var (
			risk    domain.ChurnRisk
			factors string
		)
		if err := rows.Scan(&risk.ID, &risk.ClientID, &risk.RiskLevel,
			&factors, &risk.Message, &risk.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(factors), &risk.RiskFactors); err != nil {
			return nil, err
		}
		out = append(out, risk)
	}
	return out, rows.Err()
}

func (r *intelligenceRepo) CreateChurnRisk(ctx context.Context, risk domain.ChurnRisk) error {
	factors := risk.RiskFactors
	if factors == nil {
		factors = []string{}
	}
	encoded, err := json.Marshal(factors)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO churn_risks (id, client_id, risk_level, risk_factors, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		risk.ID, risk.ClientID, risk.RiskLevel, string(encoded), risk.Message, risk.CreatedAt)
	return err
}

func scanIntelligenceItem(row rowScanner) (domain.IntelligenceItem, error) {
	var (
		item     domain.IntelligenceItem
		clientID sql.NullInt64
	)
	err := row.Scan(&item.ID, &item.Type, &item.Severity, &item.Message,
		&clientID, &item.Resolved, &item.CreatedAt)
	if err != nil {
		return domain.IntelligenceItem{}, err
	}
	if clientID.Valid {
		val := clientID.Int64
		item.ClientID = &val
	}
	return item, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
	"github.com/peakform/coachdesk/internal/dashboard/store"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, token_hash, email, role, status, invited_by,
	expires_at, used_by, created_at, updated_at`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (
			id, token_hash, email, role, status, invited_by, expires_at,
			used_by, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TokenHash, inv.Email, inv.Role, inv.Status, inv.InvitedBy,
		inv.ExpiresAt, mapStringNull(inv.UsedBy), inv.CreatedAt, inv.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id)

	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash)

	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

// MarkInvitationUsed guards on status = pending so terminal rows never
// transition, even under concurrent redemption attempts.
func (r *invitationsRepo) MarkInvitationUsed(ctx context.Context, id string, usedBy string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations SET status = ?, used_by = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		domain.InvitationUsed, usedBy, time.Now().UTC(), id, domain.InvitationPending)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *invitationsRepo) MarkInvitationExpired(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations SET status = ?, updated_at = ?
		WHERE id = ? AND status = ?`,
		domain.InvitationExpired, time.Now().UTC(), id, domain.InvitationPending)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *invitationsRepo) ExpirePastDue(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations SET status = ?, updated_at = ?
		WHERE status = ? AND expires_at <= ?`,
		domain.InvitationExpired, now, domain.InvitationPending, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var (
		inv    domain.Invitation
		usedBy sql.NullString
	)
	err := row.Scan(&inv.ID, &inv.TokenHash, &inv.Email, &inv.Role, &inv.Status,
		&inv.InvitedBy, &inv.ExpiresAt, &usedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invitation{}, err
	}
	inv.UsedBy = mapNullString(usedBy)
	return inv, nil
}

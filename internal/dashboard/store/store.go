package store

import (
	"context"
	"errors"
	"time"

	"github.com/peakform/coachdesk/internal/dashboard/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it.
// Sub-repositories keep concerns tidy and testable, and make it harder to
// accidentally start a transaction inside a transaction.
type Store interface {
	Clients() Clients
	Coaches() Coaches
	CheckIns() CheckIns
	Invitations() Invitations
	Intelligence() Intelligence
	Adherence() Adherence
	Revenue() Revenue
	Preferences() Preferences

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back if fn returns
	// an error and committing otherwise. Prefer this over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store with Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Clients interface {
	// ListClients returns every client, ordered by id.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// ListClientsByCoach returns the roster assigned to one coach.
	ListClientsByCoach(ctx context.Context, coachID string) ([]domain.Client, error)

	// GetClientByID returns a single client.
	GetClientByID(ctx context.Context, id int64) (domain.Client, error)

	// CreateClient inserts a new client and returns its assigned id.
	CreateClient(ctx context.Context, c domain.Client) (int64, error)

	// UpdateClientStatus sets status and bumps active_status_at.
	UpdateClientStatus(ctx context.Context, id int64, status string) error
}

type Coaches interface {
	// ListCoaches returns every coach, newest first.
	ListCoaches(ctx context.Context) ([]domain.Coach, error)

	// GetCoachByID returns a single coach.
	GetCoachByID(ctx context.Context, id string) (domain.Coach, error)

	// GetCoachByEmail is used during invitation redemption to reject
	// duplicate signups.
	GetCoachByEmail(ctx context.Context, email string) (domain.Coach, error)

	// CreateCoach inserts a new coach (id provided by the app).
	CreateCoach(ctx context.Context, c domain.Coach) error

	// UpdateCoachStatus mutates the lifecycle status and bumps updated_at.
	UpdateCoachStatus(ctx context.Context, id string, status string) error
}

type CheckIns interface {
	// ListCheckInsByClient returns a client's check-in history, newest
	// first.
	ListCheckInsByClient(ctx context.Context, clientID int64) ([]domain.CheckIn, error)

	// CreateCheckIn stores a client-submitted check-in.
	CreateCheckIn(ctx context.Context, c domain.CheckIn) error

	// MarkCheckInReviewed flips the reviewed flag.
	MarkCheckInReviewed(ctx context.Context, id string) error
}

type Invitations interface {
	// CreateInvitation writes a new pending invitation (token_hash is the
	// SHA-256 fingerprint of the opaque token).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation regardless of status.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetInvitationByTokenHash returns an invitation by fingerprint
	// regardless of status, so redemption can distinguish "unknown token"
	// from "used" or "expired".
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// MarkInvitationUsed transitions pending -> used and records the new
	// coach. Only pending rows transition; others report ErrNotFound.
	MarkInvitationUsed(ctx context.Context, id string, usedBy string) error

	// MarkInvitationExpired transitions pending -> expired (admin revoke).
	// Only pending rows transition; others report ErrNotFound.
	MarkInvitationExpired(ctx context.Context, id string) error

	// ExpirePastDue sweeps pending invitations whose expiry has passed and
	// returns how many were transitioned.
	ExpirePastDue(ctx context.Context, now time.Time) (int64, error)
}

type Intelligence interface {
	// ListIntelligence returns unresolved feed items, newest first.
	ListIntelligence(ctx context.Context) ([]domain.IntelligenceItem, error)

	// GetIntelligenceByID returns a single item.
	GetIntelligenceByID(ctx context.Context, id string) (domain.IntelligenceItem, error)

	// MarkIntelligenceResolved flips resolved on an unresolved item.
	MarkIntelligenceResolved(ctx context.Context, id string) error

	// CreateIntelligenceItem inserts a server-produced advisory (the
	// generation pipeline writes through this).
	CreateIntelligenceItem(ctx context.Context, item domain.IntelligenceItem) error

	// DeleteResolvedBefore prunes resolved items older than cutoff.
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// CountPending returns the number of unresolved items.
	CountPending(ctx context.Context) (int, error)

	// ListChurnRisks returns the server-produced churn report rows.
	ListChurnRisks(ctx context.Context) ([]domain.ChurnRisk, error)

	// CreateChurnRisk inserts a churn report row (pipeline write path).
	CreateChurnRisk(ctx context.Context, r domain.ChurnRisk) error
}

type Adherence interface {
	// ListScoresByCoach returns stored adherence scores for the clients
	// assigned to one coach.
	ListScoresByCoach(ctx context.Context, coachID string) ([]domain.AdherenceScore, error)

	// ListScores returns every stored adherence score.
	ListScores(ctx context.Context) ([]domain.AdherenceScore, error)

	// UpsertScore writes a pipeline-produced score for a client.
	UpsertScore(ctx context.Context, s domain.AdherenceScore) error
}

type Revenue interface {
	// ListRevenueByPlan returns the by-plan series in stored (pre-sorted)
	// order.
	ListRevenueByPlan(ctx context.Context) ([]domain.RevenuePlan, error)

	// ListRevenueOverTime returns the monthly series in period order.
	ListRevenueOverTime(ctx context.Context) ([]domain.RevenuePoint, error)

	// ListRevenueByYear returns the yearly series in period order.
	ListRevenueByYear(ctx context.Context) ([]domain.RevenuePoint, error)

	// ReplaceRevenueByPlan swaps the by-plan series for a fresh import. The
	// slice order is persisted; callers must pre-sort by revenue descending.
	ReplaceRevenueByPlan(ctx context.Context, plans []domain.RevenuePlan) error

	// ReplaceRevenueOverTime swaps the monthly series for a fresh import.
	ReplaceRevenueOverTime(ctx context.Context, points []domain.RevenuePoint) error

	// ReplaceRevenueByYear swaps the yearly series for a fresh import.
	ReplaceRevenueByYear(ctx context.Context, points []domain.RevenuePoint) error
}

type Preferences interface {
	// GetPreference returns a coach's saved dashboard preferences.
	GetPreference(ctx context.Context, coachID string) (domain.Preference, error)

	// UpsertPreference saves a coach's dashboard preferences.
	UpsertPreference(ctx context.Context, p domain.Preference) error
}

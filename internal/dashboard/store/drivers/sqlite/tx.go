package sqlite

import (
	"context"
	"database/sql"

	"github.com/peakform/coachdesk/internal/dashboard/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open; caller commits or rolls back

// Ping is a no-op inside a transaction; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts

func (t *txStore) Clients() store.Clients           { return &clientsRepo{db: t.tx} }
func (t *txStore) Coaches() store.Coaches           { return &coachesRepo{db: t.tx} }
func (t *txStore) CheckIns() store.CheckIns         { return &checkInsRepo{db: t.tx} }
func (t *txStore) Invitations() store.Invitations   { return &invitationsRepo{db: t.tx} }
func (t *txStore) Intelligence() store.Intelligence { return &intelligenceRepo{db: t.tx} }
func (t *txStore) Adherence() store.Adherence       { return &adherenceRepo{db: t.tx} }
func (t *txStore) Revenue() store.Revenue           { return &revenueRepo{db: t.tx} }
func (t *txStore) Preferences() store.Preferences   { return &preferencesRepo{db: t.tx} }

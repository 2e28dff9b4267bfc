package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the subset of pgx shared by pgxpool.Pool and pgx.Tx, letting the
// same store code run inside and outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type pgProvider struct {
	q querier
}

func (p *pgProvider) Users() UserStore                 { return &userStore{q: p.q} }
func (p *pgProvider) Organizations() OrganizationStore { return &organizationStore{q: p.q} }
func (p *pgProvider) Projects() ProjectStore           { return &projectStore{q: p.q} }
func (p *pgProvider) Tasks() TaskStore                 { return &taskStore{q: p.q} }
func (p *pgProvider) Comments() CommentStore           { return &commentStore{q: p.q} }

// Postgres is the pgx-backed Provider and TxRunner.
type Postgres struct {
	pgProvider
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{
		pgProvider: pgProvider{q: pool},
		pool:       pool,
	}
}

func (p *Postgres) WithTx(ctx context.Context, fn func(stores Provider) error) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if err := fn(&pgProvider{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/alertwatch/alertwatch/internal/domain"
	"github.com/alertwatch/alertwatch/internal/repo"
)

var _ repo.AlertStore = (*Store)(nil)

// Store persists alerts in Postgres. Expected table:
//
//	alerts (id BIGSERIAL PRIMARY KEY, email TEXT NOT NULL,
//	        threshold DOUBLE PRECISION NOT NULL, active BOOLEAN NOT NULL,
//	        triggered_at TIMESTAMPTZ NULL, created_at TIMESTAMPTZ NOT NULL)
type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func New(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) Create(ctx context.Context, email string, threshold float64) (*domain.Alert, error) {
	a := &domain.Alert{
		Email:     email,
		Threshold: threshold,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO alerts (email, threshold, active, triggered_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		a.Email, a.Threshold, a.Active, a.TriggeredAt, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return nil, fmt.Errorf("insert alert: %w", err)
	}
	return a, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Alert, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, email, threshold, active, triggered_at, created_at
		   FROM alerts
		  WHERE id = $1`, id)
	var a domain.Alert
	err := row.Scan(&a.ID, &a.Email, &a.Threshold, &a.Active, &a.TriggeredAt, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

func (s *Store) List(ctx context.Context, active *bool) ([]*domain.Alert, error) {
	q := `SELECT id, email, threshold, active, triggered_at, created_at
	        FROM alerts
	       ORDER BY created_at DESC, id DESC`
	args := []any{}
	if active != nil {
		q = `SELECT id, email, threshold, active, triggered_at, created_at
		       FROM alerts
		      WHERE active = $1
		      ORDER BY created_at DESC, id DESC`
		args = append(args, *active)
	}

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var out []*domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(&a.ID, &a.Email, &a.Threshold, &a.Active, &a.TriggeredAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

// Update writes the whole row in one statement, so the commit is atomic
// per call. Unsupplied fields carry the values read with the alert, which
// makes concurrent updates to one id last-writer-wins.
func (s *Store) Update(ctx context.Context, a *domain.Alert, upd domain.Update) (*domain.Alert, error) {
	next := *a
	upd.Apply(&next)

	tag, err := s.pool.Exec(ctx,
		`UPDATE alerts
		    SET email = $1, threshold = $2, active = $3, triggered_at = $4
		  WHERE id = $5`,
		next.Email, next.Threshold, next.Active, next.TriggeredAt, next.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("update alert %d: not found", next.ID)
	}
	return &next, nil
}

func (s *Store) Delete(ctx context.Context, a *domain.Alert) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM alerts WHERE id = $1`, a.ID)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete alert %d: not found", a.ID)
	}
	return nil
}

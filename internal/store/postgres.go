package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/assess-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies
// it for tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresWithPool wraps an existing pool (or mock) without pinging.
func NewPostgresWithPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS assessments (
	id             TEXT PRIMARY KEY,
	agency_name    TEXT NOT NULL DEFAULT '',
	submission     JSONB NOT NULL,
	record         JSONB NOT NULL,
	classification TEXT NOT NULL DEFAULT '',
	overall        INTEGER NOT NULL DEFAULT 0,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_assessments_agency ON assessments(agency_name);
CREATE INDEX IF NOT EXISTS idx_assessments_classification ON assessments(classification);
CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at DESC);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveAssessment(ctx context.Context, agencyName string, sub model.Submission, record model.ResultsRecord) (*model.Assessment, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	subJSON, err := json.Marshal(sub)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal submission")
	}
	recJSON, err := json.Marshal(record)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal record")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO assessments (id, agency_name, submission, record, classification, overall, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, agencyName, subJSON, recJSON,
		record.Valuation.Classification, record.Scores.Overall, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert assessment")
	}

	return &model.Assessment{
		ID:         id,
		Submission: sub,
		Record:     record,
		AgencyName: agencyName,
		CreatedAt:  now,
	}, nil
}

func (s *PostgresStore) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, agency_name, submission, record, created_at FROM assessments WHERE id = $1`, id,
	)
	a, err := scanPgAssessment(row)
	if err != nil {
		if eris.Is(err, pgx.ErrNoRows) {
			return nil, eris.Errorf("postgres: assessment %s not found", id)
		}
		return nil, eris.Wrapf(err, "postgres: get assessment %s", id)
	}
	return a, nil
}

func (s *PostgresStore) ListAssessments(ctx context.Context, filter ListFilter) ([]model.Assessment, error) {
	query := `SELECT id, agency_name, submission, record, created_at FROM assessments WHERE 1=1`
	var args []any
	argNum := 1

	if filter.AgencyName != "" {
		query += fmt.Sprintf(` AND agency_name = $%d`, argNum)
		args = append(args, filter.AgencyName)
		argNum++
	}
	if filter.Classification != "" {
		query += fmt.Sprintf(` AND classification = $%d`, argNum)
		args = append(args, filter.Classification)
		argNum++
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, argNum)
		args = append(args, filter.Limit)
		argNum++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET $%d`, argNum)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list assessments")
	}
	defer rows.Close()

	var assessments []model.Assessment
	for rows.Next() {
		a, err := scanPgAssessment(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan assessment")
		}
		assessments = append(assessments, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate assessments")
	}
	return assessments, nil
}

func scanPgAssessment(row pgx.Row) (*model.Assessment, error) {
	var a model.Assessment
	var subJSON, recJSON []byte
	if err := row.Scan(&a.ID, &a.AgencyName, &subJSON, &recJSON, &a.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(subJSON, &a.Submission); err != nil {
		return nil, eris.Wrap(err, "unmarshal submission")
	}
	if err := json.Unmarshal(recJSON, &a.Record); err != nil {
		return nil, eris.Wrap(err, "unmarshal record")
	}
	return &a, nil
}

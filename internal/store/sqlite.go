package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/assess-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS assessments (
	id             TEXT PRIMARY KEY,
	agency_name    TEXT NOT NULL DEFAULT '',
	submission     TEXT NOT NULL,
	record         TEXT NOT NULL,
	classification TEXT NOT NULL DEFAULT '',
	overall        INTEGER NOT NULL DEFAULT 0,
	created_at     DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_assessments_agency ON assessments(agency_name);
CREATE INDEX IF NOT EXISTS idx_assessments_classification ON assessments(classification);
CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at DESC);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveAssessment(ctx context.Context, agencyName string, sub model.Submission, record model.ResultsRecord) (*model.Assessment, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	subJSON, err := json.Marshal(sub)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal submission")
	}
	recJSON, err := json.Marshal(record)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal record")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, agency_name, submission, record, classification, overall, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, agencyName, string(subJSON), string(recJSON),
		record.Valuation.Classification, record.Scores.Overall, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert assessment")
	}

	return &model.Assessment{
		ID:         id,
		Submission: sub,
		Record:     record,
		AgencyName: agencyName,
		CreatedAt:  now,
	}, nil
}

func (s *SQLiteStore) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, agency_name, submission, record, created_at FROM assessments WHERE id = ?`, id,
	)
	a, err := scanAssessment(row)
	if err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return nil, eris.Errorf("sqlite: assessment %s not found", id)
		}
		return nil, eris.Wrapf(err, "sqlite: get assessment %s", id)
	}
	return a, nil
}

func (s *SQLiteStore) ListAssessments(ctx context.Context, filter ListFilter) ([]model.Assessment, error) {
	query := `SELECT id, agency_name, submission, record, created_at FROM assessments WHERE 1=1`
	var args []any

	if filter.AgencyName != "" {
		query += ` AND agency_name = ?`
		args = append(args, filter.AgencyName)
	}
	if filter.Classification != "" {
		query += ` AND classification = ?`
		args = append(args, filter.Classification)
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list assessments")
	}
	defer rows.Close()

	var assessments []model.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan assessment")
		}
		assessments = append(assessments, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate assessments")
	}
	return assessments, nil
}

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (*model.Assessment, error) {
	var a model.Assessment
	var subJSON, recJSON string
	if err := row.Scan(&a.ID, &a.AgencyName, &subJSON, &recJSON, &a.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(subJSON), &a.Submission); err != nil {
		return nil, eris.Wrap(err, "unmarshal submission")
	}
	if err := json.Unmarshal([]byte(recJSON), &a.Record); err != nil {
		return nil, eris.Wrap(err, "unmarshal record")
	}
	return &a, nil
}

package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"jobsift/internal/errors"
	"jobsift/internal/requirements"
	"jobsift/internal/types"
)

const jobsSchema = `
CREATE TABLE IF NOT EXISTS jobs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	company     TEXT NOT NULL DEFAULT 'Unknown',
	description TEXT NOT NULL DEFAULT '',
	url         TEXT,
	source      TEXT,
	source_id   TEXT,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_jobs_source ON jobs(source, source_id);
`

// JobStore persists job listings in sqlite so repeated analysis runs do not
// depend on the original export files.
type JobStore struct {
	db *sql.DB
}

// IsStorePath reports whether path looks like a sqlite job store rather
// than a compiled export file.
func IsStorePath(path string) bool {
	switch filepath.Ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// OpenJobStore opens (and if needed creates) the sqlite store at path.
func OpenJobStore(path string) (*JobStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeStoreFailure,
			fmt.Sprintf("Cannot create store directory for %s", path), err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeStoreFailure,
			fmt.Sprintf("Cannot open job store: %s", path), err)
	}
	if _, err := db.Exec(jobsSchema); err != nil {
		db.Close()
		return nil, errors.NewIOError(errors.ErrCodeStoreFailure,
			"Cannot initialize job store schema", err)
	}
	return &JobStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *JobStore) Close() error {
	return s.db.Close()
}

// ImportJobs inserts a batch of jobs in one transaction. Returns the number
// of rows inserted.
func (s *JobStore) ImportJobs(ctx context.Context, jobs []types.JobRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.NewIOError(errors.ErrCodeStoreFailure, "Cannot begin import transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO jobs (title, company, description, url, source, source_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, errors.NewIOError(errors.ErrCodeStoreFailure, "Cannot prepare import statement", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, job := range jobs {
		sourceID := job.SourceID
		if sourceID == "" {
			sourceID = requirements.ExtractSourceID(job.Source, job.URL)
		}
		if _, err := stmt.ExecContext(ctx,
			job.Title, job.Company, job.Description, job.URL, job.Source, sourceID); err != nil {
			return inserted, errors.NewIOError(errors.ErrCodeStoreFailure,
				fmt.Sprintf("Cannot insert job %q", job.Title), err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return inserted, errors.NewIOError(errors.ErrCodeStoreFailure, "Cannot commit import transaction", err)
	}
	return inserted, nil
}

// FetchJobs loads stored jobs in insertion order. A non-positive limit
// fetches everything.
func (s *JobStore) FetchJobs(ctx context.Context, limit int) ([]types.JobRecord, error) {
	query := `
		SELECT id, title, company, description,
		       COALESCE(url, ''), COALESCE(source, ''), COALESCE(source_id, '')
		FROM jobs
		ORDER BY id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeStoreFailure, "Cannot query job store", err)
	}
	defer rows.Close()

	var jobs []types.JobRecord
	for rows.Next() {
		var job types.JobRecord
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Description,
			&job.URL, &job.Source, &job.SourceID); err != nil {
			return nil, errors.NewIOError(errors.ErrCodeStoreFailure, "Cannot scan job row", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeStoreFailure, "Cannot read job rows", err)
	}
	return jobs, nil
}

// CountJobs reports the number of stored jobs.
func (s *JobStore) CountJobs(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM jobs`).Scan(&count); err != nil {
		return 0, errors.NewIOError(errors.ErrCodeStoreFailure, "Cannot count jobs", err)
	}
	return count, nil
}

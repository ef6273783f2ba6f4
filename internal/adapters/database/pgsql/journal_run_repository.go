package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/SscSPs/gl_gateway/internal/core/domain"
	portsrepo "github.com/SscSPs/gl_gateway/internal/core/ports/repositories"
	"github.com/SscSPs/gl_gateway/internal/models"
	"github.com/SscSPs/gl_gateway/internal/utils/mapping"
	"github.com/SscSPs/gl_gateway/internal/utils/pagination"
)

// PgxJournalRunRepository stores journal runs in the journal_runs table.
type PgxJournalRunRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRunRepository creates a new repository for journal runs.
func NewJournalRunRepository(pool *pgxpool.Pool) portsrepo.JournalRunRepository {
	return &PgxJournalRunRepository{pool: pool}
}

var _ portsrepo.JournalRunRepository = (*PgxJournalRunRepository)(nil)

// SaveRun inserts one run. Runs are never updated.
func (r *PgxJournalRunRepository) SaveRun(ctx context.Context, run domain.JournalRun) error {
	m, err := mapping.ToModelJournalRun(run)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO journal_runs (run_id, reference, journal_id, status, failed_step, line_count, error, steps, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.pool.Exec(ctx, query,
		m.RunID,
		m.Reference,
		m.JournalID,
		m.Status,
		m.FailedStep,
		m.LineCount,
		m.Error,
		m.Steps,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save journal run %s: %w", m.RunID, err)
	}
	return nil
}

// ListRuns retrieves a page of runs, newest first, using token-based pagination.
// It returns the runs, a token for the next page (if any), and an error.
func (r *PgxJournalRunRepository) ListRuns(ctx context.Context, status domain.JournalRunStatus, limit int, nextToken *string) ([]domain.JournalRun, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	var where []string
	var args []interface{}
	if status != "" {
		args = append(args, string(status))
		where = append(where, "status = $"+strconv.Itoa(len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %w", apperrors.ErrValidation, err)
		}
		args = append(args, cursor.CreatedAt, cursor.RunID)
		// Tuple comparison keeps the order stable across equal timestamps
		where = append(where, fmt.Sprintf("(created_at, run_id) < ($%d, $%d::uuid)", len(args)-1, len(args)))
	}

	query := `
		SELECT run_id::text, reference, journal_id, status, failed_step, line_count, error, steps, created_at
		FROM journal_runs
	`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, fetchLimit)
	query += " ORDER BY created_at DESC, run_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journal runs: %w", err)
	}
	defer rows.Close()

	modelRuns := make([]models.JournalRun, 0, fetchLimit)
	for rows.Next() {
		var m models.JournalRun
		if err := rows.Scan(
			&m.RunID,
			&m.Reference,
			&m.JournalID,
			&m.Status,
			&m.FailedStep,
			&m.LineCount,
			&m.Error,
			&m.Steps,
			&m.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal run row: %w", err)
		}
		modelRuns = append(modelRuns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal run rows: %w", err)
	}

	// Determine the next token
	var nextTokenVal *string
	results := modelRuns
	if len(modelRuns) > limit {
		last := modelRuns[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{CreatedAt: last.CreatedAt, RunID: last.RunID})
		nextTokenVal = &token
		results = modelRuns[:limit]
	}

	runs := make([]domain.JournalRun, 0, len(results))
	for _, m := range results {
		run, err := mapping.ToDomainJournalRun(m)
		if err != nil {
			return nil, nil, err
		}
		runs = append(runs, run)
	}
	return runs, nextTokenVal, nil
}

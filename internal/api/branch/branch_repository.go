package branch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kuriftu-resorts/experience-api/app/observability/metrics"
	"github.com/kuriftu-resorts/experience-api/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository exposes read access to the branch and activity catalogue.
type Repository interface {
	GetBranches(ctx context.Context) ([]types.Branch, error)
	GetBranch(ctx context.Context, id uuid.UUID) (*types.Branch, error)
	GetActivitiesByBranch(ctx context.Context, branchID uuid.UUID) ([]types.Activity, error)
	GetActivitiesByCategory(ctx context.Context, category string) ([]types.Activity, error)
}

type PostgresRepository struct {
	logger *slog.Logger
	db     DB
}

func NewPostgresRepository(db DB, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		db:     db,
	}
}

// observeQuery feeds the db instruments when metrics are initialized.
func observeQuery(ctx context.Context, start time.Time, err error) {
	m := metrics.Get()
	if m == nil {
		return
	}
	m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		m.DbQueryErrorsTotal.Add(ctx, 1)
	}
}

func (r *PostgresRepository) GetBranches(ctx context.Context) ([]types.Branch, error) {
	query := `
        SELECT id, name, location, description
        FROM branches
        ORDER BY name
    `
	start := time.Now()
	rows, err := r.db.Query(ctx, query)
	observeQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query branches: %w", err)
	}
	defer rows.Close()

	var branches []types.Branch
	for rows.Next() {
		var b types.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Location, &b.Description); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating branches: %w", err)
	}
	return branches, nil
}

func (r *PostgresRepository) GetBranch(ctx context.Context, id uuid.UUID) (*types.Branch, error) {
	query := `
        SELECT id, name, location, description
        FROM branches
        WHERE id = $1
    `
	var b types.Branch
	start := time.Now()
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Location, &b.Description)
	observeQuery(ctx, start, err)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find branch: %w", err)
	}
	return &b, nil
}

func (r *PostgresRepository) GetActivitiesByBranch(ctx context.Context, branchID uuid.UUID) ([]types.Activity, error) {
	query := `
        SELECT id, name, description, category, duration, branch_id
        FROM activities
        WHERE branch_id = $1
        ORDER BY created_at, id
    `
	start := time.Now()
	rows, err := r.db.Query(ctx, query, branchID)
	observeQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities for branch: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func (r *PostgresRepository) GetActivitiesByCategory(ctx context.Context, category string) ([]types.Activity, error) {
	query := `
        SELECT id, name, description, category, duration, branch_id
        FROM activities
        WHERE category = $1
        ORDER BY created_at, id
    `
	start := time.Now()
	rows, err := r.db.Query(ctx, query, category)
	observeQuery(ctx, start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities for category: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

func scanActivities(rows pgx.Rows) ([]types.Activity, error) {
	var activities []types.Activity
	for rows.Next() {
		var a types.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Category, &a.Duration, &a.BranchID); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating activities: %w", err)
	}
	return activities, nil
}

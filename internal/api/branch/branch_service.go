package branch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kuriftu-resorts/experience-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for branch lookups.
type Service interface {
	GetBranches(ctx context.Context) ([]types.Branch, error)
	GetBranch(ctx context.Context, id uuid.UUID) (*types.Branch, error)
	GetActivitiesByBranch(ctx context.Context, branchID uuid.UUID) ([]types.Activity, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

// NewService creates a new branch service instance.
func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// GetBranches returns every resort branch.
func (s *ServiceImpl) GetBranches(ctx context.Context) ([]types.Branch, error) {
	l := s.logger.With(slog.String("method", "GetBranches"))
	l.DebugContext(ctx, "Fetching branches")

	branches, err := s.repo.GetBranches(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch branches", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching branches: %w", err)
	}
	return branches, nil
}

// GetBranch returns one branch, or nil when the ID is unknown.
func (s *ServiceImpl) GetBranch(ctx context.Context, id uuid.UUID) (*types.Branch, error) {
	l := s.logger.With(slog.String("method", "GetBranch"), slog.String("branchID", id.String()))
	l.DebugContext(ctx, "Fetching branch")

	b, err := s.repo.GetBranch(ctx, id)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch branch", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching branch: %w", err)
	}
	return b, nil
}

// GetActivitiesByBranch returns the full activity list for a branch in
// catalogue order. An empty list is a valid result.
func (s *ServiceImpl) GetActivitiesByBranch(ctx context.Context, branchID uuid.UUID) ([]types.Activity, error) {
	l := s.logger.With(slog.String("method", "GetActivitiesByBranch"), slog.String("branchID", branchID.String()))
	l.DebugContext(ctx, "Fetching branch activities")

	activities, err := s.repo.GetActivitiesByBranch(ctx, branchID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch branch activities", slog.Any("error", err))
		return nil, fmt.Errorf("error fetching branch activities: %w", err)
	}
	return activities, nil
}

package chat

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/kuriftu-resorts/experience-api/internal/api/branch"
	generativeAI "github.com/kuriftu-resorts/experience-api/internal/api/generative_ai"
	"github.com/kuriftu-resorts/experience-api/internal/planner"
	"github.com/kuriftu-resorts/experience-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service answers free-form guest questions grounded in the branch
// catalogue. Unlike recommendations there is no deterministic fallback; a
// generation failure is surfaced to the caller.
type Service interface {
	SendMessage(ctx context.Context, message string, prefs types.GuestPreferences, history []types.ConversationTurn) (string, error)
}

type ServiceImpl struct {
	logger     *slog.Logger
	branchRepo branch.Repository
	aiClient   generativeAI.ChatGenerator
}

// NewService creates a new chat service instance.
func NewService(branchRepo branch.Repository, aiClient generativeAI.ChatGenerator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		branchRepo: branchRepo,
		aiClient:   aiClient,
	}
}

// SendMessage builds the resort context for the guest's selected branch and
// asks the generation service for a reply. An unknown branch is not an
// error here; the assistant just loses the branch context.
func (s *ServiceImpl) SendMessage(ctx context.Context, message string, prefs types.GuestPreferences, history []types.ConversationTurn) (string, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "SendMessage", trace.WithAttributes(
		attribute.String("branch.id", prefs.SelectedBranch.String()),
		attribute.Int("history.length", len(history)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "SendMessage"), slog.String("branchID", prefs.SelectedBranch.String()))
	l.DebugContext(ctx, "Handling chat message")

	var (
		branchData *types.Branch
		activities []types.Activity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		branchData, err = s.branchRepo.GetBranch(gctx, prefs.SelectedBranch)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = s.branchRepo.GetActivitiesByBranch(gctx, prefs.SelectedBranch)
		return err
	})
	if err := g.Wait(); err != nil {
		l.ErrorContext(ctx, "Failed to load branch data", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load branch data")
		return "", fmt.Errorf("error loading branch data: %w", err)
	}

	relevant := planner.FilterByInterests(activities, prefs.Interests)
	systemPrompt := buildSystemPrompt(branchData, relevant, prefs)

	reply, err := s.aiClient.GenerateChatResponse(ctx, systemPrompt, message, history)
	if err != nil {
		l.ErrorContext(ctx, "Chat generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Chat generation failed")
		return "", fmt.Errorf("error generating chat response: %w", err)
	}

	span.SetStatus(codes.Ok, "Chat response generated")
	return reply, nil
}

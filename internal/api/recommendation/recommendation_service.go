package recommendation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"github.com/kuriftu-resorts/experience-api/app/observability/metrics"
	"github.com/kuriftu-resorts/experience-api/internal/api/branch"
	generativeAI "github.com/kuriftu-resorts/experience-api/internal/api/generative_ai"
	"github.com/kuriftu-resorts/experience-api/internal/planner"
	"github.com/kuriftu-resorts/experience-api/internal/types"
)

// ErrBranchNotFound marks an unknown branch ID; the pipeline does not run.
var ErrBranchNotFound = errors.New("branch not found")

// Response is the recommendations payload. Activities is the post-filter,
// pre-rank list, in catalogue order, for the caller to display.
type Response struct {
	Branch          types.Branch     `json:"branch"`
	Activities      []types.Activity `json:"activities"`
	Recommendations string           `json:"recommendations"`
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service builds personalized recommendations for a guest.
type Service interface {
	GetRecommendations(ctx context.Context, prefs types.GuestPreferences) (*Response, error)
}

type ServiceImpl struct {
	logger     *slog.Logger
	branchRepo branch.Repository
	aiClient   generativeAI.Generator
	cache      *cache.Cache
}

// NewService creates a new recommendation service instance.
func NewService(branchRepo branch.Repository, aiClient generativeAI.Generator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		branchRepo: branchRepo,
		aiClient:   aiClient,
		cache:      cache.New(24*time.Hour, 1*time.Hour),
	}
}

// GetRecommendations fetches the branch catalogue, narrows it to the guest's
// interests and asks the generation service for an itinerary. When the
// service is unavailable the deterministic planner output is returned
// instead, so the endpoint never depends on the external collaborator being
// up.
func (s *ServiceImpl) GetRecommendations(ctx context.Context, prefs types.GuestPreferences) (*Response, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "GetRecommendations", trace.WithAttributes(
		attribute.String("branch.id", prefs.SelectedBranch.String()),
		attribute.Int("interests.count", len(prefs.Interests)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GetRecommendations"), slog.String("branchID", prefs.SelectedBranch.String()))

	key := cacheKey(prefs)
	if cached, found := s.cache.Get(key); found {
		l.DebugContext(ctx, "Returning cached recommendations")
		span.SetStatus(codes.Ok, "Cache hit")
		return cached.(*Response), nil
	}

	if m := metrics.Get(); m != nil {
		m.RecommendationRequestsTotal.Add(ctx, 1)
	}

	var (
		branchDetails *types.Branch
		activities    []types.Activity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		branchDetails, err = s.branchRepo.GetBranch(gctx, prefs.SelectedBranch)
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
		return nil, fmt.Errorf("error loading branch data: %w", err)
	}
	if branchDetails == nil {
		span.SetStatus(codes.Error, "Branch not found")
		return nil, ErrBranchNotFound
	}

	filtered := planner.FilterByInterests(activities, prefs.Interests)
	span.SetAttributes(attribute.Int("activities.filtered", len(filtered)))

	text, err := s.generate(ctx, branchDetails, filtered, prefs)
	if err != nil {
		l.WarnContext(ctx, "Generation failed, using planner fallback", slog.Any("error", err))
		span.RecordError(err)
		if m := metrics.Get(); m != nil {
			m.GenerationFallbacksTotal.Add(ctx, 1)
		}
		text = planner.Plan(activities, prefs)
	}

	resp := &Response{
		Branch:          *branchDetails,
		Activities:      filtered,
		Recommendations: text,
	}
	s.cache.Set(key, resp, cache.DefaultExpiration)

	span.SetStatus(codes.Ok, "Recommendations generated")
	return resp, nil
}

func (s *ServiceImpl) generate(ctx context.Context, branchDetails *types.Branch, filtered []types.Activity, prefs types.GuestPreferences) (string, error) {
	prompt := buildItineraryPrompt(branchDetails, filtered, prefs)

	start := time.Now()
	text, err := s.aiClient.GenerateContent(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		MaxOutputTokens: 800,
	})
	if m := metrics.Get(); m != nil {
		m.GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}
	return text, err
}

// cacheKey builds a stable key from the full preference tuple. Interests are
// an unordered set, so they are sorted first.
func cacheKey(prefs types.GuestPreferences) string {
	interests := make([]string, len(prefs.Interests))
	for i, tag := range prefs.Interests {
		interests[i] = string(tag)
	}
	sort.Strings(interests)

	onSite := "unknown"
	if prefs.IsCurrentlyAtKuriftu != nil {
		onSite = fmt.Sprintf("%t", *prefs.IsCurrentlyAtKuriftu)
	}
	return fmt.Sprintf("recommendations:%s:%s:%s:%s:%s",
		prefs.SelectedBranch, strings.Join(interests, ","), prefs.GroupType, prefs.Duration, onSite)
}

package recommendation

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/kuriftu-resorts/experience-api/internal/api"
	"github.com/kuriftu-resorts/experience-api/internal/types"
)

// Request is the recommendations request body, a straight translation of the
// wizard's collected answers.
type Request struct {
	Branch               string                   `json:"branch"`
	Interests            []types.InterestTag      `json:"interests,omitempty"`
	GroupType            types.GroupType          `json:"groupType,omitempty"`
	Duration             types.DurationPreference `json:"duration,omitempty"`
	IsCurrentlyAtKuriftu *bool                    `json:"isCurrentlyAtKuriftu,omitempty"`
}

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	GetRecommendations(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	recommendationService Service
	logger                *slog.Logger
}

// NewHandlerImpl creates a new recommendation HandlerImpl instance.
func NewHandlerImpl(recommendationService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		recommendationService: recommendationService,
		logger:                logger,
	}
}

// GetRecommendations handles POST /recommendations.
func (h *HandlerImpl) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "GetRecommendations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/recommendations"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetRecommendations"))

	var req Request
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.Branch == "" {
		span.SetStatus(codes.Error, "Branch is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Branch is required")
		return
	}
	branchID, err := uuid.Parse(req.Branch)
	if err != nil {
		l.WarnContext(ctx, "Invalid branch ID", slog.String("branch", req.Branch))
		span.SetStatus(codes.Error, "Invalid branch ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid branch ID")
		return
	}

	prefs := types.GuestPreferences{
		IsCurrentlyAtKuriftu: req.IsCurrentlyAtKuriftu,
		SelectedBranch:       branchID,
		Interests:            req.Interests,
		GroupType:            req.GroupType,
		Duration:             req.Duration,
	}

	resp, err := h.recommendationService.GetRecommendations(ctx, prefs)
	if err != nil {
		if errors.Is(err, ErrBranchNotFound) {
			span.SetStatus(codes.Error, "Branch not found")
			api.ErrorResponse(w, r, http.StatusNotFound, "Branch not found")
			return
		}
		l.ErrorContext(ctx, "Failed to generate recommendations", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate recommendations")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate recommendations")
		return
	}

	span.SetStatus(codes.Ok, "Recommendations generated")
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

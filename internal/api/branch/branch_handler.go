package branch

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/kuriftu-resorts/experience-api/internal/api"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	GetBranches(w http.ResponseWriter, r *http.Request)
	GetBranch(w http.ResponseWriter, r *http.Request)
	GetBranchActivities(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	branchService Service
	logger        *slog.Logger
}

// NewHandlerImpl creates a new branch HandlerImpl instance.
func NewHandlerImpl(branchService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		branchService: branchService,
		logger:        logger,
	}
}

// GetBranches returns all resort branches.
func (h *HandlerImpl) GetBranches(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BranchHandler").Start(r.Context(), "GetBranches", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/branches"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetBranches"))
	l.DebugContext(ctx, "Fetching branches")

	branches, err := h.branchService.GetBranches(ctx)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get branches", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to get branches")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve branches")
		return
	}

	span.SetStatus(codes.Ok, "Branches retrieved successfully")
	api.WriteJSONResponse(w, r, http.StatusOK, branches)
}

// GetBranch returns a single branch by ID.
func (h *HandlerImpl) GetBranch(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BranchHandler").Start(r.Context(), "GetBranch", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/branches/{branchID}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetBranch"))

	branchID, err := uuid.Parse(chi.URLParam(r, "branchID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid branch ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid branch ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid branch ID")
		return
	}

	b, err := h.branchService.GetBranch(ctx, branchID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get branch", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to get branch")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve branch")
		return
	}
	if b == nil {
		span.SetStatus(codes.Error, "Branch not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "Branch not found")
		return
	}

	span.SetStatus(codes.Ok, "Branch retrieved successfully")
	api.WriteJSONResponse(w, r, http.StatusOK, b)
}

// GetBranchActivities returns all activities offered at a branch.
func (h *HandlerImpl) GetBranchActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BranchHandler").Start(r.Context(), "GetBranchActivities", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/branches/{branchID}/activities"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetBranchActivities"))

	branchID, err := uuid.Parse(chi.URLParam(r, "branchID"))
	if err != nil {
		l.WarnContext(ctx, "Invalid branch ID", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid branch ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid branch ID")
		return
	}

	activities, err := h.branchService.GetActivitiesByBranch(ctx, branchID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to get branch activities", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to get branch activities")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to retrieve branch activities")
		return
	}

	span.SetStatus(codes.Ok, "Activities retrieved successfully")
	api.WriteJSONResponse(w, r, http.StatusOK, activities)
}

package chat

import (
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

// Preferences mirrors the wizard state the chat UI sends with each message.
type Preferences struct {
	IsCurrentlyAtKuriftu *bool                    `json:"isCurrentlyAtKuriftu,omitempty"`
	SelectedBranch       string                   `json:"selectedBranch"`
	Interests            []types.InterestTag      `json:"interests,omitempty"`
	GroupType            types.GroupType          `json:"groupType,omitempty"`
	Duration             types.DurationPreference `json:"duration,omitempty"`
}

type Request struct {
	Message             string                   `json:"message"`
	UserPreferences     Preferences              `json:"userPreferences"`
	ConversationHistory []types.ConversationTurn `json:"conversationHistory,omitempty"`
}

type Response struct {
	Response string `json:"response"`
}

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	chatService Service
	logger      *slog.Logger
}

// NewHandlerImpl creates a new chat HandlerImpl instance.
func NewHandlerImpl(chatService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		chatService: chatService,
		logger:      logger,
	}
}

// SendMessage handles POST /chat.
func (h *HandlerImpl) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "SendMessage", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/chat"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SendMessage"))

	var req Request
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.Message == "" {
		span.SetStatus(codes.Error, "Message is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Message is required")
		return
	}
	branchID, err := uuid.Parse(req.UserPreferences.SelectedBranch)
	if err != nil {
		l.WarnContext(ctx, "Invalid branch ID", slog.String("branch", req.UserPreferences.SelectedBranch))
		span.SetStatus(codes.Error, "Invalid branch ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid selected branch")
		return
	}

	prefs := types.GuestPreferences{
		IsCurrentlyAtKuriftu: req.UserPreferences.IsCurrentlyAtKuriftu,
		SelectedBranch:       branchID,
		Interests:            req.UserPreferences.Interests,
		GroupType:            req.UserPreferences.GroupType,
		Duration:             req.UserPreferences.Duration,
	}

	reply, err := h.chatService.SendMessage(ctx, req.Message, prefs, req.ConversationHistory)
	if err != nil {
		l.ErrorContext(ctx, "Failed to process chat message", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to process chat message")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to process chat message")
		return
	}

	span.SetStatus(codes.Ok, "Chat message processed")
	api.WriteJSONResponse(w, r, http.StatusOK, Response{Response: reply})
}

package recommendation

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kuriftu-resorts/experience-api/internal/types"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) GetRecommendations(ctx context.Context, prefs types.GuestPreferences) (*Response, error) {
	args := m.Called(ctx, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Response), args.Error(1)
}

func postRecommendations(t *testing.T, handler *HandlerImpl, body any) *httptest.ResponseRecorder {
	t.Helper()
	js, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", bytes.NewReader(js))
	rec := httptest.NewRecorder()
	handler.GetRecommendations(rec, req)
	return rec
}

func TestGetRecommendationsHandler(t *testing.T) {
	logger := slog.Default()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockService)
		handler := NewHandlerImpl(mockService, logger)

		branchID := uuid.New()
		resp := &Response{
			Branch:          types.Branch{ID: branchID, Name: "Kuriftu Resort & Spa Bishoftu"},
			Activities:      []types.Activity{},
			Recommendations: "plan text",
		}
		mockService.On("GetRecommendations", mock.Anything, mock.AnythingOfType("types.GuestPreferences")).
			Return(resp, nil).Once()

		rec := postRecommendations(t, handler, Request{Branch: branchID.String(), Duration: types.DurationHalfDay})
		assert.Equal(t, http.StatusOK, rec.Code)

		var got Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "plan text", got.Recommendations)
		mockService.AssertExpectations(t)
	})

	t.Run("BranchRequired", func(t *testing.T) {
		mockService := new(MockService)
		handler := NewHandlerImpl(mockService, logger)

		rec := postRecommendations(t, handler, Request{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Branch is required")
	})

	t.Run("InvalidBranchID", func(t *testing.T) {
		mockService := new(MockService)
		handler := NewHandlerImpl(mockService, logger)

		rec := postRecommendations(t, handler, Request{Branch: "bishoftu"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("BranchNotFound", func(t *testing.T) {
		mockService := new(MockService)
		handler := NewHandlerImpl(mockService, logger)

		mockService.On("GetRecommendations", mock.Anything, mock.AnythingOfType("types.GuestPreferences")).
			Return(nil, ErrBranchNotFound).Once()

		rec := postRecommendations(t, handler, Request{Branch: uuid.NewString()})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Branch not found")
	})
}

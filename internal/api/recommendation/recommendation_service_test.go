package recommendation

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/kuriftu-resorts/experience-api/internal/planner"
	"github.com/kuriftu-resorts/experience-api/internal/types"
)

// MockRepository is a mock implementation of the branch.Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetBranches(ctx context.Context) ([]types.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Branch), args.Error(1)
}

func (m *MockRepository) GetBranch(ctx context.Context, id uuid.UUID) (*types.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Branch), args.Error(1)
}

func (m *MockRepository) GetActivitiesByBranch(ctx context.Context, branchID uuid.UUID) ([]types.Activity, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Activity), args.Error(1)
}

func (m *MockRepository) GetActivitiesByCategory(ctx context.Context, category string) ([]types.Activity, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Activity), args.Error(1)
}

// MockGenerator is a mock implementation of the generativeAI.Generator interface
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	args := m.Called(ctx, prompt, config)
	return args.String(0), args.Error(1)
}

func testCatalogue(branchID uuid.UUID) (*types.Branch, []types.Activity) {
	b := &types.Branch{
		ID:          branchID,
		Name:        "Kuriftu Resort & Spa Bishoftu",
		Location:    "Bishoftu, Ethiopia",
		Description: "Crater lake resort",
	}
	activities := []types.Activity{
		{Name: "Kayaking", Description: "Paddle the lake.", Category: "Water Fun", Duration: 45, BranchID: branchID},
		{Name: "Circus Performances", Description: "Live circus.", Category: "Culture & Art", Duration: 90, BranchID: branchID},
		{Name: "Waterpark Visit", Description: "Water park.", Category: "Water Fun", Duration: 120, BranchID: branchID},
	}
	return b, activities
}

func TestGetRecommendations(t *testing.T) {
	logger := slog.Default()

	t.Run("GenerationSucceeds", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockGen := new(MockGenerator)
		service := NewService(mockRepo, mockGen, logger)

		branchID := uuid.New()
		b, activities := testCatalogue(branchID)
		prefs := types.GuestPreferences{
			SelectedBranch: branchID,
			Interests:      []types.InterestTag{types.InterestWater},
			Duration:       types.DurationHalfDay,
		}

		mockRepo.On("GetBranch", mock.Anything, branchID).Return(b, nil).Once()
		mockRepo.On("GetActivitiesByBranch", mock.Anything, branchID).Return(activities, nil).Once()
		mockGen.On("GenerateContent", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return("Here is your itinerary.", nil).Once()

		resp, err := service.GetRecommendations(context.Background(), prefs)
		require.NoError(t, err)
		assert.Equal(t, "Here is your itinerary.", resp.Recommendations)
		assert.Equal(t, *b, resp.Branch)
		// Post-filter, pre-rank: catalogue order, matching categories only.
		require.Len(t, resp.Activities, 2)
		assert.Equal(t, "Kayaking", resp.Activities[0].Name)
		assert.Equal(t, "Waterpark Visit", resp.Activities[1].Name)
		mockRepo.AssertExpectations(t)
		mockGen.AssertExpectations(t)
	})

	t.Run("FallbackOnGenerationError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockGen := new(MockGenerator)
		service := NewService(mockRepo, mockGen, logger)

		branchID := uuid.New()
		b, activities := testCatalogue(branchID)
		prefs := types.GuestPreferences{
			SelectedBranch: branchID,
			Interests:      []types.InterestTag{types.InterestWater},
			Duration:       types.DurationHalfDay,
		}

		mockRepo.On("GetBranch", mock.Anything, branchID).Return(b, nil).Once()
		mockRepo.On("GetActivitiesByBranch", mock.Anything, branchID).Return(activities, nil).Once()
		mockGen.On("GenerateContent", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return("", errors.New("service unavailable")).Once()

		resp, err := service.GetRecommendations(context.Background(), prefs)
		require.NoError(t, err)
		assert.Equal(t, planner.Plan(activities, prefs), resp.Recommendations)
		mockGen.AssertExpectations(t)
	})

	t.Run("BranchNotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockGen := new(MockGenerator)
		service := NewService(mockRepo, mockGen, logger)

		branchID := uuid.New()
		prefs := types.GuestPreferences{SelectedBranch: branchID}

		mockRepo.On("GetBranch", mock.Anything, branchID).Return(nil, nil).Once()
		mockRepo.On("GetActivitiesByBranch", mock.Anything, branchID).Return([]types.Activity{}, nil).Once()

		resp, err := service.GetRecommendations(context.Background(), prefs)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, ErrBranchNotFound)
		mockGen.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("SecondCallServedFromCache", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockGen := new(MockGenerator)
		service := NewService(mockRepo, mockGen, logger)

		branchID := uuid.New()
		b, activities := testCatalogue(branchID)
		prefs := types.GuestPreferences{
			SelectedBranch: branchID,
			Interests:      []types.InterestTag{types.InterestWater},
			Duration:       types.DurationShort,
		}

		mockRepo.On("GetBranch", mock.Anything, branchID).Return(b, nil).Once()
		mockRepo.On("GetActivitiesByBranch", mock.Anything, branchID).Return(activities, nil).Once()
		mockGen.On("GenerateContent", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return("cached text", nil).Once()

		first, err := service.GetRecommendations(context.Background(), prefs)
		require.NoError(t, err)
		second, err := service.GetRecommendations(context.Background(), prefs)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		mockRepo.AssertExpectations(t)
		mockGen.AssertExpectations(t)
	})

	t.Run("EmptyFilteredSetStillResponds", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockGen := new(MockGenerator)
		service := NewService(mockRepo, mockGen, logger)

		branchID := uuid.New()
		b, activities := testCatalogue(branchID)
		prefs := types.GuestPreferences{
			SelectedBranch: branchID,
			Interests:      []types.InterestTag{types.InterestShopping},
			Duration:       types.DurationHalfDay,
		}

		mockRepo.On("GetBranch", mock.Anything, branchID).Return(b, nil).Once()
		mockRepo.On("GetActivitiesByBranch", mock.Anything, branchID).Return(activities, nil).Once()
		mockGen.On("GenerateContent", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return("", errors.New("service unavailable")).Once()

		resp, err := service.GetRecommendations(context.Background(), prefs)
		require.NoError(t, err)
		assert.Empty(t, resp.Activities)
		// The fallback renders only the fixed no-matches advisory.
		assert.Equal(t, planner.Plan(activities, prefs), resp.Recommendations)
		assert.Contains(t, resp.Recommendations, "We don't have activities matching your exact interests")
		assert.NotContains(t, resp.Recommendations, "## Recommended Schedule")
	})
}

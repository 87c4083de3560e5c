package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kuriftu-resorts/experience-api/internal/types"
)

func TestRankByFit(t *testing.T) {
	t.Run("FittingActivitiesSortFirst", func(t *testing.T) {
		activities := []types.Activity{
			activity("Long Tour", "Adventure", 300),
			activity("Archery", "Adventure", 30),
		}
		ranked := RankByFit(activities, 240)
		assert.Equal(t, "Archery", ranked[0].Name)
		assert.Equal(t, "Long Tour", ranked[1].Name)
	})

	t.Run("ClosestToHalfBudgetPreferred", func(t *testing.T) {
		// Half-day budget; ideal duration is 120. Distances: 90 -> 30,
		// 60 -> 60, 200 -> 80 (still fits). Expected order 90, 60, 200.
		activities := []types.Activity{
			activity("A", "Adventure", 60),
			activity("B", "Adventure", 90),
			activity("C", "Adventure", 200),
		}
		ranked := RankByFit(activities, 240)
		assert.Equal(t, []int{90, 60, 200}, durations(ranked))
	})

	t.Run("StableOnTies", func(t *testing.T) {
		activities := []types.Activity{
			activity("First", "Adventure", 60),
			activity("Second", "Adventure", 60),
			activity("Third", "Adventure", 60),
		}
		ranked := RankByFit(activities, 240)
		assert.Equal(t, []string{"First", "Second", "Third"}, names(ranked))
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		activities := []types.Activity{
			activity("Long Tour", "Adventure", 300),
			activity("Archery", "Adventure", 30),
		}
		RankByFit(activities, 240)
		assert.Equal(t, "Long Tour", activities[0].Name)
	})

	t.Run("NothingRemoved", func(t *testing.T) {
		activities := []types.Activity{
			activity("A", "Adventure", 500),
			activity("B", "Adventure", 600),
		}
		ranked := RankByFit(activities, 120)
		assert.Len(t, ranked, 2)
	})
}

func durations(activities []types.Activity) []int {
	out := make([]int, len(activities))
	for i, a := range activities {
		out[i] = a.Duration
	}
	return out
}

func names(activities []types.Activity) []string {
	out := make([]string, len(activities))
	for i, a := range activities {
		out[i] = a.Name
	}
	return out
}

package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kuriftu-resorts/experience-api/internal/types"
)

func boolPtr(b bool) *bool { return &b }

func TestFormatRecommendations(t *testing.T) {
	filtered := []types.Activity{
		activity("Kayaking", "Water Fun", 45),
		activity("Boat Rides", "Water Fun", 90),
	}

	t.Run("EmptyFilteredSetGetsOnlyAdvisory", func(t *testing.T) {
		out := FormatRecommendations(nil, types.Itinerary{}, types.GuestPreferences{Duration: types.DurationHalfDay})
		assert.Equal(t, noMatchesAdvisory, out)
	})

	t.Run("ScheduleEntriesUseClockTimes", func(t *testing.T) {
		it := BuildItinerary(RankByFit(filtered, 240), 240)
		out := FormatRecommendations(filtered, it, types.GuestPreferences{Duration: types.DurationHalfDay})
		assert.Contains(t, out, "## Recommended Schedule")
		assert.Contains(t, out, "### 9:00 - 10:30: Boat Rides")
		assert.Contains(t, out, "### 11:00 - 11:45: Kayaking")
		assert.Contains(t, out, "- Duration: 90 minutes")
		assert.Contains(t, out, "- Category: Water Fun")
	})

	t.Run("NoDurationListsTopActivities", func(t *testing.T) {
		out := FormatRecommendations(filtered, types.Itinerary{}, types.GuestPreferences{})
		assert.Contains(t, out, "## Recommended Activities")
		assert.Contains(t, out, "### 1. Kayaking")
		assert.Contains(t, out, "### 2. Boat Rides")
		assert.NotContains(t, out, "## Recommended Schedule")
	})

	t.Run("GroupAdvisoryPerGroupType", func(t *testing.T) {
		for _, group := range []types.GroupType{types.GroupSolo, types.GroupCouple, types.GroupFamily, types.GroupFriends} {
			out := FormatRecommendations(filtered, types.Itinerary{}, types.GuestPreferences{GroupType: group})
			assert.Contains(t, out, "## Special Recommendations")
			assert.Contains(t, out, groupAdvisories[group])
		}
	})

	t.Run("UnsetGroupTypeAddsNothing", func(t *testing.T) {
		out := FormatRecommendations(filtered, types.Itinerary{}, types.GuestPreferences{})
		assert.NotContains(t, out, "## Special Recommendations")
	})

	t.Run("BookingAdvisoryTriState", func(t *testing.T) {
		onSite := FormatRecommendations(filtered, types.Itinerary{}, types.GuestPreferences{IsCurrentlyAtKuriftu: boolPtr(true)})
		assert.Contains(t, onSite, onSiteAdvisory)

		preArrival := FormatRecommendations(filtered, types.Itinerary{}, types.GuestPreferences{IsCurrentlyAtKuriftu: boolPtr(false)})
		assert.Contains(t, preArrival, preArrivalAdvisory)

		unknown := FormatRecommendations(filtered, types.Itinerary{}, types.GuestPreferences{})
		assert.NotContains(t, unknown, "## Booking Information")
	})

	t.Run("HoursPastMidnightAreNotWrapped", func(t *testing.T) {
		assert.Equal(t, "25:30", clockTime(25*60+30))
		assert.Equal(t, "9:05", clockTime(545))
	})
}

func TestPlanDeterministic(t *testing.T) {
	activities := []types.Activity{
		activity("Spa Services", "Relaxation", 60),
		activity("Kayaking", "Water Fun", 45),
		activity("Monastery Visits", "Culture & Art", 120),
		activity("Boat Rides", "Water Fun", 90),
	}
	prefs := types.GuestPreferences{
		Interests:            []types.InterestTag{types.InterestWater, types.InterestRelaxation},
		GroupType:            types.GroupFamily,
		Duration:             types.DurationHalfDay,
		IsCurrentlyAtKuriftu: boolPtr(true),
	}

	first := Plan(activities, prefs)
	second := Plan(activities, prefs)
	assert.Equal(t, first, second)

	// The closing line is always present when anything matched.
	assert.True(t, strings.HasSuffix(first, "perfect Kuriftu experience!"))
}

package planner

import (
	"github.com/kuriftu-resorts/experience-api/internal/types"
)

// interestCategories maps wizard interest tags to the category labels stored
// on activities. The table is fixed; tags outside it match nothing.
var interestCategories = map[types.InterestTag]string{
	types.InterestRelaxation: "Relaxation",
	types.InterestCulture:    "Culture & Art",
	types.InterestFood:       "Food & Drinks",
	types.InterestWater:      "Water Fun",
	types.InterestAdventure:  "Adventure",
	types.InterestShopping:   "Shopping",
}

// FilterByInterests keeps the activities whose category matches one of the
// selected interests, preserving the original order. An empty interest set
// means no filtering at all. An empty result is not an error; it signals
// that nothing at the branch matches.
func FilterByInterests(activities []types.Activity, interests []types.InterestTag) []types.Activity {
	if len(interests) == 0 {
		return activities
	}

	wanted := make(map[string]bool, len(interests))
	for _, tag := range interests {
		if category, ok := interestCategories[tag]; ok {
			wanted[category] = true
		}
	}

	filtered := make([]types.Activity, 0, len(activities))
	for _, activity := range activities {
		if wanted[activity.Category] {
			filtered = append(filtered, activity)
		}
	}
	return filtered
}

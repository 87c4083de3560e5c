package planner

import (
	"github.com/kuriftu-resorts/experience-api/internal/types"
)

// BudgetMinutes converts the coarse duration preference into a total number
// of activity minutes. Unknown or missing values fall back to the half-day
// budget; the function never fails.
func BudgetMinutes(pref types.DurationPreference) int {
	switch pref {
	case types.DurationShort:
		return 120
	case types.DurationHalfDay:
		return 240
	case types.DurationFullDay:
		return 480
	case types.DurationMultiDay:
		return 1440
	default:
		return 240
	}
}

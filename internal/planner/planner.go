// Package planner builds deterministic activity recommendations for a guest.
// It is the baseline the generative service output is measured against and
// the fallback used whenever that service is unavailable. Every stage is a
// pure function over immutable inputs, so the pipeline is safe to run
// concurrently for independent requests.
package planner

import (
	"github.com/kuriftu-resorts/experience-api/internal/types"
)

// Plan runs the full pipeline: interest filter, duration budget, fit
// ranking, greedy scheduling and text assembly. It never fails; missing
// preference values only shrink the output.
func Plan(activities []types.Activity, prefs types.GuestPreferences) string {
	filtered := FilterByInterests(activities, prefs.Interests)
	budget := BudgetMinutes(prefs.Duration)
	ranked := RankByFit(filtered, budget)
	itinerary := BuildItinerary(ranked, budget)
	return FormatRecommendations(filtered, itinerary, prefs)
}

package planner

import (
	"sort"

	"github.com/kuriftu-resorts/experience-api/internal/types"
)

// RankByFit reorders activities for the scheduler without dropping any.
// Activities that fit the budget sort before those that exceed it; within
// each group, the ones closest to half the budget come first, biasing the
// schedule toward a few substantial activities rather than many short ones.
// The sort is stable, so equal candidates keep their original order.
func RankByFit(activities []types.Activity, budget int) []types.Activity {
	ranked := make([]types.Activity, len(activities))
	copy(ranked, activities)

	ideal := budget / 2
	sort.SliceStable(ranked, func(i, j int) bool {
		iFits := ranked[i].Duration <= budget
		jFits := ranked[j].Duration <= budget
		if iFits != jFits {
			return iFits
		}
		return idealDistance(ranked[i].Duration, ideal) < idealDistance(ranked[j].Duration, ideal)
	})
	return ranked
}

func idealDistance(duration, ideal int) int {
	if duration > ideal {
		return duration - ideal
	}
	return ideal - duration
}

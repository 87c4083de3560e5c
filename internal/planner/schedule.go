package planner

import (
	"github.com/kuriftu-resorts/experience-api/internal/types"
)

const (
	// maxScheduledActivities caps how many slots one itinerary may hold.
	maxScheduledActivities = 5
	// minRemainingMinutes stops packing once too little budget is left to
	// be worth filling.
	minRemainingMinutes = 30
	// slotGapMinutes is the wall-clock buffer between consecutive slots.
	// It is not charged against the activity budget.
	slotGapMinutes = 30
	// dayStartMinutes anchors the first slot at 9:00.
	dayStartMinutes = 9 * 60
)

// BuildItinerary greedily packs ranked activities into a time-boxed schedule.
// The budget tracks activity time only; transit gaps appear on the wall
// clock but are never subtracted from it. If nothing fits the budget at all,
// the shortest candidate is scheduled anyway so the guest always gets
// something; an empty candidate list yields an empty itinerary.
//
// Slot offsets are plain minutes from midnight with no wraparound, so a
// multi-day budget can print hours past 24:00. That mirrors how schedules
// have always been rendered here and is left as is.
func BuildItinerary(ranked []types.Activity, budget int) types.Itinerary {
	accepted := make([]types.Activity, 0, maxScheduledActivities)
	remaining := budget

	for _, activity := range ranked {
		if activity.Duration <= remaining {
			accepted = append(accepted, activity)
			remaining -= activity.Duration
		}
		if len(accepted) >= maxScheduledActivities || remaining < minRemainingMinutes {
			break
		}
	}

	if len(accepted) == 0 && len(ranked) > 0 {
		shortest := ranked[0]
		for _, activity := range ranked[1:] {
			if activity.Duration < shortest.Duration {
				shortest = activity
			}
		}
		accepted = append(accepted, shortest)
	}

	slots := make([]types.ScheduledSlot, 0, len(accepted))
	start := dayStartMinutes
	for _, activity := range accepted {
		end := start + activity.Duration
		slots = append(slots, types.ScheduledSlot{Activity: activity, Start: start, End: end})
		start = end + slotGapMinutes
	}

	return types.Itinerary{Slots: slots, Remaining: remaining}
}

package types

// ScheduledSlot places one activity on the day's wall clock. Offsets are
// minutes from midnight; the first slot of an itinerary starts at 9:00.
type ScheduledSlot struct {
	Activity Activity `json:"activity"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
}

// Itinerary is an ordered, non-overlapping sequence of scheduled slots plus
// whatever activity-time budget was left when packing stopped. An itinerary
// with no slots means nothing could be scheduled at all.
type Itinerary struct {
	Slots     []ScheduledSlot `json:"slots"`
	Remaining int             `json:"remaining"`
}

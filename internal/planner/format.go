package planner

import (
	"fmt"
	"strings"

	"github.com/kuriftu-resorts/experience-api/internal/types"
)

const noMatchesAdvisory = "We don't have activities matching your exact interests at this branch. Consider exploring other interests or asking our staff for recommendations when you arrive."

var groupAdvisories = map[types.GroupType]string{
	types.GroupSolo:    "As a solo traveler, you might enjoy our guided experiences where you can meet other guests. Our staff can provide personalized attention to make your experience special.",
	types.GroupCouple:  "For couples, we recommend our romantic sunset experiences and private dining options. Consider booking a private session for activities like the Ethiopian Coffee Ceremony for a more intimate experience.",
	types.GroupFamily:  "Families love our guided nature walks and cultural activities suitable for all ages. We can provide modified versions of activities to accommodate children of different ages.",
	types.GroupFriends: "Groups of friends might enjoy our adventure activities and evening entertainment options. We can arrange group rates for certain activities and private spaces for your group to relax together.",
}

const (
	onSiteAdvisory     = "Since you're already here, our staff at the reception can help you book these activities immediately. We recommend booking as soon as possible to secure your preferred time slots."
	preArrivalAdvisory = "We recommend booking these activities in advance for your upcoming visit. You can contact our reservation desk to pre-book any of these experiences before your arrival."
)

// FormatRecommendations renders the itinerary and the optional advisory
// sections as markdown. The filtered list is the pre-rank activity set; when
// it is empty only the fixed no-matches sentence is returned. When the guest
// gave no duration preference there is no schedule to show, so the top
// activities are listed instead.
func FormatRecommendations(filtered []types.Activity, itinerary types.Itinerary, prefs types.GuestPreferences) string {
	if len(filtered) == 0 {
		return noMatchesAdvisory
	}

	var b strings.Builder
	b.WriteString("# Your Personalized Kuriftu Experience\n\n")
	b.WriteString("Based on your preferences, I've created a personalized plan for your visit.\n\n")

	if prefs.Duration != "" {
		b.WriteString("## Recommended Schedule\n\n")
		for _, slot := range itinerary.Slots {
			fmt.Fprintf(&b, "### %s - %s: %s\n", clockTime(slot.Start), clockTime(slot.End), slot.Activity.Name)
			fmt.Fprintf(&b, "%s\n", slot.Activity.Description)
			fmt.Fprintf(&b, "- Duration: %d minutes\n", slot.Activity.Duration)
			fmt.Fprintf(&b, "- Category: %s\n\n", slot.Activity.Category)
		}
	} else {
		b.WriteString("## Recommended Activities\n\n")
		top := filtered
		if len(top) > maxScheduledActivities {
			top = top[:maxScheduledActivities]
		}
		for i, activity := range top {
			fmt.Fprintf(&b, "### %d. %s\n", i+1, activity.Name)
			fmt.Fprintf(&b, "%s\n", activity.Description)
			fmt.Fprintf(&b, "- Duration: %d minutes\n", activity.Duration)
			fmt.Fprintf(&b, "- Category: %s\n\n", activity.Category)
		}
	}

	if advisory, ok := groupAdvisories[prefs.GroupType]; ok {
		b.WriteString("## Special Recommendations\n\n")
		b.WriteString(advisory)
		b.WriteString("\n\n")
	}

	if prefs.IsCurrentlyAtKuriftu != nil {
		b.WriteString("## Booking Information\n\n")
		if *prefs.IsCurrentlyAtKuriftu {
			b.WriteString(onSiteAdvisory)
		} else {
			b.WriteString(preArrivalAdvisory)
		}
		b.WriteString("\n\n")
	}

	b.WriteString("Would you like to modify this plan or get more details about any of the activities? I'm here to help you create the perfect Kuriftu experience!")
	return b.String()
}

// clockTime renders a minutes-from-midnight offset as H:MM. The hour is not
// zero padded and is not bounded at 24.
func clockTime(offset int) string {
	return fmt.Sprintf("%d:%02d", offset/60, offset%60)
}

package recommendation

import (
	"fmt"
	"strings"

	"github.com/kuriftu-resorts/experience-api/internal/types"
)

func buildItineraryPrompt(branchDetails *types.Branch, activities []types.Activity, prefs types.GuestPreferences) string {
	activitiesText := formatActivities(activities)
	if activitiesText == "" {
		activitiesText = "No activities match the selected interests at this branch."
	}

	onSite := "No"
	if prefs.IsCurrentlyAtKuriftu != nil && *prefs.IsCurrentlyAtKuriftu {
		onSite = "Yes"
	}

	return fmt.Sprintf(`
I need to create a personalized itinerary for a visitor to Kuriftu Resort in %s, Ethiopia.

Visitor details:
- Currently at resort: %s
- Interests: %s
- Group type: %s
- Duration of stay: %s

Branch information:
%s: %s

Available activities at this branch that match the visitor's interests:
%s

Please create:
1. A detailed itinerary with specific activities from the database
2. A schedule that fits within their duration of stay
3. Personalized recommendations explaining why these activities would be good for them
4. Special considerations based on their group type

If there are no activities matching their interests, suggest alternatives from the available activities at this branch.
`,
		branchDetails.Name,
		onSite,
		formatInterests(prefs.Interests),
		orNotSpecified(string(prefs.GroupType)),
		orNotSpecified(string(prefs.Duration)),
		branchDetails.Name,
		branchDetails.Description,
		activitiesText,
	)
}

func formatActivities(activities []types.Activity) string {
	lines := make([]string, len(activities))
	for i, a := range activities {
		lines[i] = fmt.Sprintf("- %s: %s (Category: %s, Duration: %d minutes)", a.Name, a.Description, a.Category, a.Duration)
	}
	return strings.Join(lines, "\n")
}

func formatInterests(interests []types.InterestTag) string {
	if len(interests) == 0 {
		return "Not specified"
	}
	names := make([]string, len(interests))
	for i, tag := range interests {
		names[i] = capitalize(string(tag))
	}
	return strings.Join(names, ", ")
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

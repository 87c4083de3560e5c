package chat

import (
	"fmt"
	"strings"

	"github.com/kuriftu-resorts/experience-api/internal/types"
)

func buildSystemPrompt(branchData *types.Branch, activities []types.Activity, prefs types.GuestPreferences) string {
	onSite := "No"
	if prefs.IsCurrentlyAtKuriftu != nil && *prefs.IsCurrentlyAtKuriftu {
		onSite = "Yes"
	}

	branchName := "the selected branch"
	branchInfo := "Branch information not available"
	if branchData != nil {
		branchName = branchData.Name
		branchInfo = fmt.Sprintf("%s: %s", branchData.Name, branchData.Description)
	}

	activitiesInfo := formatActivities(activities)
	if activitiesInfo == "" {
		activitiesInfo = "No specific activities found for the selected interests"
	}

	return fmt.Sprintf(`You are an AI assistant for Kuriftu Resort in Ethiopia.
Your role is to help guests plan their perfect stay by recommending activities and answering questions.

Information about the user:
- Currently at Kuriftu: %s
- Selected Branch: %s
- Interests: %s
- Group Type: %s
- Duration of Stay: %s

Branch Information:
%s

Available Activities at %s that match the user's interests:
%s

Your task is to:
1. Create a personalized plan based on the available activities and user preferences
2. Answer questions about the resort and activities
3. Suggest modifications to the plan if requested
4. Be helpful, friendly, and knowledgeable about Ethiopian culture

If the user asks about activities not listed above, you can mention that they might not be available at this branch or don't match their selected interests.
If you don't know something specific, suggest they speak with resort staff.`,
		onSite,
		branchName,
		formatInterests(prefs.Interests),
		orNotSpecified(string(prefs.GroupType)),
		orNotSpecified(string(prefs.Duration)),
		branchInfo,
		branchName,
		activitiesInfo,
	)
}

func formatActivities(activities []types.Activity) string {
	lines := make([]string, len(activities))
	for i, a := range activities {
		lines[i] = fmt.Sprintf("- %s: %s (Duration: %d minutes, Category: %s)", a.Name, a.Description, a.Duration, a.Category)
	}
	return strings.Join(lines, "\n")
}

func formatInterests(interests []types.InterestTag) string {
	if len(interests) == 0 {
		return "Not specified"
	}
	names := make([]string, len(interests))
	for i, tag := range interests {
		name := string(tag)
		if name != "" {
			name = strings.ToUpper(name[:1]) + name[1:]
		}
		names[i] = name
	}
	return strings.Join(names, ", ")
}

func orNotSpecified(v string) string {
	if v == "" {
		return "Not specified"
	}
	return v
}

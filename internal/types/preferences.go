package types

import (
	"time"

	"github.com/google/uuid"
)

// InterestTag is one of the wizard's selectable interest values.
type InterestTag string

const (
	InterestRelaxation InterestTag = "relaxation"
	InterestCulture    InterestTag = "culture"
	InterestFood       InterestTag = "food"
	InterestWater      InterestTag = "water"
	InterestAdventure  InterestTag = "adventure"
	InterestShopping   InterestTag = "shopping"
)

// GroupType describes who the guest is travelling with.
type GroupType string

const (
	GroupSolo    GroupType = "solo"
	GroupCouple  GroupType = "couple"
	GroupFamily  GroupType = "family"
	GroupFriends GroupType = "friends"
)

// DurationPreference is the coarse length-of-stay choice from the wizard.
type DurationPreference string

const (
	DurationShort    DurationPreference = "short"
	DurationHalfDay  DurationPreference = "half-day"
	DurationFullDay  DurationPreference = "full-day"
	DurationMultiDay DurationPreference = "multi-day"
)

// GuestPreferences carries everything the wizard collected for one guest.
// Zero values mean "not answered": an empty GroupType or DurationPreference
// suppresses the corresponding output, a nil IsCurrentlyAtKuriftu means the
// guest skipped the location step.
type GuestPreferences struct {
	IsCurrentlyAtKuriftu *bool              `json:"isCurrentlyAtKuriftu,omitempty"`
	SelectedBranch       uuid.UUID          `json:"selectedBranch"`
	Interests            []InterestTag      `json:"interests,omitempty"`
	GroupType            GroupType          `json:"groupType,omitempty"`
	Duration             DurationPreference `json:"duration,omitempty"`
}

// ConversationTurn is one prior message in a chat exchange.
type ConversationTurn struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

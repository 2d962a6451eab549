package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventKind identifies an engagement event log.
type EventKind string

const (
	EventImpression EventKind = "impression"
	EventClick      EventKind = "click"
	EventLike       EventKind = "like"
	EventDislike    EventKind = "dislike"
	EventLove       EventKind = "love"
	EventShare      EventKind = "share"
	EventSave       EventKind = "save"
	EventComment    EventKind = "comment"
	EventConversion EventKind = "conversion"
)

// ReactionKind is an engagement kind with at most one row per (campaign, user).
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
	ReactionLove    ReactionKind = "love"
	ReactionSave    ReactionKind = "save"
)

// IsValid reports whether the kind is a known toggle.
func (k ReactionKind) IsValid() bool {
	switch k {
	case ReactionLike, ReactionDislike, ReactionLove, ReactionSave:
		return true
	default:
		return false
	}
}

// Counter returns the campaign counter mirrored by the reaction table.
func (k ReactionKind) Counter() CampaignCounter {
	switch k {
	case ReactionLike:
		return CounterLikes
	case ReactionDislike:
		return CounterDislikes
	case ReactionLove:
		return CounterLoves
	default:
		return CounterSaves
	}
}

// Action returns the result tag reported to the client after a toggle.
func (k ReactionKind) Action(active bool) string {
	switch k {
	case ReactionLike:
		if active {
			return "liked"
		}
		return "unliked"
	case ReactionDislike:
		if active {
			return "disliked"
		}
		return "removed_dislike"
	case ReactionLove:
		if active {
			return "loved"
		}
		return "unloved"
	default:
		if active {
			return "saved"
		}
		return "unsaved"
	}
}

// EventLocation is the optional place an impression or click happened.
type EventLocation struct {
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// EventMeta is the optional context a client sends with an impression or click.
type EventMeta struct {
	Location   *EventLocation
	DeviceType string
	ClientIP   string
}

// NeedsCity reports whether the location lacks a city that could be looked up from the IP.
func (m EventMeta) NeedsCity() bool {
	return m.ClientIP != "" && (m.Location == nil || m.Location.City == "")
}

// EngagementEvent is a row in one of the append-only event logs.
type EngagementEvent struct {
	ID         uuid.UUID      `json:"id"`
	Kind       EventKind      `json:"kind"`
	CampaignID uuid.UUID      `json:"campaign_id"`
	UserID     uuid.UUID      `json:"user_id"`
	Location   *EventLocation `json:"location,omitempty"`
	DeviceType string         `json:"device_type,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// DefaultConversionType is stored when the client omits a conversion type.
const DefaultConversionType = "general"

// Conversion is a vendor defined goal reached by a user.
type Conversion struct {
	ID         uuid.UUID        `json:"id"`
	CampaignID uuid.UUID        `json:"campaign_id"`
	UserID     uuid.UUID        `json:"user_id"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Type       string           `json:"type"`
	Metadata   map[string]any   `json:"metadata,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

// ReactionFlags are the querying user's current toggle states on a campaign.
type ReactionFlags struct {
	Liked    bool `json:"liked"`
	Disliked bool `json:"disliked"`
	Loved    bool `json:"loved"`
	Saved    bool `json:"saved"`
}

// Set marks kind as active.
func (f *ReactionFlags) Set(kind ReactionKind) {
	switch kind {
	case ReactionLike:
		f.Liked = true
	case ReactionDislike:
		f.Disliked = true
	case ReactionLove:
		f.Loved = true
	case ReactionSave:
		f.Saved = true
	}
}

// ReactionSet maps campaign id to the reactions one user holds on it.
type ReactionSet map[uuid.UUID]ReactionFlags

// Flags returns the flags for campaignID, all false when absent.
func (s ReactionSet) Flags(campaignID uuid.UUID) ReactionFlags {
	return s[campaignID]
}

// Mark records that the user holds kind on campaignID.
func (s ReactionSet) Mark(campaignID uuid.UUID, kind ReactionKind) {
	flags := s[campaignID]
	flags.Set(kind)
	s[campaignID] = flags
}

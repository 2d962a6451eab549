package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SearchMatchType says which field made a search hit.
type SearchMatchType string

const (
	MatchTitlePrefix   SearchMatchType = "title_prefix"
	MatchTitleContains SearchMatchType = "title_contains"
	MatchDescription   SearchMatchType = "description"
)

// ClassifySearchMatch ranks how term matched, case-insensitively.
// Callers pass only campaigns that matched somewhere.
func ClassifySearchMatch(title, term string) SearchMatchType {
	t := strings.ToLower(title)
	q := strings.ToLower(term)
	switch {
	case strings.HasPrefix(t, q):
		return MatchTitlePrefix
	case strings.Contains(t, q):
		return MatchTitleContains
	default:
		return MatchDescription
	}
}

// FeedQuery selects eligible campaigns around a user.
type FeedQuery struct {
	Point  GeoPoint
	Bounds GeoBounds
	// Age is set when age targeting applies to the requesting user.
	Age    *int
	Now    time.Time
	Offset int
	Limit  int
}

// SearchQuery selects running campaigns by text.
type SearchQuery struct {
	Term   string
	Now    time.Time
	Offset int
	Limit  int
}

// RankedCampaign is a feed or search result annotated for the requesting user.
type RankedCampaign struct {
	*Campaign
	DistanceKm *float64        `json:"distance_km,omitempty"`
	MatchType  SearchMatchType `json:"match_type,omitempty"`
	ReactionFlags
}

// CampaignIDs returns the ids of the ranked campaigns in order.
func CampaignIDs(items []*RankedCampaign) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	return ids
}

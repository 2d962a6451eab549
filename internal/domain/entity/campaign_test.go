package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	mumbai = GeoPoint{Lat: 19.076, Lon: 72.8777}
	pune   = GeoPoint{Lat: 18.5204, Lon: 73.8567}
)

func TestCalculateCTR(t *testing.T) {
	tests := []struct {
		name        string
		clicks      int64
		impressions int64
		want        string
	}{
		{name: "no impressions", clicks: 5, impressions: 0, want: "0"},
		{name: "rounds to two decimals", clicks: 1, impressions: 3, want: "33.33"},
		{name: "whole percent", clicks: 9, impressions: 200, want: "4.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCTR(tt.clicks, tt.impressions)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestBoundsAround_ContainsRadius(t *testing.T) {
	inside := func(b GeoBounds, p GeoPoint) bool {
		return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
	}
	bounds := BoundsAround(mumbai, 150)

	assert.True(t, inside(bounds, mumbai))
	assert.True(t, inside(bounds, pune))
	assert.False(t, inside(bounds, GeoPoint{Lat: 28.6139, Lon: 77.209}))
	// One degree of latitude is about 111 km.
	assert.InDelta(t, 150.0/111.2, bounds.MaxLat-mumbai.Lat, 0.02)
}

func TestTargetedLocation_AddressString(t *testing.T) {
	assert.Equal(t, "India", TargetedLocation{}.AddressString("India"))
	assert.Equal(t, "MG Road, Pune, India",
		TargetedLocation{Address: " MG Road ", City: "Pune", Country: "India", Pincode: "411001"}.AddressString("x"))
}

func TestClassifySearchMatch(t *testing.T) {
	assert.Equal(t, MatchTitlePrefix, ClassifySearchMatch("Pizza Party", "pizza"))
	assert.Equal(t, MatchTitleContains, ClassifySearchMatch("Free PIZZA Friday", "pizza"))
	assert.Equal(t, MatchDescription, ClassifySearchMatch("Weekend deals", "pizza"))
}

func TestReactionKind_Action(t *testing.T) {
	assert.Equal(t, "liked", ReactionLike.Action(true))
	assert.Equal(t, "unliked", ReactionLike.Action(false))
	assert.Equal(t, "disliked", ReactionDislike.Action(true))
	assert.Equal(t, "removed_dislike", ReactionDislike.Action(false))
	assert.Equal(t, "unloved", ReactionLove.Action(false))
	assert.Equal(t, "saved", ReactionSave.Action(true))
}

func TestNotificationSettings_Allows(t *testing.T) {
	s := &NotificationSettings{LiveCampaignUpdates: true}

	assert.True(t, s.Allows(NotificationCampaignCompleted))
	assert.True(t, s.Allows(NotificationNewComment))
	assert.False(t, s.Allows(NotificationLowBudgetAlert))
	assert.False(t, s.Allows(NotificationPaymentFailed))
	assert.True(t, s.Allows(NotificationNewConversion))
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"campaign": map[string]any{
			"costPerClick":          "0.50",
			"impressionDedupWindow": "24h",
		},
		"scheduler": map[string]any{
			"jobTimeout": "10m",
		},
		"pubsub": map[string]any{
			"localEndpoint": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CAMPAIGN_COSTPERCLICK", want: "campaign.costPerClick"},
		{envKey: "CAMPAIGN_IMPRESSION_DEDUP_WINDOW", want: "campaign.impression.dedup.window"},
		{envKey: "SCHEDULER_JOBTIMEOUT", want: "scheduler.jobTimeout"},
		{envKey: "PUBSUB_LOCALENDPOINT", want: "pubsub.localEndpoint"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "REDIS__ADDR", want: "redis.addr"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

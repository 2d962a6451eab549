package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.True(t, decimal.RequireFromString("0.5").Equal(cfg.Campaign.CostPerClickAmount()))
	assert.True(t, decimal.RequireFromString("0.2").Equal(cfg.Campaign.LowBudgetRatioValue()))
	assert.True(t, decimal.NewFromInt(100).Equal(cfg.Campaign.MinBudgetAmount()))
	assert.Equal(t, 24*time.Hour, cfg.Campaign.ImpressionDedupWindow)
	assert.Equal(t, "UTC", cfg.Analytics.Timezone)
	assert.Equal(t, time.Hour, cfg.Scheduler.StatusCheckInterval)
	assert.Equal(t, 10*time.Minute, cfg.Scheduler.JobTimeout)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Nil(t, cfg.PubSub)
}

func TestCampaignConfig_BadDecimalFallsBack(t *testing.T) {
	c := CampaignConfig{CostPerClick: "free", MinBudget: " 250 "}

	assert.True(t, decimal.RequireFromString(defaultCostPerClick).Equal(c.CostPerClickAmount()))
	assert.True(t, decimal.NewFromInt(250).Equal(c.MinBudgetAmount()))
}

func TestLoadWithEnv(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `env:
  env: staging
http:
  port: 9000
campaign:
  costPerClick: "1.25"
scheduler:
  enabled: true
  statusCheckInterval: 15m
pubsub:
  provider: google
  projectId: adreach-prod
  topicId: notifications
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlContent), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("PUBSUB_TOPICID", "notifications-v2")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	applyDefaults(cfg)

	assert.Equal(t, "staging", cfg.Env.Env)
	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.True(t, decimal.RequireFromString("1.25").Equal(cfg.Campaign.CostPerClickAmount()))
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Scheduler.StatusCheckInterval)
	assert.Equal(t, defaultCTRRecomputeInterval, cfg.Scheduler.CTRRecomputeInterval)
	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, "adreach-prod", cfg.PubSub.ProjectID)
	assert.Equal(t, "notifications-v2", cfg.PubSub.TopicID)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "config file config.yaml not found")
}

package config

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultCostPerClick          = "0.50"
	defaultLowBudgetRatio        = "0.20"
	defaultMinBudget             = "100"
	defaultRadiusKm              = 50
	defaultMaxRadiusKm           = 500
	defaultMinAge                = 13
	defaultMaxAge                = 100
	defaultImpressionDedupWindow = 24 * time.Hour
	defaultEndingSoonWindow      = 48 * time.Hour
	defaultCountry               = "India"

	defaultFeedLimit    = 20
	defaultFeedMaxLimit = 100
	defaultTopCampaigns = 10
	defaultTimezone     = "UTC"

	defaultStatusCheckInterval        = time.Hour
	defaultCTRRecomputeInterval       = 6 * time.Hour
	defaultPerformanceSummaryInterval = 24 * time.Hour
	defaultEndingSoonInterval         = 24 * time.Hour
	defaultJobTimeout                 = 10 * time.Minute

	defaultGeocodingEndpoint = "https://nominatim.openstreetmap.org/search"
	defaultGeocodingAgent    = "adreach-geocoder/1.0"
	defaultGeocodingTimeout  = 10 * time.Second

	defaultMetricsPath = "/metrics"

	defaultSlowQueryThreshold = 200 * time.Millisecond
)

// applyDefaults fills zero values so a minimal YAML file is enough to boot.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"*"}
	}

	c := &cfg.Campaign
	if c.CostPerClick == "" {
		c.CostPerClick = defaultCostPerClick
	}
	if c.LowBudgetRatio == "" {
		c.LowBudgetRatio = defaultLowBudgetRatio
	}
	if c.MinBudget == "" {
		c.MinBudget = defaultMinBudget
	}
	if c.DefaultRadiusKm <= 0 {
		c.DefaultRadiusKm = defaultRadiusKm
	}
	if c.MaxRadiusKm <= 0 {
		c.MaxRadiusKm = defaultMaxRadiusKm
	}
	if c.MinAge <= 0 {
		c.MinAge = defaultMinAge
	}
	if c.MaxAge <= 0 {
		c.MaxAge = defaultMaxAge
	}
	if c.ImpressionDedupWindow <= 0 {
		c.ImpressionDedupWindow = defaultImpressionDedupWindow
	}
	if c.EndingSoonWindow <= 0 {
		c.EndingSoonWindow = defaultEndingSoonWindow
	}
	if c.DefaultCountry == "" {
		c.DefaultCountry = defaultCountry
	}

	if cfg.Feed.DefaultLimit <= 0 {
		cfg.Feed.DefaultLimit = defaultFeedLimit
	}
	if cfg.Feed.MaxLimit <= 0 {
		cfg.Feed.MaxLimit = defaultFeedMaxLimit
	}
	if cfg.Analytics.Timezone == "" {
		cfg.Analytics.Timezone = defaultTimezone
	}
	if cfg.Analytics.TopCampaigns <= 0 {
		cfg.Analytics.TopCampaigns = defaultTopCampaigns
	}

	s := &cfg.Scheduler
	if s.StatusCheckInterval <= 0 {
		s.StatusCheckInterval = defaultStatusCheckInterval
	}
	if s.CTRRecomputeInterval <= 0 {
		s.CTRRecomputeInterval = defaultCTRRecomputeInterval
	}
	if s.PerformanceSummaryInterval <= 0 {
		s.PerformanceSummaryInterval = defaultPerformanceSummaryInterval
	}
	if s.EndingSoonInterval <= 0 {
		s.EndingSoonInterval = defaultEndingSoonInterval
	}
	if s.JobTimeout <= 0 {
		s.JobTimeout = defaultJobTimeout
	}

	if cfg.Geocoding.Endpoint == "" {
		cfg.Geocoding.Endpoint = defaultGeocodingEndpoint
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = defaultGeocodingAgent
	}
	if cfg.Geocoding.Timeout <= 0 {
		cfg.Geocoding.Timeout = defaultGeocodingTimeout
	}

	if cfg.Env.Log.SlowQueryThreshold <= 0 {
		cfg.Env.Log.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

// Defaults returns a Config with every default applied. Tests and tools use it
// instead of loading YAML.
func Defaults() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// CostPerClickAmount returns the fixed debit applied for every recorded click.
func (c CampaignConfig) CostPerClickAmount() decimal.Decimal {
	return parseDecimalOr(c.CostPerClick, defaultCostPerClick)
}

// LowBudgetRatioValue returns the remaining/budget ratio under which vendors get a low budget alert.
func (c CampaignConfig) LowBudgetRatioValue() decimal.Decimal {
	return parseDecimalOr(c.LowBudgetRatio, defaultLowBudgetRatio)
}

// MinBudgetAmount returns the smallest budget a campaign can be created with.
func (c CampaignConfig) MinBudgetAmount() decimal.Decimal {
	return parseDecimalOr(c.MinBudget, defaultMinBudget)
}

func parseDecimalOr(value, fallback string) decimal.Decimal {
	if d, err := decimal.NewFromString(strings.TrimSpace(value)); err == nil {
		return d
	}

	return decimal.RequireFromString(fallback)
}

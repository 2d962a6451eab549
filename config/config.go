package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// AllowedOrigins for CORS. Env overrides are comma separated.
		AllowedOrigins []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs the impression dedup gate. Optional.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Campaign CampaignConfig `json:"campaign" yaml:"campaign"`

	Feed FeedConfig `json:"feed" yaml:"feed"`

	Analytics AnalyticsConfig `json:"analytics" yaml:"analytics"`

	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// PubSub configuration for notification event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Geocoding GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Media configures the blob bucket holding campaign media
	Media *MediaConfig `json:"media" yaml:"media"`

	// GeoIP enables city lookup for events that arrive without a location
	GeoIP *GeoIPConfig `json:"geoip" yaml:"geoip"`

	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// QRCode configuration for campaign share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool    `json:"pretty" yaml:"pretty"`
	Level  string  `json:"level" yaml:"level"`
	File   LogFile `json:"file" yaml:"file"`
	// SlowQueryThreshold marks SQL statements logged as slow. 0 keeps the 200ms default.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// LogFile enables rotated file output next to stdout when Path is set
type LogFile struct {
	Path       string `json:"path" yaml:"path"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAgeDays int    `json:"maxAgeDays" yaml:"maxAgeDays"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// CampaignConfig holds the pricing and targeting rules of campaigns
type CampaignConfig struct {
	CostPerClick          string        `json:"costPerClick" yaml:"costPerClick"`
	LowBudgetRatio        string        `json:"lowBudgetRatio" yaml:"lowBudgetRatio"`
	MinBudget             string        `json:"minBudget" yaml:"minBudget"`
	DefaultRadiusKm       float64       `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm           float64       `json:"maxRadiusKm" yaml:"maxRadiusKm"`
	MinAge                int           `json:"minAge" yaml:"minAge"`
	MaxAge                int           `json:"maxAge" yaml:"maxAge"`
	ImpressionDedupWindow time.Duration `json:"impressionDedupWindow" yaml:"impressionDedupWindow"`
	EndingSoonWindow      time.Duration `json:"endingSoonWindow" yaml:"endingSoonWindow"`
	DefaultCountry        string        `json:"defaultCountry" yaml:"defaultCountry"`
}

type FeedConfig struct {
	DefaultLimit        int  `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit            int  `json:"maxLimit" yaml:"maxLimit"`
	EnforceAgeTargeting bool `json:"enforceAgeTargeting" yaml:"enforceAgeTargeting"`
}

type AnalyticsConfig struct {
	// Timezone used for "today" and day buckets, e.g. "Asia/Kolkata". Defaults to UTC.
	Timezone     string `json:"timezone" yaml:"timezone"`
	TopCampaigns int    `json:"topCampaigns" yaml:"topCampaigns"`
}

type SchedulerConfig struct {
	Enabled                    bool          `json:"enabled" yaml:"enabled"`
	StatusCheckInterval        time.Duration `json:"statusCheckInterval" yaml:"statusCheckInterval"`
	CTRRecomputeInterval       time.Duration `json:"ctrRecomputeInterval" yaml:"ctrRecomputeInterval"`
	PerformanceSummaryInterval time.Duration `json:"performanceSummaryInterval" yaml:"performanceSummaryInterval"`
	EndingSoonInterval         time.Duration `json:"endingSoonInterval" yaml:"endingSoonInterval"`
	JobTimeout                 time.Duration `json:"jobTimeout" yaml:"jobTimeout"`
}

// FirebaseConfig holds Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig holds QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig holds Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider: "google" for Google Pub/Sub, "local" for HTTP direct call to the worker
	Provider string `json:"provider" yaml:"provider"`

	// ProjectID is the Google Cloud project ID (required for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// TopicID is the Pub/Sub topic ID (required for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// LocalEndpoint is the worker push URL (required for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// GeocodingConfig points at a Nominatim compatible search endpoint
type GeocodingConfig struct {
	Endpoint  string        `json:"endpoint" yaml:"endpoint"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// MediaConfig holds the gocloud blob URL, e.g. gs://bucket or file:///var/media
type MediaConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

type GeoIPConfig struct {
	DatabasePath string `json:"databasePath" yaml:"databasePath"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultTokenTTL           = 24 * time.Hour
	defaultDriver             = DriverPostgres
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
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
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// QRCode configuration for emergency card QR codes
	QRCode *QRCodeConfig `json:"qrCode" yaml:"qrCode"`
}

// DatabaseConfig describes the primary store and optional read replicas.
type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`
	// DSN is the connection string of the primary
	DSN string `json:"dsn" yaml:"dsn"`
	// Name is the logical database name, used as the postgres search path when set
	Name            string          `json:"name" yaml:"name"`
	Replicas        []ReplicaConfig `json:"replicas" yaml:"replicas"`
	MaxIdleConns    int             `json:"maxIdleConns" yaml:"maxIdleConns"`
	MaxOpenConns    int             `json:"maxOpenConns" yaml:"maxOpenConns"`
	ConnMaxLifetime time.Duration   `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	// Migrate runs schema migrations on startup
	Migrate bool `json:"migrate" yaml:"migrate"`
}

type ReplicaConfig struct {
	DSN string `json:"dsn" yaml:"dsn"`
}

// SecretKeyConfig holds the token signing key set. Tokens are signed with Current,
// and verified against Current plus every key in Previous.
type SecretKeyConfig struct {
	Current  SigningKey   `json:"current" yaml:"current"`
	Previous []SigningKey `json:"previous" yaml:"previous"`
}

type SigningKey struct {
	ID    string `json:"id" yaml:"id"`
	Value string `json:"value" yaml:"value"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DATABASE_MAXOPENCONNS -> database.maxOpenConns
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config](configName(), "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Indexed env vars are not visible to koanf because the yaml has no list entries to align with.
	if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
		cfg.Database.Replicas = replicas
	}
	if keys := buildPreviousKeysFromEnv(); len(keys) > 0 {
		cfg.SecretKey.Previous = keys
	}

	return cfg, nil
}

// configName picks <APP_ENV>.yaml when APP_ENV is set, config.yaml otherwise.
func configName() string {
	if name := strings.TrimSpace(os.Getenv("APP_ENV")); name != "" {
		return name
	}

	return "config"
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return errors.Wrapf(err, "load %s", path)
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(cfg.Database.Driver) == "" {
		cfg.Database.Driver = defaultDriver
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
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
// Format: DATABASE_REPLICAS_{index}_DSN
func buildReplicasFromEnv() []ReplicaConfig {
	var replicas []ReplicaConfig

	for i := 0; ; i++ {
		dsn := os.Getenv("DATABASE_REPLICAS_" + strconv.Itoa(i) + "_DSN")
		if dsn == "" {
			break
		}

		replicas = append(replicas, ReplicaConfig{DSN: dsn})
	}

	return replicas
}

// buildPreviousKeysFromEnv builds the rotated-out signing keys from environment variables.
// Format: SECRETKEY_PREVIOUS_{index}_ID, SECRETKEY_PREVIOUS_{index}_VALUE
func buildPreviousKeysFromEnv() []SigningKey {
	var keys []SigningKey

	for i := 0; ; i++ {
		prefix := "SECRETKEY_PREVIOUS_" + strconv.Itoa(i) + "_"

		id := os.Getenv(prefix + "ID")
		value := os.Getenv(prefix + "VALUE")
		if id == "" || value == "" {
			break
		}

		keys = append(keys, SigningKey{ID: id, Value: value})
	}

	return keys
}

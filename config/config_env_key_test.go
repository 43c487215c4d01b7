package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"dsn":          "",
			"maxOpenConns": 10,
		},
		"secretKey": map[string]any{
			"current": map[string]any{
				"id":    "k1",
				"value": "",
			},
		},
		"qrCode": map[string]any{
			"errorCorrectionLevel": "M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_DSN", want: "database.dsn"},
		{envKey: "DATABASE_MAXOPENCONNS", want: "database.maxOpenConns"},
		{envKey: "SECRETKEY_CURRENT_VALUE", want: "secretKey.current.value"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrCode.errorCorrectionLevel"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

const testConfigYAML = `
env:
  env: test
  serviceName: healthhub
  log:
    level: info
http:
  port: 8001
  timeouts:
    readTimeout: 5s
database:
  driver: sqlite
  dsn: "file::memory:"
  maxOpenConns: 1
secretKey:
  current:
    id: k1
    value: yaml-secret
auth:
  bcryptCost: 4
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_CURRENT_VALUE", "env-secret")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "healthhub", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, "k1", cfg.SecretKey.Current.ID)
	assert.Equal(t, "env-secret", cfg.SecretKey.Current.Value)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("missing")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestBuildPreviousKeysFromEnv(t *testing.T) {
	t.Setenv("SECRETKEY_PREVIOUS_0_ID", "old-1")
	t.Setenv("SECRETKEY_PREVIOUS_0_VALUE", "secret-1")
	t.Setenv("SECRETKEY_PREVIOUS_1_ID", "old-2")
	t.Setenv("SECRETKEY_PREVIOUS_1_VALUE", "secret-2")

	keys := buildPreviousKeysFromEnv()

	assert.Equal(t, []SigningKey{
		{ID: "old-1", Value: "secret-1"},
		{ID: "old-2", Value: "secret-2"},
	}, keys)
}

func TestBuildReplicasFromEnv_StopsAtGap(t *testing.T) {
	t.Setenv("DATABASE_REPLICAS_0_DSN", "postgres://replica-0")
	t.Setenv("DATABASE_REPLICAS_2_DSN", "postgres://replica-2")

	replicas := buildReplicasFromEnv()

	assert.Equal(t, []ReplicaConfig{{DSN: "postgres://replica-0"}}, replicas)
}

package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":4000", c.EndpointAddrHTTP)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Empty(t, c.RedisAddr)
	assert.False(t, c.TrustProxy)
	assert.Empty(t, c.OTLPEndpoint)
	assert.True(t, c.OTLPInsecure)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestHasDefaultSecret(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.True(t, c.HasDefaultSecret())

	c.SecretKey = "rotated"
	assert.False(t, c.HasDefaultSecret())
}

func TestLoad_DefaultsOnly(t *testing.T) {
	c, err := Load(nil, noEnv)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(&want, c))
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http": ":7000",
		"secret_key":         "from-json",
		"database_dsn":       "postgres://json",
		"log_level":          "warn",
	})

	env := envMap(map[string]string{
		"JWT_SECRET":   "from-env",
		"DATABASE_URL": "postgres://env",
	})

	c, err := Load([]string{"-c", path, "-s", "from-flag"}, env)
	require.NoError(t, err)

	assert.Equal(t, ":7000", c.EndpointAddrHTTP, "json overrides default")
	assert.Equal(t, "postgres://env", c.DatabaseDSN, "env overrides json")
	assert.Equal(t, "from-flag", c.SecretKey, "flag overrides env")
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load([]string{"-c", "/does/not/exist.json"}, noEnv)
	require.Error(t, err)

	_, err = Load(nil, envMap(map[string]string{"PORT": "http"}))
	require.Error(t, err)
}

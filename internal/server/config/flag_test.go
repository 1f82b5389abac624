package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-r", "localhost:6379", "-l", "debug"},
			expected: &Config{
				EndpointAddrHTTP: "127.0.0.1:9090",
				DatabaseDSN:      "db",
				SecretKey:        "secret",
				RedisAddr:        "localhost:6379",
				LogLevel:         "debug",
			},
		},
		{
			name:     "foreign flags are skipped",
			args:     []string{"-c", "cfg.json", "-a", ":1", "-x"},
			expected: &Config{EndpointAddrHTTP: ":1"},
		},
		{
			name:     "secret starting with a dash",
			args:     []string{"-s", "-mysecret"},
			expected: &Config{SecretKey: "-mysecret"},
		},
		{
			name:    "flag missing value",
			args:    []string{"-a"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

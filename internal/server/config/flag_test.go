package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-m", ":9200", "-d", "db", "-s", "secret",
				"-t", "60", "-b", "12", "-l", "debug",
			},
			expected: &Config{
				EndpointAddrGRPC: "127.0.0.1:9090",
				MetricsAddr:      ":9200",
				DatabaseDSN:      "db",
				SecretKey:        "secret",
				TokenTTL:         time.Hour,
				BcryptCost:       12,
				LogLevel:         "debug",
			},
		},
		{
			name:        "bad ttl",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_KeepsValuesWithoutFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, 24*time.Hour, c.TokenTTL)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
}

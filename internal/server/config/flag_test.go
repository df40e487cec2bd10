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
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-t", "24",
			"-l", "warn", "-r", "AllProducts, shuffle", "-o", "featured,onSell",
		}, expected: &Config{
			EndpointAddrHTTP:      "127.0.0.1:9090",
			DatabaseDSN:           "db",
			SecretKey:             "secret",
			TokenValidityDuration: 24 * time.Hour,
			LogLevel:              "warn",
			LookupOrder:           []string{"AllProducts", "shuffle"},
			DetailOrder:           []string{"featured", "onSell"},
		}},
		{name: "unknown flags are ignored", args: []string{"cmd",
			"-c", "cfg.json", "-x", "-a", ":1", "-t", "1",
		}, expected: &Config{
			EndpointAddrHTTP:      ":1",
			TokenValidityDuration: time.Hour,
		}},
		{name: "invalid hours", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,,b,"))
	assert.Nil(t, splitList(""))
}

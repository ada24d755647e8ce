package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.OpsAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.SeedDemo)
	assert.Equal(t, id.PaymentPlatformMercadoPago, cfg.DefaultPlatform)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{
		"KIOSK_OPS_ADDR":         "127.0.0.1:9100",
		"KIOSK_LOG_LEVEL":        "DEBUG",
		"KIOSK_LOG_FORMAT":       "console",
		"KIOSK_SEED_DEMO":        "true",
		"KIOSK_PAYMENT_PLATFORM": "STONE",
		"KIOSK_SHUTDOWN_TIMEOUT": "3s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9100", cfg.OpsAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, id.PaymentPlatformStone, cfg.DefaultPlatform)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestFromLookupRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"seed flag":        {"KIOSK_SEED_DEMO": "sometimes"},
		"platform":         {"KIOSK_PAYMENT_PLATFORM": "PAYPAL"},
		"shutdown timeout": {"KIOSK_SHUTDOWN_TIMEOUT": "-1s"},
		"unparsable":       {"KIOSK_SHUTDOWN_TIMEOUT": "soon"},
		"log format":       {"KIOSK_LOG_FORMAT": "xml"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fromLookup(lookupFrom(env))
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidResource))
		})
	}
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
)

// Server captures process level configuration.
type Server struct {
	OpsAddr         string
	LogLevel        string
	LogFormat       string
	SeedDemo        bool
	DefaultPlatform id.PaymentPlatform
	ShutdownTimeout time.Duration
}

const (
	defaultOpsAddr         = ":9090"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultShutdownTimeout = 10 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func FromEnv() (Server, error) {
	_ = godotenv.Load()
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Server, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Server{
		OpsAddr:         get("KIOSK_OPS_ADDR", defaultOpsAddr),
		LogLevel:        strings.ToLower(get("KIOSK_LOG_LEVEL", defaultLogLevel)),
		LogFormat:       strings.ToLower(get("KIOSK_LOG_FORMAT", defaultLogFormat)),
		ShutdownTimeout: defaultShutdownTimeout,
	}

	seed, err := strconv.ParseBool(get("KIOSK_SEED_DEMO", "false"))
	if err != nil {
		return Server{}, dErrors.New(dErrors.CodeInvalidResource, "KIOSK_SEED_DEMO must be a boolean")
	}
	cfg.SeedDemo = seed

	platform, err := id.ParsePaymentPlatform(get("KIOSK_PAYMENT_PLATFORM", string(id.PaymentPlatformMercadoPago)))
	if err != nil {
		return Server{}, err
	}
	cfg.DefaultPlatform = platform

	if raw, ok := lookup("KIOSK_SHUTDOWN_TIMEOUT"); ok && raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Server{}, dErrors.New(dErrors.CodeInvalidResource, "KIOSK_SHUTDOWN_TIMEOUT must be a positive duration")
		}
		cfg.ShutdownTimeout = d
	}

	switch cfg.LogFormat {
	case "json", "console":
	default:
		return Server{}, dErrors.New(dErrors.CodeInvalidResource, "KIOSK_LOG_FORMAT must be json or console")
	}
	return cfg, nil
}

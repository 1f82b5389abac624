package config

import (
	"fmt"
	"strconv"
	"strings"
)

// parseEnv overlays values from environment variables:
//
//	PORT                         listen port, becomes ":<PORT>"
//	JWT_SECRET                   token signing secret
//	DATABASE_URL                 PostgreSQL DSN
//	REDIS_ADDR                   Redis address for rate limiting
//	TRUST_PROXY                  "true"/"false"
//	OTEL_EXPORTER_OTLP_ENDPOINT  OTLP/gRPC trace endpoint
//	OTEL_EXPORTER_OTLP_INSECURE  "true"/"false"
//	LOG_LEVEL                    debug, info, warn, error
func parseEnv(config *Config, getenv func(string) string) error {
	if port := strings.TrimSpace(getenv("PORT")); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		config.EndpointAddrHTTP = ":" + port
	}

	setString(&config.SecretKey, getenv("JWT_SECRET"))
	setString(&config.DatabaseDSN, getenv("DATABASE_URL"))
	setString(&config.RedisAddr, getenv("REDIS_ADDR"))
	setString(&config.OTLPEndpoint, getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	setString(&config.LogLevel, getenv("LOG_LEVEL"))

	if v := strings.TrimSpace(getenv("TRUST_PROXY")); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TRUST_PROXY %q: %w", v, err)
		}
		config.TrustProxy = trust
	}

	if v := strings.TrimSpace(getenv("OTEL_EXPORTER_OTLP_INSECURE")); v != "" {
		insecure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid OTEL_EXPORTER_OTLP_INSECURE %q: %w", v, err)
		}
		config.OTLPInsecure = insecure
	}

	return nil
}
